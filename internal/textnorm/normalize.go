package textnorm

import "strings"

// Normalize is the single canonical form used for all keyword and pattern
// matching: lowercased, trimmed, internal whitespace collapsed to single
// spaces. Classifier and extractor must never match against raw text.
func Normalize(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return ""
	}
	return strings.Join(strings.Fields(lower), " ")
}

// Weekdays lists the seven canonical day tokens in week order.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var dayAliases = map[string]string{
	"monday":    "monday",
	"mon":       "monday",
	"tuesday":   "tuesday",
	"tue":       "tuesday",
	"tues":      "tuesday",
	"wednesday": "wednesday",
	"wed":       "wednesday",
	"weds":      "wednesday",
	"thursday":  "thursday",
	"thu":       "thursday",
	"thur":      "thursday",
	"thurs":     "thursday",
	"friday":    "friday",
	"fri":       "friday",
	"saturday":  "saturday",
	"sat":       "saturday",
	"sunday":    "sunday",
	"sun":       "sunday",
}

// CanonicalDay maps a day token or common abbreviation to its canonical
// weekday name. Returns "" when the token is not a day.
func CanonicalDay(token string) string {
	return dayAliases[strings.ToLower(strings.TrimSpace(token))]
}

// ContainsAny returns the first needle found as a substring of text, or ""
// when none match. Text is expected to be normalized already.
func ContainsAny(text string, needles []string) string {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return n
		}
	}
	return ""
}
