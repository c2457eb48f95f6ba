// Package timeparse extracts availability slots and deletion criteria from
// loosely formatted natural language that has already been classified as a
// scheduling request.
package timeparse

import (
	"regexp"
	"strconv"

	"schedbot/internal/domain"
	"schedbot/internal/textnorm"
)

var dayRe = regexp.MustCompile(`\b(monday|mon|tuesday|tues|tue|wednesday|weds|wed|thursday|thurs|thur|thu|friday|fri|saturday|sat|sunday|sun)\b`)

// Time range matchers, most specific first. Minutes are accepted but the
// slot model is hour-granular, so they are dropped.
var (
	// 9am-11am, 6:30pm to 8pm
	rangeBothMeridiem = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\s*(?:-|to|until|till)\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	// 9-11am: the trailing meridiem applies to both ends
	rangeSharedMeridiem = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(?:-|to|until|till)\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	// 6-9, 14:00-17:00: no meridiem, read as 24-hour. Deliberate policy,
	// never inferred from time of day (downstream behavior depends on it).
	rangeBare = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(?:-|to|until|till)\s*(\d{1,2})(?::(\d{2}))?\b`)
)

// Daypart words map to fixed ranges and apply only when no numeric range
// is present in the segment.
var dayparts = []struct {
	word       string
	start, end int
}{
	{word: "morning", start: 6, end: 12},
	{word: "afternoon", start: 12, end: 17},
	{word: "evening", start: 17, end: 21},
}

// ExtractSlots pulls zero or more (day, start, end) slots out of text, in
// order of appearance. The text is partitioned into day-scoped segments on
// weekday tokens; a candidate without a valid time range after meridiem
// normalization is discarded silently.
func ExtractSlots(text string) []domain.TimeSlot {
	norm := textnorm.Normalize(text)
	if norm == "" {
		return nil
	}

	matches := dayRe.FindAllStringSubmatchIndex(norm, -1)
	if len(matches) == 0 {
		return nil
	}

	var slots []domain.TimeSlot
	for i, m := range matches {
		day := textnorm.CanonicalDay(norm[m[2]:m[3]])
		segEnd := len(norm)
		if i+1 < len(matches) {
			segEnd = matches[i+1][0]
		}
		segment := norm[m[1]:segEnd]

		start, end, ok := parseRange(segment)
		if !ok {
			continue
		}
		slots = append(slots, domain.TimeSlot{Day: day, StartHour: start, EndHour: end})
	}
	return slots
}

// ExtractDeletionCriteria pulls a partial (day, time range) filter out of
// text. ok is false only when neither a day nor a time range was found
// anywhere; callers use that to refuse a destructive "remove everything"
// reading unless the full clear was requested explicitly.
func ExtractDeletionCriteria(text string) (domain.DeletionCriteria, bool) {
	norm := textnorm.Normalize(text)
	if norm == "" {
		return domain.DeletionCriteria{}, false
	}

	var crit domain.DeletionCriteria
	if m := dayRe.FindStringSubmatch(norm); m != nil {
		crit.Day = textnorm.CanonicalDay(m[1])
	}
	if start, end, ok := parseRange(norm); ok {
		crit.StartHour = start
		crit.EndHour = end
		crit.HasRange = true
	}
	if !crit.HasDay() && !crit.HasRange {
		return domain.DeletionCriteria{}, false
	}
	return crit, true
}

func parseRange(segment string) (int, int, bool) {
	if m := rangeBothMeridiem.FindStringSubmatch(segment); m != nil {
		start := applyMeridiem(atoi(m[1]), m[3])
		end := applyMeridiem(atoi(m[4]), m[6])
		return validated(start, end)
	}
	if m := rangeSharedMeridiem.FindStringSubmatch(segment); m != nil {
		start := applyMeridiem(atoi(m[1]), m[5])
		end := applyMeridiem(atoi(m[3]), m[5])
		return validated(start, end)
	}
	if m := rangeBare.FindStringSubmatch(segment); m != nil {
		return validated(atoi(m[1]), atoi(m[3]))
	}
	for _, dp := range dayparts {
		if containsWord(segment, dp.word) {
			return dp.start, dp.end, true
		}
	}
	return 0, 0, false
}

// applyMeridiem normalizes a 12-hour clock hour: pm adds 12 to 1-11 and
// leaves 12 alone; am maps 12 to 0 and leaves 1-11 alone.
func applyMeridiem(hour int, meridiem string) int {
	switch meridiem {
	case "pm":
		if hour >= 1 && hour <= 11 {
			return hour + 12
		}
	case "am":
		if hour == 12 {
			return 0
		}
	}
	return hour
}

func validated(start, end int) (int, int, bool) {
	if start < 0 || start > 23 || end < 0 || end > 23 || end <= start {
		return 0, 0, false
	}
	return start, end, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

var wordRe = regexp.MustCompile(`[a-z]+`)

func containsWord(segment, word string) bool {
	for _, w := range wordRe.FindAllString(segment, -1) {
		if w == word {
			return true
		}
	}
	return false
}
