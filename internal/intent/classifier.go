package intent

import (
	"regexp"
	"strings"

	"schedbot/internal/domain"
	"schedbot/internal/textnorm"
)

// rule is one entry of the ordered classification table. Evaluation is
// first-match-wins: earlier rules beat later ones even when both would
// match, so deletion phrasing always outranks update phrasing.
type rule struct {
	name  string
	label domain.Intent
	conf  domain.Confidence
	match func(text string, snapshot domain.AvailabilityContext) (string, bool)
}

var ruleTable = []rule{
	{name: "deletion", label: domain.IntentAvailabilityDeletion, conf: domain.ConfidenceHigh, match: matchDeletion},
	{name: "update", label: domain.IntentAvailabilityUpdate, conf: domain.ConfidenceHigh, match: matchUpdate},
	{name: "query", label: domain.IntentAvailabilityQuery, conf: domain.ConfidenceHigh, match: matchQuery},
	{name: "session_cancel", label: domain.IntentSessionCancellation, conf: domain.ConfidenceHigh, match: matchSessionCancel},
	{name: "bare_day", label: domain.IntentAvailabilityUpdate, conf: domain.ConfidenceMedium, match: matchBareDay},
}

// Classify maps free-form text to a routing decision. It never fails: text
// that matches no rule yields the general_chat default at low confidence,
// which callers treat as the hand-off to the generic conversational handler.
func Classify(text string, snapshot domain.AvailabilityContext) domain.IntentResult {
	norm := textnorm.Normalize(text)
	if norm == "" {
		return fallbackResult()
	}
	for _, r := range ruleTable {
		if evidence, ok := r.match(norm, snapshot); ok {
			return domain.IntentResult{Label: r.label, Confidence: r.conf, Evidence: evidence}
		}
	}
	return fallbackResult()
}

func fallbackResult() domain.IntentResult {
	return domain.IntentResult{Label: domain.IntentGeneralChat, Confidence: domain.ConfidenceLow}
}

// RequestsFullClear reports whether the text explicitly asks to wipe the
// whole schedule ("remove everything", "clear all my availability"). The
// extractor never implies a full clear; callers require this phrase before
// acting without deletion criteria.
func RequestsFullClear(text string) bool {
	norm := textnorm.Normalize(text)
	if norm == "" {
		return false
	}
	verb := findWord(norm, deletionVerbs)
	if verb == "" {
		return false
	}
	return findWord(norm, fullClearWords) != ""
}

func matchDeletion(text string, snapshot domain.AvailabilityContext) (string, bool) {
	verb := findWord(text, deletionVerbs)
	if verb == "" {
		return "", false
	}

	nouns := deletionNouns
	if verb == "cancel" {
		nouns = cancelNouns
	}
	if noun := findWord(text, nouns); noun != "" {
		return verb + " " + noun, true
	}

	// Contextual pronouns only refer to something when the user has slots.
	if len(snapshot) > 0 {
		if pron := findWord(text, contextualPronouns); pron != "" {
			return verb + " " + pron, true
		}
	}
	return "", false
}

func matchUpdate(text string, _ domain.AvailabilityContext) (string, bool) {
	for _, phrase := range updateVerbPhrases {
		if strings.Contains(text, phrase) {
			return phrase, true
		}
	}
	noun := findWord(text, availabilityNouns)
	if noun == "" {
		return "", false
	}
	if day := firstDayToken(text); day != "" {
		return noun + " " + day, true
	}
	if hasTimeExpression(text) {
		return noun, true
	}
	if part := findWord(text, daypartWords); part != "" {
		return noun + " " + part, true
	}
	return "", false
}

func matchQuery(text string, _ domain.AvailabilityContext) (string, bool) {
	for _, phrase := range queryPhrases {
		if strings.Contains(text, phrase) {
			return phrase, true
		}
	}
	return "", false
}

func matchSessionCancel(text string, _ domain.AvailabilityContext) (string, bool) {
	for _, phrase := range sessionCancelPhrases {
		if strings.Contains(text, phrase) {
			return phrase, true
		}
	}
	return "", false
}

// A bare day name, optionally with a time, is a weak update signal:
// "monday 9-11am" with no verb still reads as offered availability.
func matchBareDay(text string, _ domain.AvailabilityContext) (string, bool) {
	if day := firstDayToken(text); day != "" {
		return day, true
	}
	return "", false
}

var timeExprRe = regexp.MustCompile(`\b\d{1,2}(?::\d{2})?\s*(?:am|pm)?\b`)

func hasTimeExpression(text string) bool {
	return timeExprRe.MatchString(text)
}

func firstDayToken(text string) string {
	for _, f := range strings.FieldsFunc(text, isWordSep) {
		if day := textnorm.CanonicalDay(f); day != "" {
			return day
		}
	}
	return ""
}

// findWord returns the first term present in text, matching single tokens
// on word boundaries and multi-word terms by substring.
func findWord(text string, terms []string) string {
	for _, term := range terms {
		if strings.ContainsRune(term, ' ') {
			if strings.Contains(text, term) {
				return term
			}
			continue
		}
		for _, f := range strings.FieldsFunc(text, isWordSep) {
			if f == term {
				return term
			}
		}
	}
	return ""
}

func isWordSep(r rune) bool {
	switch r {
	case ' ', ',', '.', '!', '?', ';', ':', '(', ')', '"':
		return true
	}
	return false
}
