package intent

import (
	"testing"

	"schedbot/internal/domain"
)

var sampleSnapshot = domain.AvailabilityContext{
	{Day: "monday", StartHour: 9, EndHour: 11},
}

func TestClassifyCanonicalQueryPhrases(t *testing.T) {
	phrases := []string{
		"what's my availability",
		"whats my availability",
		"show my availability",
		"my schedule",
		"when am i available",
		"what's my schedule",
		"check my availability",
		"view my availability",
		"see my availability",
		"exact dates",
		"exact times",
		"exact dates and times",
		"when am i free",
		"my available times",
		"available this week",
		"list my availability",
		"display my schedule",
	}

	for _, phrase := range phrases {
		t.Run(phrase, func(t *testing.T) {
			got := Classify(phrase, nil)
			if got.Label != domain.IntentAvailabilityQuery {
				t.Fatalf("Classify(%q).Label = %s, want %s", phrase, got.Label, domain.IntentAvailabilityQuery)
			}
			if got.Confidence != domain.ConfidenceHigh {
				t.Fatalf("Classify(%q).Confidence = %s, want high", phrase, got.Confidence)
			}
			if got.Evidence == "" {
				t.Fatalf("Classify(%q) returned empty evidence", phrase)
			}
		})
	}
}

func TestClassifyDeletionVerbPlusNoun(t *testing.T) {
	tests := []string{
		"clear my availability",
		"delete my schedule",
		"remove my monday slot",
		"reset my calendar please",
		"Delete the Monday session booked from 6-9am",
	}
	for _, text := range tests {
		got := Classify(text, sampleSnapshot)
		if got.Label != domain.IntentAvailabilityDeletion {
			t.Fatalf("Classify(%q).Label = %s, want %s", text, got.Label, domain.IntentAvailabilityDeletion)
		}
		if got.Confidence != domain.ConfidenceHigh {
			t.Fatalf("Classify(%q).Confidence = %s, want high", text, got.Confidence)
		}
	}
}

func TestClassifyContextualPronounNeedsSnapshot(t *testing.T) {
	got := Classify("clear this", sampleSnapshot)
	if got.Label != domain.IntentAvailabilityDeletion {
		t.Fatalf("with snapshot: label = %s, want %s", got.Label, domain.IntentAvailabilityDeletion)
	}

	got = Classify("clear this", nil)
	if got.Label == domain.IntentAvailabilityDeletion {
		t.Fatalf("without snapshot: contextual pronoun must not classify as deletion")
	}
	if got.Label != domain.IntentGeneralChat || got.Confidence != domain.ConfidenceLow {
		t.Fatalf("without snapshot: got (%s,%s), want (general_chat,low)", got.Label, got.Confidence)
	}
}

func TestClassifyDeletionBeatsUpdate(t *testing.T) {
	// Contains both deletion phrasing and update phrasing (day + time +
	// availability noun); the earlier group must win.
	got := Classify("remove my monday availability from 9-11am", sampleSnapshot)
	if got.Label != domain.IntentAvailabilityDeletion {
		t.Fatalf("label = %s, want %s", got.Label, domain.IntentAvailabilityDeletion)
	}
}

func TestClassifyUpdatePhrases(t *testing.T) {
	tests := []struct {
		text string
		conf domain.Confidence
	}{
		{text: "I'm free monday 9-11am", conf: domain.ConfidenceHigh},
		{text: "set me available on tuesday evening", conf: domain.ConfidenceHigh},
		{text: "add availability wednesday 6-8pm", conf: domain.ConfidenceHigh},
		{text: "available friday morning", conf: domain.ConfidenceHigh},
		{text: "monday 9-11am", conf: domain.ConfidenceMedium},
		{text: "thursday", conf: domain.ConfidenceMedium},
	}
	for _, tt := range tests {
		got := Classify(tt.text, nil)
		if got.Label != domain.IntentAvailabilityUpdate {
			t.Fatalf("Classify(%q).Label = %s, want %s", tt.text, got.Label, domain.IntentAvailabilityUpdate)
		}
		if got.Confidence != tt.conf {
			t.Fatalf("Classify(%q).Confidence = %s, want %s", tt.text, got.Confidence, tt.conf)
		}
	}
}

func TestClassifySessionCancellation(t *testing.T) {
	tests := []string{
		"cancel my session on friday",
		"I need to cancel the session tomorrow",
		"sorry, can't make our session",
	}
	for _, text := range tests {
		got := Classify(text, sampleSnapshot)
		if got.Label != domain.IntentSessionCancellation {
			t.Fatalf("Classify(%q).Label = %s, want %s", text, got.Label, domain.IntentSessionCancellation)
		}
	}
}

func TestClassifyNeverPanicsAndDefaultsToChat(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"?!?",
		"hello there",
		"12345",
		"the weather is nice today",
	}
	for _, text := range tests {
		got := Classify(text, nil)
		if got.Label == "" || got.Confidence == "" {
			t.Fatalf("Classify(%q) returned malformed result %+v", text, got)
		}
	}

	got := Classify("", nil)
	if got.Label != domain.IntentGeneralChat || got.Confidence != domain.ConfidenceLow || got.Evidence != "" {
		t.Fatalf("Classify(\"\") = %+v, want general_chat/low with no evidence", got)
	}
}

func TestGeneralChatIsAlwaysLowConfidence(t *testing.T) {
	for _, text := range []string{"hey", "thanks!", "lol ok"} {
		got := Classify(text, sampleSnapshot)
		if got.Label == domain.IntentGeneralChat && got.Confidence != domain.ConfidenceLow {
			t.Fatalf("Classify(%q) = general_chat at %s, want low", text, got.Confidence)
		}
	}
}

func TestRequestsFullClear(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{text: "remove everything", want: true},
		{text: "clear all my availability", want: true},
		{text: "delete all", want: true},
		{text: "remove my monday slot", want: false},
		{text: "everything is fine", want: false},
		{text: "", want: false},
	}
	for _, tt := range tests {
		if got := RequestsFullClear(tt.text); got != tt.want {
			t.Fatalf("RequestsFullClear(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
