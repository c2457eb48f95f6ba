package domain

import "time"

// Intent is the closed set of actions the bot knows how to route.
type Intent string

const (
	IntentAvailabilityQuery    Intent = "availability_query"
	IntentAvailabilityUpdate   Intent = "availability_update"
	IntentAvailabilityDeletion Intent = "availability_deletion"
	IntentSessionCancellation  Intent = "session_cancellation"
	IntentGeneralChat          Intent = "general_chat"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// IntentResult is the classifier's routing decision. Evidence holds the
// matched phrase and is empty only for the no-match general_chat default.
type IntentResult struct {
	Label      Intent     `json:"label"`
	Confidence Confidence `json:"confidence"`
	Evidence   string     `json:"evidence,omitempty"`
}

// Fallback reports whether the result is the no-match default that callers
// hand to the generic conversational handler.
func (r IntentResult) Fallback() bool {
	return r.Label == IntentGeneralChat
}

// TimeSlot is one availability interval. Hours are 0-23 and EndHour is
// always strictly greater than StartHour; the extractor never emits a
// partially valid slot.
type TimeSlot struct {
	Day       string `json:"day"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
}

// AvailabilityContext is the caller-supplied snapshot of the user's current
// slots, used only to disambiguate contextual deletion phrasing like
// "clear this". The core never fetches or caches it.
type AvailabilityContext []TimeSlot

// DeletionCriteria is a partial filter for matching existing slots. An
// absent day is the empty string; HasRange marks whether the hour pair is
// set, since hour zero is a valid start.
type DeletionCriteria struct {
	Day       string `json:"day,omitempty"`
	StartHour int    `json:"start_hour,omitempty"`
	EndHour   int    `json:"end_hour,omitempty"`
	HasRange  bool   `json:"has_range"`
}

func (c DeletionCriteria) HasDay() bool {
	return c.Day != ""
}

// Message is one inbound user message as handed over by a transport.
type Message struct {
	MessageID      string    `json:"message_id"`
	PlatformUserID string    `json:"platform_user_id"`
	Text           string    `json:"text"`
	ReceivedAt     time.Time `json:"received_at,omitempty"`
}

// Reply is the outbound text produced for one inbound message.
type Reply struct {
	MessageID      string `json:"message_id"`
	PlatformUserID string `json:"platform_user_id"`
	Text           string `json:"text"`
	Intent         Intent `json:"intent"`
}
