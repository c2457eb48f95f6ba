package intent

var deletionVerbs = []string{"clear", "delete", "remove", "cancel", "reset", "wipe", "erase"}

// Scope nouns a deletion verb can act on. "cancel" pairs only with the
// availability subset: cancel + session is a booked-session cancellation,
// not an availability deletion.
var deletionNouns = []string{"availability", "schedule", "session", "slots", "slot", "calendar", "hours", "times"}

var cancelNouns = []string{"availability", "schedule", "slots", "slot", "calendar", "hours"}

// Contextual pronouns match deletion only when the user actually has slots
// to act on; "clear this" with an empty snapshot falls through to chat.
var contextualPronouns = []string{"everything", "all", "this", "that", "it"}

var updateVerbPhrases = []string{
	"i'm free",
	"im free",
	"i am free",
	"i'm available",
	"im available",
	"i am available",
	"set me available",
	"set me as available",
	"mark me available",
	"add availability",
	"add my availability",
	"update my availability",
	"book me",
}

// Nouns that, combined with a day, time or daypart, signal an availability
// update rather than casual chat.
var availabilityNouns = []string{"availability", "available", "schedule", "free"}

var daypartWords = []string{"morning", "afternoon", "evening"}

// Canonical query phrases, matched as substrings of the normalized text.
// Enumerated rather than keyword-based so casual mentions of "schedule" in
// unrelated chat do not trigger a query.
var queryPhrases = []string{
	"what's my availability",
	"whats my availability",
	"show my availability",
	"my schedule",
	"when am i available",
	"what's my schedule",
	"check my availability",
	"view my availability",
	"see my availability",
	"exact dates and times",
	"exact dates",
	"exact times",
	"when am i free",
	"my available times",
	"available this week",
	"list my availability",
	"display my schedule",
}

var sessionCancelPhrases = []string{
	"cancel my session",
	"cancel the session",
	"cancel our session",
	"cancel session",
	"cancel my booking",
	"cancel the booking",
	"cancel my class",
	"cancel the class",
	"call off",
	"can't make",
	"cant make",
	"cannot make",
}

var fullClearWords = []string{"everything", "all"}
