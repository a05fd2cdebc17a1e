package models

// Outcome labels how a chat query ended. Stable; used as a metric label.
type Outcome string

const (
	OutcomeAnswered         Outcome = "answered"
	OutcomeUsageHint        Outcome = "usage_hint"
	OutcomeLookupFailed     Outcome = "lookup_failed"
	OutcomeGenerationFailed Outcome = "generation_failed"
)

// Reply is the text shown to the user for one query.
type Reply struct {
	Text    string  `json:"reply"`
	City    string  `json:"city,omitempty"`
	Outcome Outcome `json:"outcome"`
}
