package entities

import "time"

// Sentiment classifies the overall tone of a meeting
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// IsValid checks if the sentiment is a known value
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Outcome classifies the result of a meeting
type Outcome string

const (
	OutcomeClosed     Outcome = "closed"
	OutcomeFollowUp   Outcome = "follow_up"
	OutcomeNoInterest Outcome = "no_interest"
	OutcomeUnknown    Outcome = "unknown"
)

// IsValid checks if the outcome is a known value
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeClosed, OutcomeFollowUp, OutcomeNoInterest, OutcomeUnknown:
		return true
	}
	return false
}

// AnalysisResult represents the structured output extracted from a
// transcript by the LLM. Topics are intended to hold 3-5 items and
// objections/commitments 0-5; those cardinalities are prompt
// instructions to the model, not enforced here.
type AnalysisResult struct {
	Sentiment   Sentiment `json:"sentiment"`
	Topics      []string  `json:"topics"`
	Objections  []string  `json:"objections"`
	Commitments []string  `json:"commitments"`
	Outcome     Outcome   `json:"outcome"`
	Summary     string    `json:"summary"`
}

// MeetingAnalysis represents a stored analysis as returned by the
// upstream backend for a meeting
type MeetingAnalysis struct {
	ID          string    `json:"id"`
	MeetingID   string    `json:"meetingId"`
	Sentiment   string    `json:"sentiment"`
	Topics      []string  `json:"topics"`
	Objections  []string  `json:"objections"`
	Commitments []string  `json:"commitments"`
	Outcome     string    `json:"outcome"`
	Summary     string    `json:"summary"`
	AnalyzedAt  time.Time `json:"analyzedAt"`
}
