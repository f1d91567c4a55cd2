package entities

import "time"

// MeetingType defines the kind of meeting being recorded
type MeetingType string

const (
	MeetingTypeSales    MeetingType = "sales"
	MeetingTypeCoaching MeetingType = "coaching"
)

// IsValid checks if the meeting type is a known value
func (t MeetingType) IsValid() bool {
	switch t {
	case MeetingTypeSales, MeetingTypeCoaching:
		return true
	}
	return false
}

// Meeting represents an immutable meeting record held by the upstream
// backend. This service never persists meetings itself.
type Meeting struct {
	ID         string      `json:"id"`
	ContactID  string      `json:"contactId"`
	Type       MeetingType `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Transcript string      `json:"transcript"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// MeetingWithAnalysis pairs a meeting with its analysis, when one exists
type MeetingWithAnalysis struct {
	Meeting
	Analysis *MeetingAnalysis `json:"analysis,omitempty"`
}
