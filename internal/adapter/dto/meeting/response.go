package meeting

import (
	"time"

	"github.com/truthos/meeting-intel/internal/domain/entities"
)

// MeetingView is the role-shaped projection of a meeting. Transcript
// and analysis are omitted entirely for restricted roles rather than
// blanked, so clients can distinguish "hidden" from "empty".
type MeetingView struct {
	ID         string                    `json:"id"`
	ContactID  string                    `json:"contactId"`
	Type       string                    `json:"type"`
	OccurredAt time.Time                 `json:"occurredAt"`
	CreatedAt  time.Time                 `json:"createdAt"`
	Transcript string                    `json:"transcript,omitempty"`
	Analysis   *entities.MeetingAnalysis `json:"analysis,omitempty"`
}

// ContactMeetingsResponse is the list body for per-contact meeting history
type ContactMeetingsResponse struct {
	Meetings []MeetingView `json:"meetings"`
}
