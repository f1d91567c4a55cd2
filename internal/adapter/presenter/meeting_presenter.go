package presenter

import (
	"github.com/truthos/meeting-intel/internal/adapter/dto/meeting"
	"github.com/truthos/meeting-intel/internal/domain/entities"
)

// ToMeetingView converts a meeting to its role-shaped projection.
// Operators see the full record; every other role gets metadata only,
// with transcript and analysis withheld. This is display shaping, not
// access control: the upstream backend decides what this service ever
// receives.
func ToMeetingView(m *entities.MeetingWithAnalysis, role entities.UserRole) meeting.MeetingView {
	view := meeting.MeetingView{
		ID:         m.ID,
		ContactID:  m.ContactID,
		Type:       string(m.Type),
		OccurredAt: m.OccurredAt,
		CreatedAt:  m.CreatedAt,
	}

	if role == entities.RoleOperator {
		view.Transcript = m.Transcript
		view.Analysis = m.Analysis
	}

	return view
}

// ToContactMeetingsResponse converts a meeting list to its role-shaped
// projection
func ToContactMeetingsResponse(meetings []entities.MeetingWithAnalysis, role entities.UserRole) *meeting.ContactMeetingsResponse {
	views := make([]meeting.MeetingView, len(meetings))
	for i := range meetings {
		views[i] = ToMeetingView(&meetings[i], role)
	}
	return &meeting.ContactMeetingsResponse{Meetings: views}
}
