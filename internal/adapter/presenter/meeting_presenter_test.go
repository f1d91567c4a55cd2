package presenter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthos/meeting-intel/internal/domain/entities"
)

func sampleMeeting() entities.MeetingWithAnalysis {
	occurred := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return entities.MeetingWithAnalysis{
		Meeting: entities.Meeting{
			ID:         "m-1",
			ContactID:  "c-1",
			Type:       entities.MeetingTypeSales,
			OccurredAt: occurred,
			Transcript: "Client asked about pricing.",
			CreatedAt:  occurred.Add(time.Hour),
		},
		Analysis: &entities.MeetingAnalysis{
			ID:        "a-1",
			MeetingID: "m-1",
			Sentiment: "neutral",
			Outcome:   "follow_up",
			Summary:   "Client discussed pricing and agreed to a follow-up.",
		},
	}
}

func TestToMeetingViewOperator(t *testing.T) {
	m := sampleMeeting()
	view := ToMeetingView(&m, entities.RoleOperator)

	assert.Equal(t, "m-1", view.ID)
	assert.Equal(t, "Client asked about pricing.", view.Transcript)
	require.NotNil(t, view.Analysis)
	assert.Equal(t, "follow_up", view.Analysis.Outcome)
}

func TestToMeetingViewBasic(t *testing.T) {
	m := sampleMeeting()
	view := ToMeetingView(&m, entities.RoleBasic)

	// Metadata stays, sensitive fields are withheld
	assert.Equal(t, "m-1", view.ID)
	assert.Equal(t, "c-1", view.ContactID)
	assert.Equal(t, "sales", view.Type)
	assert.Empty(t, view.Transcript)
	assert.Nil(t, view.Analysis)
}

func TestToContactMeetingsResponse(t *testing.T) {
	meetings := []entities.MeetingWithAnalysis{sampleMeeting(), sampleMeeting()}

	resp := ToContactMeetingsResponse(meetings, entities.RoleBasic)
	require.Len(t, resp.Meetings, 2)
	for _, v := range resp.Meetings {
		assert.Empty(t, v.Transcript)
		assert.Nil(t, v.Analysis)
	}
}

func TestToContactMeetingsResponseEmpty(t *testing.T) {
	resp := ToContactMeetingsResponse(nil, entities.RoleOperator)
	require.NotNil(t, resp.Meetings)
	assert.Len(t, resp.Meetings, 0)
}
