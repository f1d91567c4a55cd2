package meeting

// CreateMeetingRequest is the request body for meeting ingestion,
// validated locally before being relayed to the upstream backend
type CreateMeetingRequest struct {
	MeetingID  string `json:"meetingId" validate:"required"`
	ContactID  string `json:"contactId" validate:"required"`
	Type       string `json:"type" validate:"required,meeting_type"`
	OccurredAt string `json:"occurredAt" validate:"required"`
	Transcript string `json:"transcript" validate:"required"`
}
