package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/truthos/meeting-intel/internal/adapter/presenter"
	"github.com/truthos/meeting-intel/internal/domain/entities"
	"github.com/truthos/meeting-intel/internal/infrastructure/external/backend"
	httpmw "github.com/truthos/meeting-intel/internal/infrastructure/http/middleware"
)

// ContactHandler relays per-contact queries to the upstream backend
type ContactHandler struct {
	relay  *backend.Client
	logger *zap.Logger
}

// NewContactHandler creates a new contact relay handler
func NewContactHandler(relay *backend.Client, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{relay: relay, logger: logger}
}

// Meetings lists a contact's meeting history
// @Summary      List contact meetings
// @Description  Relays the query to the upstream backend, forwarding the x-user-role header when present, and shapes the result for the caller's role
// @Tags         Contacts
// @Produce      json
// @Param        id   path      string                       true  "Contact ID"
// @Success      200  {object}  meeting.ContactMeetingsResponse  "Meetings with optional analysis"
// @Failure      500  {object}  common.ErrorEnvelope         "Upstream unreachable"
// @Router       /contacts/{id}/meetings [get]
func (h *ContactHandler) Meetings(c echo.Context) error {
	resp, err := h.relay.Forward(c.Request().Context(), http.MethodGet,
		"/api/contacts/"+c.Param("id")+"/meetings", c.Request().Header, nil)
	if err != nil {
		return writeRelayError(h.logger, c, "Failed to fetch meetings", err)
	}

	if !resp.OK() {
		// Upstream rejections (403 and the rest) are relayed verbatim
		return c.JSONBlob(resp.StatusCode, resp.Body)
	}

	var upstream struct {
		Meetings []entities.MeetingWithAnalysis `json:"meetings"`
	}
	if err := json.Unmarshal(resp.Body, &upstream); err != nil {
		return writeRelayError(h.logger, c, "Failed to fetch meetings", err)
	}

	return c.JSON(http.StatusOK,
		presenter.ToContactMeetingsResponse(upstream.Meetings, h.viewerRole(c)))
}

// viewerRole decides how much of each meeting the response shows. A
// resolved session wins; without one the x-user-role header serves as a
// display hint. Neither is an authorization input: the upstream backend
// already decided what data this service received.
func (h *ContactHandler) viewerRole(c echo.Context) entities.UserRole {
	if session, ok := httpmw.GetSession(c); ok {
		return session.Role
	}
	if hint := entities.UserRole(c.Request().Header.Get("x-user-role")); hint.IsValid() {
		return hint
	}
	return entities.RoleBasic
}
