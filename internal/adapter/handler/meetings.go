package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/truthos/meeting-intel/internal/adapter/dto/common"
	dto "github.com/truthos/meeting-intel/internal/adapter/dto/meeting"
	"github.com/truthos/meeting-intel/internal/infrastructure/external/backend"
)

// MeetingHandler relays meeting operations to the upstream backend
type MeetingHandler struct {
	relay  *backend.Client
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting relay handler
func NewMeetingHandler(relay *backend.Client, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{relay: relay, logger: logger}
}

// Create ingests a new meeting record
// @Summary      Create a meeting
// @Description  Validates the meeting payload and relays it to the upstream backend
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateMeetingRequest  true  "Meeting to create"
// @Success      201      {object}  entities.Meeting          "Created meeting"
// @Failure      400      {object}  common.ErrorEnvelope      "Invalid payload"
// @Failure      500      {object}  common.ErrorEnvelope      "Upstream unreachable"
// @Router       /meetings [post]
func (h *MeetingHandler) Create(c echo.Context) error {
	var req dto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest,
			common.NewErrorEnvelope("INVALID_ARGUMENT", "Invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest,
			common.NewErrorEnvelope("INVALID_ARGUMENT", err.Error()))
	}

	body, err := json.Marshal(req)
	if err != nil {
		return writeRelayError(h.logger, c, "Failed to create meeting", err)
	}

	resp, err := h.relay.Forward(c.Request().Context(), http.MethodPost, "/api/meetings", c.Request().Header, body)
	if err != nil {
		return writeRelayError(h.logger, c, "Failed to create meeting", err)
	}

	// Upstream status and body are relayed verbatim, success or not
	return c.JSONBlob(resp.StatusCode, resp.Body)
}

// Get fetches a single meeting record
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string                true  "Meeting ID"
// @Success      200  {object}  entities.Meeting      "Meeting record"
// @Failure      500  {object}  common.ErrorEnvelope  "Upstream unreachable"
// @Router       /meetings/{id} [get]
func (h *MeetingHandler) Get(c echo.Context) error {
	resp, err := h.relay.Forward(c.Request().Context(), http.MethodGet,
		"/api/meetings/"+c.Param("id"), c.Request().Header, nil)
	if err != nil {
		return writeRelayError(h.logger, c, "Failed to fetch meeting", err)
	}
	return c.JSONBlob(resp.StatusCode, resp.Body)
}

// Analyze triggers analysis of a stored meeting
// @Summary      Trigger meeting analysis
// @Description  Relays the analyze request to the upstream backend, forwarding the caller's Authorization header. A 403 from upstream (insufficient role) is relayed verbatim.
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string                    true  "Meeting ID"
// @Success      200  {object}  entities.MeetingAnalysis  "Stored analysis"
// @Failure      403  {object}  common.ErrorEnvelope      "Insufficient role (relayed)"
// @Failure      500  {object}  common.ErrorEnvelope      "Upstream unreachable"
// @Router       /meetings/{id}/analyze [post]
func (h *MeetingHandler) Analyze(c echo.Context) error {
	resp, err := h.relay.Forward(c.Request().Context(), http.MethodPost,
		"/api/meetings/"+c.Param("id")+"/analyze", c.Request().Header, nil)
	if err != nil {
		return writeRelayError(h.logger, c, "Failed to analyze meeting", err)
	}
	return c.JSONBlob(resp.StatusCode, resp.Body)
}
