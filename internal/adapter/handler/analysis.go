package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/truthos/meeting-intel/errors"
	dto "github.com/truthos/meeting-intel/internal/adapter/dto/analysis"
	"github.com/truthos/meeting-intel/internal/usecase/analysis"
)

// AnalysisHandler exposes transcript analysis over HTTP
type AnalysisHandler struct {
	svc    analysis.Service
	logger *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc analysis.Service, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, logger: logger}
}

// Analyze runs LLM analysis on a submitted transcript
// @Summary      Analyze a meeting transcript
// @Description  Extracts sentiment, topics, objections, commitments, outcome and a summary from a transcript
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalyzeRequest      true  "Transcript to analyze"
// @Success      200      {object}  entities.AnalysisResult "Structured analysis"
// @Failure      400      {object}  common.AnalysisError    "Missing transcript"
// @Failure      500      {object}  common.AnalysisError    "Provider or parsing failure"
// @Router       /llm/analyze [post]
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return writeAnalysisError(h.logger, c, errors.ErrMissingTranscript())
	}

	// Reject before the provider is ever contacted
	if strings.TrimSpace(req.Transcript) == "" {
		return writeAnalysisError(h.logger, c, errors.ErrMissingTranscript())
	}

	result, err := h.svc.AnalyzeTranscript(c.Request().Context(), req.Transcript)
	if err != nil {
		return writeAnalysisError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, result)
}
