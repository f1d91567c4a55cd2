package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/truthos/meeting-intel/errors"
	"github.com/truthos/meeting-intel/internal/adapter/dto/common"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// logError records a handler failure with its request context
func logError(logger *zap.Logger, c echo.Context, err error) {
	if logger == nil {
		return
	}
	logger.Error("http.response.error",
		zap.String("request_id", getRequestID(c)),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
}

// writeAnalysisError converts an error into the analysis endpoint's
// {error, details} envelope. Invalid input keeps its specific message;
// everything else gets a generic message with the diagnostic in the
// details field and the full error in the logs.
func writeAnalysisError(logger *zap.Logger, c echo.Context, err error) error {
	logError(logger, c, err)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		body := common.AnalysisError{Error: appErr.Message}
		if appErr.HTTPCode >= 500 {
			body.Error = "Failed to analyze transcript"
			if appErr.Raw != nil {
				body.Details = appErr.Raw.Error()
			} else {
				body.Details = appErr.Code.String()
			}
		}
		return c.JSON(appErr.HTTPCode, body)
	}

	return c.JSON(http.StatusInternalServerError, common.AnalysisError{
		Error:   "Failed to analyze transcript",
		Details: err.Error(),
	})
}

// writeRelayError writes the fixed internal-error envelope used when
// the upstream backend is unreachable or returned an unusable body
func writeRelayError(logger *zap.Logger, c echo.Context, message string, err error) error {
	logError(logger, c, err)
	return c.JSON(http.StatusInternalServerError,
		common.NewErrorEnvelope("INTERNAL_ERROR", message))
}
