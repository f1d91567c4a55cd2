package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/truthos/meeting-intel/errors"
	dto "github.com/truthos/meeting-intel/internal/adapter/dto/auth"
	"github.com/truthos/meeting-intel/internal/adapter/dto/common"
	httpmw "github.com/truthos/meeting-intel/internal/infrastructure/http/middleware"
	"github.com/truthos/meeting-intel/internal/usecase/auth"
)

// AuthHandler exposes login, logout and session introspection
type AuthHandler struct {
	svc    auth.Service
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

// Login exchanges credentials for a bearer token
// @Summary      Login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequest      true  "Credentials"
// @Success      200      {object}  dto.LoginResponse     "Token and role"
// @Failure      401      {object}  common.ErrorEnvelope  "Invalid credentials"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest,
			common.NewErrorEnvelope("INVALID_ARGUMENT", "Invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest,
			common.NewErrorEnvelope("INVALID_ARGUMENT", err.Error()))
	}

	token, user, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		logError(h.logger, c, err)
		var appErr errors.AppError
		if stdErrors.As(err, &appErr) {
			return c.JSON(appErr.HTTPCode,
				common.NewErrorEnvelope(appErr.Code.String(), appErr.Message))
		}
		return c.JSON(http.StatusInternalServerError,
			common.NewErrorEnvelope("INTERNAL_ERROR", "Login failed"))
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Email:       user.Email,
		Role:        string(user.Role),
	})
}

// Me returns the caller's resolved identity
// @Summary      Current session
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MeResponse        "Email and role"
// @Failure      401  {object}  common.ErrorEnvelope  "Not authenticated"
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	session, ok := httpmw.GetSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized,
			common.NewErrorEnvelope("UNAUTHENTICATED", "Authentication required"))
	}
	return c.JSON(http.StatusOK, dto.MeResponse{
		Email: session.Email,
		Role:  string(session.Role),
	})
}

// Logout clears the caller's session
// @Summary      Logout
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string  "Confirmation"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get(httpmw.TokenContextKey).(string)
	if err := h.svc.Logout(c.Request().Context(), token); err != nil {
		logError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}
