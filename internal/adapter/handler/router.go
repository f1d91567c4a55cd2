package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	httpmw "github.com/truthos/meeting-intel/internal/infrastructure/http/middleware"
	"github.com/truthos/meeting-intel/internal/usecase/auth"
	"github.com/truthos/meeting-intel/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	authService     auth.Service
	authHandler     *AuthHandler
	analysisHandler *AnalysisHandler
	meetingHandler  *MeetingHandler
	contactHandler  *ContactHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authService auth.Service,
	authHandler *AuthHandler,
	analysisHandler *AnalysisHandler,
	meetingHandler *MeetingHandler,
	contactHandler *ContactHandler,
) *Router {
	return &Router{
		cfg:             cfg,
		authService:     authService,
		authHandler:     authHandler,
		analysisHandler: analysisHandler,
		meetingHandler:  meetingHandler,
		contactHandler:  contactHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupAnalysisRoutes(v1)
	rt.setupRelayRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/logout", rt.authHandler.Logout, httpmw.OptionalSession(rt.authService))
	authGroup.GET("/me", rt.authHandler.Me, httpmw.RequireSession(rt.authService))
}

// setupAnalysisRoutes configures the transcript analysis route
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	g.POST("/llm/analyze", rt.analysisHandler.Analyze,
		httpmw.OptionalSession(rt.authService))
}

// setupRelayRoutes configures the routes relayed to the upstream
// backend. These use optional sessions: the upstream owns the real
// authorization decision, the session here only shapes responses.
func (rt *Router) setupRelayRoutes(g *echo.Group) {
	optional := httpmw.OptionalSession(rt.authService)

	meetings := g.Group("/meetings", optional)
	meetings.POST("", rt.meetingHandler.Create)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.POST("/:id/analyze", rt.meetingHandler.Analyze)

	contacts := g.Group("/contacts", optional)
	contacts.GET("/:id/meetings", rt.contactHandler.Meetings)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
