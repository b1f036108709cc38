package api

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/blog-system/docs"
	"github.com/99minutos/blog-system/internal/api/handler"
	"github.com/99minutos/blog-system/internal/api/metrics"
	"github.com/99minutos/blog-system/internal/api/middleware"
	"github.com/99minutos/blog-system/internal/api/view"
	"github.com/99minutos/blog-system/internal/core/ports"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Auth        ports.AuthService
	Posts       ports.PostService
	Sessions    sessions.Store
	SessionName string
	Log         zerolog.Logger

	// HealthChecks feeds /health/ready, keyed by dependency name.
	HealthChecks map[string]handler.PingFunc

	// Metrics enables /metrics and request instrumentation when non-nil.
	Metrics *prometheus.Registry

	// Swagger mounts /swagger/* when true.
	Swagger bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	var blogMetrics *metrics.Metrics
	if deps.Metrics != nil {
		blogMetrics = metrics.New(deps.Metrics)
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLog(deps.Log))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "same-origin",
	}))
	if deps.Metrics != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "http",
			Registerer: deps.Metrics,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics"
			},
		}))
	}
	e.Use(session.Middleware(deps.Sessions))
	e.Use(middleware.LoadIdentity(deps.SessionName, deps.Log))

	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireAdmin()

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.SessionName, blogMetrics, deps.Log)
	postHandler := handler.NewPostHandler(deps.Posts, blogMetrics, deps.Log)
	pageHandler := handler.NewPageHandler()
	healthHandler := handler.NewHealthHandler(deps.HealthChecks)

	// --- Public pages ---
	e.GET("/", postHandler.Home)
	e.GET("/about", pageHandler.About)
	e.GET("/contact", pageHandler.Contact)
	e.GET("/posts/:postId", postHandler.Show)
	e.StaticFS("/public", view.PublicFS())

	// --- Auth routes ---
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/profile", authHandler.Profile, requireAuth)

	// --- Authoring ---
	e.GET("/compose", postHandler.ComposeForm, requireAuth)
	e.POST("/compose", postHandler.Compose, requireAuth)

	// --- Moderation ---
	e.GET("/admin", postHandler.Admin, requireAdmin)
	e.POST("/posts/:postId/delete", postHandler.Delete, requireAdmin)
	e.GET("/posts/:postId/edit", postHandler.EditForm, requireAdmin)
	e.POST("/posts/:postId/edit", postHandler.Update, requireAdmin)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	if deps.Metrics != nil {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: deps.Metrics,
		}))
	}
	if deps.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	e.GET("/favicon.ico", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	return e, nil
}
