package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/pasteshare/paste-api/docs"
	"github.com/pasteshare/paste-api/internal/api/handler"
	"github.com/pasteshare/paste-api/internal/api/middleware"
	"github.com/pasteshare/paste-api/internal/core/domain"
	"github.com/pasteshare/paste-api/internal/core/ports"
)

// Dependencies are the services and probes the HTTP layer is built from.
type Dependencies struct {
	Auth   ports.AuthService
	Pastes ports.PasteService
	Users  ports.UserService

	// Readiness checks run by GET /health/ready, keyed by dependency name.
	Readiness map[string]handler.Checker

	Logger zerolog.Logger

	// Registry receives the HTTP request metrics and backs GET /metrics.
	// Nil uses the Prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Logger))

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "paste",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health" || c.Path() == "/health/ready"
		},
	}))

	// --- Operational routes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	pasteHandler := handler.NewPasteHandler(deps.Pastes)
	userHandler := handler.NewUserHandler(deps.Users)

	requireAuth := middleware.Auth(deps.Auth)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	v1.GET("/auth/signup", authHandler.Signup)
	v1.POST("/auth/signup", authHandler.Signup)
	v1.POST("/auth", authHandler.Login)

	// --- Paste routes ---
	v1.GET("/paste/:id", pasteHandler.Get)
	v1.DELETE("/paste/:id", pasteHandler.Delete, requireAuth)
	v1.POST("/paste", pasteHandler.Create, requireAuth)
	v1.GET("/pastes", pasteHandler.List, requireAuth)

	// --- User routes ---
	v1.GET("/users", userHandler.List, requireAuth, requireAdmin)
	v1.GET("/user/:username", userHandler.Profile, requireAuth)
	v1.DELETE("/user/:username", userHandler.Delete, requireAuth)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			} else if v.Status >= 400 {
				evt = log.Warn()
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
