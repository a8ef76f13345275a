// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	authHTTP "github.com/allisson/notes/internal/auth/http"
	authService "github.com/allisson/notes/internal/auth/service"
	"github.com/allisson/notes/internal/database"
	labelHTTP "github.com/allisson/notes/internal/label/http"
	"github.com/allisson/notes/internal/metrics"
	noteHTTP "github.com/allisson/notes/internal/note/http"
	userHTTP "github.com/allisson/notes/internal/user/http"
)

// RouterConfig holds the handlers and settings needed to assemble the API routes.
type RouterConfig struct {
	TokenCodec   authService.TokenCodec
	LoginHandler *authHTTP.LoginHandler
	UserHandler  *userHTTP.UserHandler
	NoteHandler  *noteHTTP.NoteHandler
	LabelHandler *labelHTTP.LabelHandler

	// Login rate limiting
	LoginRateLimitEnabled        bool
	LoginRateLimitRequestsPerSec float64
	LoginRateLimitBurst          int

	// CORS
	CORSEnabled      bool
	CORSAllowOrigins string

	// Metrics (optional, nil MeterProvider disables HTTP metrics)
	MeterProvider    metric.MeterProvider
	MetricsNamespace string
}

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the Gin router with all middleware and API routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cfg.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MeterProvider, cfg.MetricsNamespace))
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	api := router.Group("/api")

	// Public endpoints
	login := api.Group("")
	if cfg.LoginRateLimitEnabled {
		login.Use(authHTTP.LoginRateLimitMiddleware(
			cfg.LoginRateLimitRequestsPerSec,
			cfg.LoginRateLimitBurst,
			s.logger,
		))
	}
	login.POST("/login", cfg.LoginHandler.LoginHandler)
	api.POST("/users", cfg.UserHandler.RegisterUserHandler)

	// Authenticated endpoints
	authenticated := api.Group("")
	authenticated.Use(authHTTP.AuthenticationMiddleware(cfg.TokenCodec, s.logger))

	authenticated.GET("/users/me", cfg.UserHandler.MeHandler)
	authenticated.PUT("/users/:id", cfg.UserHandler.UpdateUserHandler)
	authenticated.DELETE("/users/:id", cfg.UserHandler.DeleteUserHandler)

	admin := authenticated.Group("")
	admin.Use(authHTTP.RequireAdminMiddleware(s.logger))
	admin.GET("/users", cfg.UserHandler.ListUsersHandler)

	authenticated.POST("/notes", cfg.NoteHandler.CreateNoteHandler)
	authenticated.GET("/notes", cfg.NoteHandler.ListNotesHandler)
	authenticated.GET("/notes/:id", cfg.NoteHandler.GetNoteHandler)
	authenticated.PUT("/notes/:id", cfg.NoteHandler.UpdateNoteHandler)
	authenticated.DELETE("/notes/:id", cfg.NoteHandler.DeleteNoteHandler)

	authenticated.POST("/labels", cfg.LabelHandler.CreateLabelHandler)
	authenticated.GET("/labels", cfg.LabelHandler.ListLabelsHandler)
	authenticated.GET("/labels/:id", cfg.LabelHandler.GetLabelHandler)
	authenticated.PUT("/labels/:id", cfg.LabelHandler.UpdateLabelHandler)
	authenticated.DELETE("/labels/:id", cfg.LabelHandler.DeleteLabelHandler)

	s.router = router
}

// GetHandler returns the configured router for testing purposes.
// Returns nil until SetupRouter is called.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server is ready to accept traffic.
// It checks the database connection and returns 503 when it is unavailable.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	if s.db == nil {
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	if err := database.HealthCheck(c.Request.Context(), s.db); err != nil {
		s.logger.Error("database health check failed", slog.Any("error", err))
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not configured, call SetupRouter first")
	}

	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
