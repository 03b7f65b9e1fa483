// Package api exposes the matching engine over HTTP.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ageumenezesDev19/DesPensa/internal/application/service"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// Server is the HTTP API server.
type Server struct {
	config Config
	router *gin.Engine
	svc    *service.Service
	logger *slog.Logger
}

// NewServer creates a new API server over the service.
func NewServer(cfg Config, svc *service.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s := &Server{
		config: cfg,
		router: router,
		svc:    svc,
		logger: logger,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.health)

		api.GET("/products", s.listProducts)
		api.GET("/products/:code", s.getProduct)
		api.POST("/products/import", s.importProducts)

		api.GET("/search/nearest", s.searchNearest)
		api.POST("/search/combination", s.searchCombination)

		api.POST("/withdrawals", s.withdraw)
		api.GET("/withdrawals", s.listWithdrawals)
		api.DELETE("/withdrawals", s.clearWithdrawals)

		api.GET("/exclusions", s.listExclusions)
		api.POST("/exclusions", s.addExclusion)
		api.DELETE("/exclusions/:term", s.removeExclusion)
	}
}

// Router returns the gin engine for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the HTTP server until it fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.Info("starting API server", "addr", addr)

	if err := s.router.Run(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
