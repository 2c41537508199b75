package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/Antonio12313/mexase-api/config"
	"github.com/Antonio12313/mexase-api/internal/api"
	"github.com/Antonio12313/mexase-api/internal/client"
	"github.com/Antonio12313/mexase-api/internal/database"
	"github.com/Antonio12313/mexase-api/internal/middleware"
	"github.com/Antonio12313/mexase-api/internal/router"
	"github.com/Antonio12313/mexase-api/internal/service"
)

// Server owns the HTTP server and its collaborators: the Redis connection
// and the record API client.
type Server struct {
	http  *http.Server
	redis *redis.Client
}

// New wires the whole service from configuration.
func New(cfg *config.Config) (*Server, error) {
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to Redis: %w", err)
	}

	recordAPI := client.New(cfg.RecordAPIURL)

	authService := service.NewAuthService(recordAPI, cfg.JWTSecret)
	sessionStore := service.NewRedisSessionStore(redisClient)
	wizardService := service.NewWizardService(recordAPI, sessionStore)

	handlers := router.Handlers{
		Auth:         api.NewAuthHandler(authService),
		Wizard:       api.NewWizardHandler(wizardService, middleware.NewSessionCreationRateLimiter(redisClient)),
		Patient:      api.NewPatientHandler(recordAPI),
		Nutritionist: api.NewNutritionistHandler(recordAPI),
		Dashboard:    api.NewDashboardHandler(recordAPI),
	}

	engine := router.SetupRouter(handlers, authService, redisClient, cfg.CORSOrigins)

	return &Server{
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
		redis: redisClient,
	}, nil
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully and closes the Redis connection.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	if s.redis != nil {
		if cerr := s.redis.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
