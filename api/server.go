package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fundflow/backend/config"
	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db *database.Factory) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router := newRouter(db, withConfig(c), withStartupTime(startupTime))

	readTimeout := config.GetDuration(c, "READ_TIMEOUT", 60*time.Second)
	writeTimeout := config.GetDuration(c, "WRITE_TIMEOUT", 60*time.Second)
	idleTimeout := config.GetDuration(c, "IDLE_TIMEOUT", 120*time.Second)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(db *database.Factory, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestIDMiddleware)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(ColoredHTTPLoggingMiddleware)

	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	auth := services.NewAuthService(
		config.GetString(router.config, "JWT_SECRET", "development-secret"),
		config.GetDuration(router.config, "TOKEN_TTL", 24*time.Hour),
	)

	handlers := initializeHandlers(db, auth, router.startupTime)
	authMiddleware := newAuthMiddleware(auth)

	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefulCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefulCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
