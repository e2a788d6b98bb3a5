package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/awantha2003/portfolio-backend/config"
	"github.com/awantha2003/portfolio-backend/database"
	"github.com/awantha2003/portfolio-backend/githubapi"
	"github.com/awantha2003/portfolio-backend/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	imageStore, err := storage.NewFromConfig(context.Background(), c)
	if err != nil {
		return Server{}, fmt.Errorf("initialize image store: %w", err)
	}

	router := newRouter(database, withConfig(c), withStartupTime(startupTime), withImageStore(imageStore))

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

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
	imageStore  storage.ImageStore
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

func withImageStore(store storage.ImageStore) func(*router) {
	return func(r *router) {
		r.imageStore = store
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	githubUser := config.GetString(router.config, "GITHUB_USERNAME", "")
	githubToken := config.GetString(router.config, "GITHUB_TOKEN", "")
	deps := handlerDeps{
		imageStore:    router.imageStore,
		github:        githubapi.NewClient(context.Background(), githubUser, githubToken),
		contributions: githubapi.NewContributionsClient(githubUser),
	}

	handlers := initializeHandlers(database, deps)
	authMiddleware := newAuthMiddleware(router.config)

	setupRoutes(chiRouter, handlers, authMiddleware)

	// Locally stored images are served straight from disk
	if local, ok := router.imageStore.(*storage.LocalStore); ok {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(local.Root())))
		chiRouter.Handle("/uploads/*", fileServer)
	}

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
