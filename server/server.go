package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/samber/lo"

	"github.com/umputun/noticrawl/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	scheduler Scheduler
	boards    []domain.Board
	boardsIdx map[string]domain.Board
	metrics   http.Handler
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	RecentArticles(ctx context.Context, boardID string, limit int) ([]domain.Article, error)
	CountArticles(ctx context.Context, boardID string) (int64, error)
	GetSubscriber(ctx context.Context, userID string) (*domain.Subscriber, error)
	UpsertSubscriber(ctx context.Context, sub domain.Subscriber) error
	DeleteSubscriber(ctx context.Context, userID string) error
	CountSubscribers(ctx context.Context) (int64, error)
}

// Scheduler interface for on-demand runs and run state
type Scheduler interface {
	Trigger() bool
	RunNow(ctx context.Context) (domain.RunStats, error)
	LastRun() (domain.RunStats, bool)
	Running() bool
	Interval() time.Duration
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params defines server dependencies, Metrics is optional
type Params struct {
	Config    ConfigProvider
	Database  Database
	Scheduler Scheduler
	Boards    []domain.Board
	Metrics   http.Handler
	Version   string
	Debug     bool
}

// New initializes a new server instance
func New(params Params) *Server {
	s := &Server{
		config:    params.Config,
		db:        params.Database,
		scheduler: params.Scheduler,
		boards:    params.Boards,
		boardsIdx: lo.KeyBy(params.Boards, func(b domain.Board) string { return b.ID }),
		metrics:   params.Metrics,
		version:   params.Version,
		debug:     params.Debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("noticrawl", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	if s.metrics != nil {
		s.router.Handle("GET /metrics", s.metrics)
	}

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /run", s.runHandler)
		r.HandleFunc("GET /boards", s.boardsHandler)
		r.HandleFunc("GET /boards/{id}/articles", s.articlesHandler)
		r.HandleFunc("GET /subscribers/{id}", s.getSubscriberHandler)
		r.HandleFunc("PUT /subscribers/{id}", s.putSubscriberHandler)
		r.HandleFunc("DELETE /subscribers/{id}", s.deleteSubscriberHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
