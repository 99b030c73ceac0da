// Package api pkg/api/server.go serves the mirror's HTTP surface: status,
// manual sync, polling recovery, mirrored resources, derived usage, and a
// websocket event stream.
package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/linkmirror/linkmirror/pkg/db"
	"github.com/linkmirror/linkmirror/pkg/sync"
)

const readHeaderTimeout = 10 * time.Second

// APIServer exposes the sync engine and the mirror store over HTTP.
type APIServer struct {
	manager sync.Manager
	store   db.Service
	logger  *log.Logger
	router  *mux.Router
	server  *http.Server
	hub     *eventHub
}

// NewServer builds the server. Start must be called for the event stream
// to deliver anything.
func NewServer(listenAddr string, manager sync.Manager, store db.Service, logger *log.Logger) *APIServer {
	if logger == nil {
		logger = log.Default()
	}

	s := &APIServer{
		manager: manager,
		store:   store,
		logger:  logger,
		router:  mux.NewRouter(),
		hub:     newEventHub(),
	}

	s.server = &http.Server{
		Addr:              listenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	s.setupRoutes()

	return s
}

func (s *APIServer) setupRoutes() {
	// Add CORS middleware
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	s.router.HandleFunc("/api/status", s.getStatus).Methods("GET")
	s.router.HandleFunc("/api/sync/{resource}", s.forceSync).Methods("POST")
	s.router.HandleFunc("/api/polling/{resource}/restart", s.restartPolling).Methods("POST")

	// Mirrored resources
	s.router.HandleFunc("/api/users", s.getUsers).Methods("GET")
	s.router.HandleFunc("/api/users/{id}", s.getUser).Methods("GET")
	s.router.HandleFunc("/api/wans", s.getWans).Methods("GET")
	s.router.HandleFunc("/api/wans/{id}", s.getWan).Methods("GET")
	s.router.HandleFunc("/api/lans", s.getLans).Methods("GET")
	s.router.HandleFunc("/api/lans/{id}", s.getLan).Methods("GET")
	s.router.HandleFunc("/api/interfaces", s.getInterfaces).Methods("GET")
	s.router.HandleFunc("/api/interfaces/{id}", s.getInterface).Methods("GET")

	// Derived usage
	s.router.HandleFunc("/api/users/{id}/usage", s.getUserUsage).Methods("GET")
	s.router.HandleFunc("/api/users/{id}/usage/daily", s.getUserDailyUsage).Methods("GET")
	s.router.HandleFunc("/api/wans/{id}/usage", s.getWanUsage).Methods("GET")
	s.router.HandleFunc("/api/lans/{id}/usage", s.getLanUsage).Methods("GET")

	// Event stream
	s.router.HandleFunc("/api/events", s.handleEvents).Methods("GET")
}

// Start runs the HTTP server until Stop is called. It blocks.
func (s *APIServer) Start(ctx context.Context) error {
	go s.hub.run(ctx, s.manager.Events())

	s.logger.Printf("API server listening on %s", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop shuts the HTTP server down gracefully.
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
