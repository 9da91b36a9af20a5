// Package api implements an HTTP + WebSocket job server: submit a
// Collatz trajectory or Lucas-Lehmer primality computation, poll its
// status, and receive its result event over a WebSocket. Built
// on a plain ServeMux, CORS middleware restricted to localhost origins,
// graceful Shutdown, and the broadcaster's fan-out subscription model
// over per-job state.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// Server is the HTTP API server.
type Server struct {
	jobs        *JobManager
	broadcaster *Broadcaster
	mux         *http.ServeMux
	server      *http.Server
	port        int
}

// NewServer creates an API server listening on port once Start is
// called, with no limit on concurrently running jobs.
func NewServer(port int) *Server {
	return NewServerWithConcurrencyLimit(port, 0)
}

// NewServerWithConcurrencyLimit creates an API server that runs at
// most maxConcurrentJobs numtheory computations at once (<= 0 means
// unlimited), the value bignumctl loads from
// config.Config.Server.MaxConcurrentJobs.
func NewServerWithConcurrencyLimit(port, maxConcurrentJobs int) *Server {
	broadcaster := NewBroadcaster()

	s := &Server{
		jobs:        NewJobManagerWithConcurrencyLimit(broadcaster, maxConcurrentJobs),
		broadcaster: broadcaster,
		mux:         http.NewServeMux(),
		port:        port,
	}

	s.registerRoutes()
	return s
}

// Handler returns the server's HTTP handler with CORS middleware applied.
func (s *Server) Handler() http.Handler {
	return s.corsMiddleware(s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/v1/ws", s.handleWebSocket)
	s.mux.HandleFunc("/api/v1/jobs/collatz", s.handleCreateCollatz)
	s.mux.HandleFunc("/api/v1/jobs/lucas-lehmer", s.handleCreateLucasLehmer)
	s.mux.HandleFunc("/api/v1/jobs", s.handleJobList)
	s.mux.HandleFunc("/api/v1/jobs/", s.handleJobRoute)
}

// Start runs the HTTP server until it errors or is shut down.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("127.0.0.1:%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("bignum api server starting on http://127.0.0.1:%d", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server and closes the broadcaster.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.broadcaster != nil {
		s.broadcaster.Close()
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Broadcaster returns the server's event broadcaster (for tests).
func (s *Server) Broadcaster() *Broadcaster { return s.broadcaster }

// Jobs returns the server's job manager (for tests).
func (s *Server) Jobs() *JobManager { return s.jobs }

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if isAllowedOrigin(origin) && origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isAllowedOrigin(origin string) bool {
	if origin == "" {
		return true
	}
	if strings.HasPrefix(origin, "http://localhost") ||
		strings.HasPrefix(origin, "https://localhost") ||
		strings.HasPrefix(origin, "http://127.0.0.1") ||
		strings.HasPrefix(origin, "https://127.0.0.1") {
		return true
	}
	return false
}
