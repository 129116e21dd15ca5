// Package http exposes the assistant over a JSON API: one endpoint that
// dispatches an already-classified command, one that interprets raw
// transcribed text through the cloud classifier first, and a state snapshot
// for the web client.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"hablapp/internal/classifier"
	"hablapp/internal/middleware/trace"
	"hablapp/internal/services"
)

// Interpreter is the classifier capability the server needs; nil means the
// interpret endpoint is unavailable.
type Interpreter interface {
	Classify(ctx context.Context, text string) (classifier.Classification, error)
}

type Server struct {
	http.Server
	assistant   *services.Assistant
	interpreter Interpreter
	rateLimiter *rateLimiter

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// server. interpreter may be nil when no classifier is configured.
func NewServer(addr string, assistant *services.Assistant, interpreter Interpreter) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr: addr,
		},
		assistant:   assistant,
		interpreter: interpreter,
		rateLimiter: newRateLimiter(),
	}

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/assistant/dispatch", s.withRateLimit(s.handleDispatch))
	mux.HandleFunc("/api/assistant/interpret", s.withRateLimit(s.handleInterpret))
	mux.HandleFunc("/api/assistant/state", s.withRateLimit(s.handleState))

	s.Handler = trace.Middleware(mux)
	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func (s *Server) withRateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.allow(clientIP(r)) {
			writeError(w, r, http.StatusTooManyRequests, "Demasiadas solicitudes")
			return
		}
		next(w, r)
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return r.RemoteAddr
}

// Simple in-memory rate limiter
type rateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientInfo
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type clientInfo struct {
	lastRequest time.Time
	requests    int
}

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{
		clients:     make(map[string]*clientInfo),
		stopCleanup: make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

func (rl *rateLimiter) startCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanupStaleEntries removes client entries older than 10 minutes
func (rl *rateLimiter) cleanupStaleEntries() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, client := range rl.clients {
		if client.lastRequest.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.shutdownOnce.Do(func() {
		if rl.stopCleanup != nil {
			close(rl.stopCleanup)
		}
	})
}

func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[clientIP]

	if !exists {
		rl.clients[clientIP] = &clientInfo{lastRequest: now, requests: 1}
		return true
	}

	// Reset counter if more than 1 minute has passed
	if now.Sub(client.lastRequest) > time.Minute {
		client.requests = 1
		client.lastRequest = now
		return true
	}

	// Allow up to 60 requests per minute
	client.requests++
	client.lastRequest = now
	return client.requests <= 60
}
