// Package server provides the HTTP API for the visibility scanner.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/amplifyai/amplify-backend/internal/config"
	"github.com/amplifyai/amplify-backend/internal/db"
	"github.com/amplifyai/amplify-backend/internal/persona"
	"github.com/amplifyai/amplify-backend/internal/report"
	"github.com/amplifyai/amplify-backend/internal/server/middleware"
	"github.com/amplifyai/amplify-backend/internal/server/ratelimit"
)

// AnalyzeService is the pipeline surface the server depends on.
type AnalyzeService interface {
	Analyze(ctx context.Context, rawURL, email string) report.FinalReport
	PersonaEntry(identifier string) (persona.Entry, bool)
	GeneratePersonaCopy(ctx context.Context, c persona.Context) persona.Copy
}

// Server is the HTTP server for the scan API.
type Server struct {
	httpServer  *http.Server
	service     AnalyzeService
	db          *db.DB
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	validate    *validator.Validate
}

// New wires the server. The JWT secret may be empty, in which case the
// dashboard routes reject every request.
func New(cfg *config.Config, service AnalyzeService, database *db.DB) *Server {
	s := &Server{
		service:     service,
		db:          database,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		jwtService:  NewJWTService(cfg.JWTSecret, cfg.JWTExpirationHours),
		validate:    validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /persona/{identifier}", s.handleGetPersona)
	mux.HandleFunc("POST /generate-persona-copy", s.handleGeneratePersonaCopy)
	mux.HandleFunc("POST /capture-lead", s.handleCaptureLead)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Internal dashboard, behind the shared-secret JWT.
	auth := middleware.Auth(s.jwtService)
	mux.Handle("GET /dashboard/scans", auth(http.HandlerFunc(s.handleListScans)))
	mux.Handle("GET /dashboard/leads", auth(http.HandlerFunc(s.handleListLeads)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		// A scan can chain an HTTP fetch, a browser render and two LLM
		// calls before responding.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[SERVER] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[SERVER] %v", err)
		}
	}()

	<-stop
	log.Println("[SERVER] shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	s.db.Close()
	log.Println("[SERVER] stopped")
	return nil
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// withCORS adds CORS headers. The scan widget is embedded on arbitrary
// marketing pages, so the API is origin-open.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// clientIP extracts the client IP, preferring the first hop recorded in
// X-Forwarded-For since the service runs behind a proxy.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// rateLimitResponse writes a 429 with limiter details.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[SERVER] rate limit exceeded: limit=%d remaining=%d", info.Limit, info.Remaining)
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[SERVER] error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
