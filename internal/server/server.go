// Package server provides the HTTP REST API for the resume roaster.
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
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonathan/resume-roaster/internal/db"
	"github.com/jonathan/resume-roaster/internal/generation"
	"github.com/jonathan/resume-roaster/internal/llm"
	"github.com/jonathan/resume-roaster/internal/profile"
	"github.com/jonathan/resume-roaster/internal/roast"
	"github.com/jonathan/resume-roaster/internal/server/ratelimit"
	"github.com/jonathan/resume-roaster/internal/types"
)

// Per-endpoint rate limit ceilings. Generation endpoints are the most
// expensive calls in the system, so they get the tightest window.
const (
	previewLimitPerMinute = 5
	roastLimitPerMinute   = 10
)

// tailorService is the slice of the tailoring pipeline the handlers
// need.
type tailorService interface {
	Preview(ctx context.Context, req generation.Request) (*types.GeneratedResume, error)
	Tailor(ctx context.Context, req generation.Request) (*types.GeneratedResume, error)
}

// roastService critiques a resume against a job description.
type roastService interface {
	Roast(ctx context.Context, req roast.Request) (*types.RoastResult, error)
}

// profileService parses and stores candidate profiles.
type profileService interface {
	Parse(ctx context.Context, ownerID uuid.UUID, resumeText string) (*types.CandidateProfile, error)
}

// artifactReader reads stored profiles and generated artifacts.
type artifactReader interface {
	GetMasterCV(ctx context.Context, ownerID uuid.UUID) (*db.MasterCV, error)
	GetGeneratedResume(ctx context.Context, id uuid.UUID) (*types.GeneratedResume, error)
	ListGeneratedResumes(ctx context.Context, ownerID uuid.UUID, limit int) ([]db.ResumeSummary, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	database   *db.DB
	llmClient  llm.Client

	tailor  tailorService
	roaster roastService
	parser  profileService
	reader  artifactReader

	previewLimiter ratelimit.Limiter
	roastLimiter   ratelimit.Limiter
	validate       *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	Models      *llm.Config
}

// New creates a new server instance wired to real dependencies.
func New(ctx context.Context, cfg Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	gemini, err := llm.NewGeminiClient(ctx, cfg.Models, cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}
	client := llm.NewRetryClient(gemini)

	s := newServer(
		generation.NewService(client, database),
		roast.NewService(client),
		profile.NewService(client, database),
		database,
		ratelimit.NewFixedWindow(previewLimitPerMinute, time.Minute),
		ratelimit.NewFixedWindow(roastLimitPerMinute, time.Minute),
	)
	s.database = database
	s.llmClient = client
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls are slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newServer wires the handler layer. Dependencies are injectable so
// tests can swap in fakes.
func newServer(tailor tailorService, roaster roastService, parser profileService, reader artifactReader, previewLimiter, roastLimiter ratelimit.Limiter) *Server {
	return &Server{
		tailor:         tailor,
		roaster:        roaster,
		parser:         parser,
		reader:         reader,
		previewLimiter: previewLimiter,
		roastLimiter:   roastLimiter,
		validate:       validator.New(),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /roast", s.withLimit(s.roastLimiter, "roast", s.handleRoast))
	mux.HandleFunc("POST /tailor", s.withLimit(s.previewLimiter, "tailor", s.handleTailor))
	mux.HandleFunc("POST /preview", s.withLimit(s.previewLimiter, "preview", s.handlePreview))
	mux.HandleFunc("POST /master-cv", s.handleParseMasterCV)
	mux.HandleFunc("GET /master-cv/{owner_id}", s.handleGetMasterCV)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s.withMetrics(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing model client: %v", err)
		}
	}
	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
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
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withLimit enforces a per-client rate limit on a single route.
func (s *Server) withLimit(limiter ratelimit.Limiter, route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r) + ":" + route
		allowed, info := limiter.Allow(key)
		setRateLimitHeaders(w, info)
		if !allowed {
			rateLimitedTotal.WithLabelValues(route).Inc()
			log.Printf("[rate-limit] %s throttled on %s, retry after %v", clientIP(r), route, info.RetryAfter)
			s.rateLimitResponse(w, info)
			return
		}
		next(w, r)
	}
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps a pipeline error to a status code and a safe
// message, then writes it.
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("request failed: %v", err)
	}
	s.errorResponse(w, status, PublicMessage(err, status))
}

// clientIP extracts the client identifier from the request. Proxy
// headers win over RemoteAddr so limits follow the real client through
// a load balancer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// First entry is the originating client.
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			fwd = fwd[:idx]
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return strings.TrimSpace(real)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate
// limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
