// Package web implements the job board http server
package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/jobboard/app/domain"
	"github.com/umputun/jobboard/app/web/persistence"
)

// Server represents the web server
type Server struct {
	store        Persistence
	validator    *Validator
	schemas      map[string][]byte // request name -> json schema
	writeLimiter *limiter.Limiter  // nil if write endpoints are not rate limited
	baseURL      string            // base URL path for reverse proxy (e.g., /jobboard), empty for root
	version      string
	seedOnStart  bool
}

//go:generate moq -out mocks/persistence.go -pkg mocks -skip-ensure -fmt goimports . Persistence

// Persistence defines storage operations of the job board.
// Every method is a single statement, failures are returned as is.
type Persistence interface {
	ListJobs(ctx context.Context) ([]domain.Job, error)
	CreateJob(ctx context.Context, job domain.NewJob) (int64, error)
	EnsureSeeded(ctx context.Context, jobs []domain.NewJob) (bool, error)
	Apply(ctx context.Context, app domain.NewApplication) (int64, error)
	ListApplications(ctx context.Context, jobID int64) ([]domain.Application, error)
	SendMessage(ctx context.Context, msg domain.NewMessage) (int64, error)
	ListMessages(ctx context.Context, jobID int64, userEmail string) ([]domain.Message, error)
	ListThread(ctx context.Context, jobID int64, a, b string) ([]domain.Message, error)
	Close() error
}

// Config holds server configuration
type Config struct {
	DBPath      string
	BaseURL     string  // base URL path for reverse proxy (e.g., /jobboard), empty for root
	Version     string
	WriteLimit  float64 // max write requests per second per client, 0 disables limiting
	SeedOnStart bool    // seed default jobs on start if the board is empty
}

// New creates a new web server
func New(cfg Config) (*Server, error) {
	store, err := persistence.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("web server initialization failed: failed to create SQLite store at %q: %w", cfg.DBPath, err)
	}

	schemas, err := requestSchemas()
	if err != nil {
		if closeErr := store.Close(); closeErr != nil {
			return nil, fmt.Errorf("web server initialization failed: %w (also failed to close store: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("web server initialization failed: %w", err)
	}

	s := &Server{
		store:       store,
		validator:   NewValidator(),
		schemas:     schemas,
		baseURL:     cfg.BaseURL,
		version:     cfg.Version,
		seedOnStart: cfg.SeedOnStart,
	}

	if cfg.WriteLimit > 0 {
		lmt := tollbooth.NewLimiter(cfg.WriteLimit, nil)
		lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})
		lmt.SetMessageContentType("application/json")
		lmt.SetMessage(`{"error":"rate limit exceeded"}`)
		s.writeLimiter = lmt
	}

	return s, nil
}

// Run starts the web server and blocks until ctx is canceled
func (s *Server) Run(ctx context.Context, address string) error {
	defer func() {
		if err := s.store.Close(); err != nil {
			log.Printf("[WARN] failed to close store: %v", err)
		}
	}()

	if s.seedOnStart {
		seeded, err := s.store.EnsureSeeded(ctx, domain.DefaultJobs())
		if err != nil {
			return fmt.Errorf("failed to seed jobs: %w", err)
		}
		log.Printf("[DEBUG] seed on start, inserted: %v", seeded)
	}

	server := &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown server: %v", err)
		}
	}()

	log.Printf("[INFO] starting web server on %s", address)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// Handler returns the server's http.Handler, for embedding into another server or tests
func (s *Server) Handler() http.Handler {
	return s.handler()
}

// Close closes the underlying store, for servers used through Handler without Run
func (s *Server) Close() error {
	return s.store.Close()
}

// handler returns the http.Handler with base URL wrapping applied
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}

	mux := http.NewServeMux()
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	return mux
}

// routes returns the http.Handler with all routes configured
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	router.Use(
		rest.RealIP,
		rest.Recoverer(log.Default()),
		rest.Throttle(1000),
		rest.AppInfo("jobboard", "umputun", s.version),
		rest.Ping,
		rest.Trace,
		rest.SizeLimit(64*1024), // 64KB max request size
		logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler,
		rest.NoCache,
	)

	router.HandleFunc("GET /jobs", s.handleListJobs)
	router.HandleFunc("GET /applications/{jobId}", s.handleListApplications)
	router.HandleFunc("GET /messages/{jobId}/{userEmail}", s.handleListMessages)
	router.HandleFunc("GET /schema/{name}", s.handleSchema)

	router.Group().Route(func(wr *routegroup.Bundle) {
		if s.writeLimiter != nil {
			wr.Use(tollbooth.HTTPMiddleware(s.writeLimiter))
		}
		wr.HandleFunc("POST /jobs", s.handleCreateJob)
		wr.HandleFunc("POST /jobs/seed", s.handleSeedJobs)
		wr.HandleFunc("POST /apply", s.handleApply)
		wr.HandleFunc("POST /messages", s.handleSendMessage)
	})

	return router
}
