// Package server exposes placement engines over a JSON HTTP API.
//
// Each session holds one snapshot record. A request rebuilds the engine from
// the record, applies one operation under the session's lock and stores the
// new record, so handlers never share engine values between goroutines.
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/polygrid/pkg/cache"
	"github.com/matzehuels/polygrid/pkg/placement"
	"github.com/matzehuels/polygrid/pkg/session"
)

const (
	defaultRenderTTL       = time.Hour
	defaultCleanupInterval = 10 * time.Minute
	shutdownTimeout        = 5 * time.Second
)

// Server serves the session API.
type Server struct {
	store      session.Store
	locks      *session.Locks
	cache      cache.Cache
	keyer      cache.Keyer
	logger     *log.Logger
	ttl        time.Duration
	engineOpts []placement.Option
	cleanup    time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. The default discards output.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithSessionTTL sets how long an untouched session lives.
func WithSessionTTL(ttl time.Duration) Option { return func(s *Server) { s.ttl = ttl } }

// WithRenderCache stores rendered artifacts in c under keys built by k.
// A nil k uses the default keyer.
func WithRenderCache(c cache.Cache, k cache.Keyer) Option {
	return func(s *Server) {
		s.cache = c
		if k != nil {
			s.keyer = k
		}
	}
}

// WithEngineOptions sets the options every session engine is built with,
// typically the configured bounds and defaults.
func WithEngineOptions(opts ...placement.Option) Option {
	return func(s *Server) { s.engineOpts = opts }
}

// WithCleanupInterval sets how often expired sessions are purged by Run.
func WithCleanupInterval(d time.Duration) Option { return func(s *Server) { s.cleanup = d } }

// New creates a server over store.
func New(store session.Store, opts ...Option) *Server {
	s := &Server{
		store:   store,
		locks:   session.NewLocks(),
		cache:   cache.NewMemoryCache(),
		keyer:   cache.NewDefaultKeyer(),
		logger:  log.New(io.Discard),
		ttl:     session.DefaultTTL,
		cleanup: defaultCleanupInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/tasks", s.handleTasks)

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Post("/grid", s.handleGrid)
			r.Post("/task", s.handleTask)
			r.Post("/params", s.handleParams)
			r.Post("/rotate", s.handleRotate)
			r.Post("/mirror", s.handleMirror)
			r.Post("/type", s.handleType)
			r.Post("/toggle", s.handleToggle)
			r.Get("/snapshot", s.handleSnapshot)
			r.Put("/snapshot", s.handleRestore)
			r.Get("/render", s.handleRender)
		})
	})
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
// Expired sessions are purged in the background while it runs.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go s.cleanupLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) cleanupLoop(ctx context.Context) {
	if s.cleanup <= 0 {
		return
	}
	ticker := time.NewTicker(s.cleanup)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.store.Cleanup(ctx); err != nil {
				s.logger.Warn("session cleanup failed", "error", err)
			}
			if mc, ok := s.cache.(*cache.MemoryCache); ok {
				if n := mc.Sweep(); n > 0 {
					s.logger.Debug("render cache swept", "entries", n)
				}
			}
		}
	}
}
