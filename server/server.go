// Package server exposes the Last.fm client as a small read-only JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/s0up4200/lfm/filter"
	"github.com/s0up4200/lfm/lastfm"
)

const (
	// DefaultAddr is the default listen address
	DefaultAddr = "127.0.0.1:8080"

	defaultShutdownTimeout = 10 * time.Second
)

// Config holds server configuration
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server is the HTTP front end for a Last.fm client
type Server struct {
	router          chi.Router
	server          *http.Server
	api             lastfm.API
	filters         *filter.Manager
	logger          zerolog.Logger
	shutdownTimeout time.Duration
}

// New creates a server. filters may be nil, in which case the search
// endpoint ignores filter parameters.
func New(cfg Config, api lastfm.API, filters *filter.Manager, logger zerolog.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	s := &Server{
		router:          chi.NewRouter(),
		api:             api,
		filters:         filters,
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the router, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)

		r.Route("/artists/{artist}", func(r chi.Router) {
			r.Get("/", s.handleArtistInfo)
			r.Get("/similar", s.handleArtistSimilar)
			r.Get("/top-albums", s.handleArtistTopAlbums)
			r.Get("/top-tracks", s.handleArtistTopTracks)
			r.Get("/top-tags", s.handleArtistTopTags)
			r.Get("/correction", s.handleArtistCorrection)
		})

		r.Route("/albums/{artist}/{album}", func(r chi.Router) {
			r.Get("/", s.handleAlbumInfo)
			r.Get("/top-tags", s.handleAlbumTopTags)
		})

		r.Route("/tracks/{artist}/{track}", func(r chi.Router) {
			r.Get("/", s.handleTrackInfo)
			r.Get("/similar", s.handleTrackSimilar)
			r.Get("/top-tags", s.handleTrackTopTags)
			r.Get("/correction", s.handleTrackCorrection)
		})

		r.Route("/tags/{tag}", func(r chi.Router) {
			r.Get("/", s.handleTagInfo)
			r.Get("/similar", s.handleTagSimilar)
			r.Get("/top-albums", s.handleTagTopAlbums)
			r.Get("/top-artists", s.handleTagTopArtists)
			r.Get("/top-tracks", s.handleTagTopTracks)
			r.Get("/weekly-charts", s.handleTagWeeklyCharts)
		})

		r.Get("/charts/{kind}", s.handleChart)
		r.Get("/geo/{country}/{kind}", s.handleGeo)
	})
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.server.Addr).Msg("Starting server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info().Msg("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info().Msg("Server stopped")
	return nil
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("HTTP request")
		})
	}
}
