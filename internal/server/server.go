// Package server exposes the JHA viewer pages and downloads over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/jha-go/pkg/jha"
	"github.com/ukaji3/jha-go/pkg/jha/models"
	"github.com/ukaji3/jha-go/pkg/jha/session"
)

// Server serves one workbook to many browser sessions.
type Server struct {
	cache    *jha.Cache
	path     string
	sessions *session.Store
	router   *chi.Mux
	server   *http.Server
}

// NewServer creates a server for the workbook at path.
func NewServer(cache *jha.Cache, path string, sessions *session.Store) *Server {
	s := &Server{
		cache:    cache,
		path:     path,
		sessions: sessions,
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
	s.router.Use(securityHeaders)
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/overview", s.handleOverview)
		r.Get("/sheets", s.handleSheets)
		r.Get("/divisions", s.handleDivisions)
		r.Get("/search", s.handleSearch)
		r.Get("/analytics", s.handleAnalytics)

		// Session edits
		r.Get("/session", s.handleSession)
		r.Put("/session/fields/{field}", s.handleSetField)
		r.Delete("/session", s.handleEndSession)
	})

	s.router.Route("/download", func(r chi.Router) {
		r.Get("/combined/{format}", s.handleDownloadCombined)
		r.Get("/sheets/{index}", s.handleDownloadSheet)
		r.Get("/workbook", s.handleDownloadWorkbook)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", addr).Str("workbook", s.path).Msg("Starting server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

func (s *Server) workbook() (*models.Workbook, error) {
	return s.cache.Load(s.path)
}

// requestLogger logs one line per request with its id and status.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("ip", r.RemoteAddr).
			Msg("request")
	})
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
