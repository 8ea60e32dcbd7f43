package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"handhelds/internal/catalog"
	"handhelds/internal/logger"
)

// Server exposes a built catalog as read-only JSON endpoints.
type Server struct {
	router *chi.Mux
	index  *catalog.Index
	log    *slog.Logger
}

func NewServer(index *catalog.Index, origins []string, log *slog.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s := &Server{
		router: chi.NewRouter(),
		index:  index,
		log:    log,
	}

	s.setupRoutes(origins)
	return s
}

func (s *Server) setupRoutes(origins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(s.requestLog)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/devices", s.handleListDevices)
	s.router.Get("/devices/{id}", s.handleGetDevice)
	s.router.Get("/devices/{id}/scores", s.handleDeviceScores)
	s.router.Get("/search", s.handleSearch)
	s.router.Get("/compare", s.handleCompare)
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"devices": s.index.Len(),
	})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
