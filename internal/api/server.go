package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/resumetailor/internal/config"
	"github.com/dgallion1/resumetailor/internal/tailor"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// TailorService is the tailoring backend as seen by the HTTP layer.
type TailorService interface {
	tailor.Tailorer
	Stats() *tailor.LLMStats
	Model() string
}

// Server is the HTTP API server for resumetailor.
type Server struct {
	router chi.Router
	tailor TailorService
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server. A nil tailor disables
// the tailoring and stats endpoints.
func NewServer(ts TailorService, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		tailor: ts,
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/parse-resume", s.handleParseResume)
		r.Post("/tailor-resume", s.handleTailorResume)
		r.Post("/preview-resume", s.handlePreviewResume)
		r.Post("/download-resume", s.handleDownloadResume)
		r.Get("/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
