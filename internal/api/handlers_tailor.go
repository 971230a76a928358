package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/dgallion1/resumetailor/internal/tailor"
)

type tailorRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

func (s *Server) handleTailorResume(w http.ResponseWriter, r *http.Request) {
	if s.tailor == nil {
		jsonError(w, "tailoring unavailable", http.StatusServiceUnavailable)
		return
	}

	var req tailorRequest
	if !decodeJSON(w, r, 2*s.cfg.MaxContentBytes, &req) {
		return
	}

	out, err := s.tailor.Tailor(r.Context(), req.ResumeText, req.JobDescription)
	switch {
	case err == nil:
	case errors.Is(err, tailor.ErrMissingJobDescription):
		jsonError(w, "Please provide a job description", http.StatusBadRequest)
		return
	case errors.Is(err, tailor.ErrPromptTooLarge):
		jsonError(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	case errors.Is(err, context.DeadlineExceeded):
		jsonError(w, "tailoring timed out", http.StatusGatewayTimeout)
		return
	default:
		s.log.Error("tailoring failed", "error", err)
		jsonError(w, "Failed to process resume: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, map[string]string{"tailored": out})
}
