package api

import (
	"net/http"
)

func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	if s.tailor == nil || s.tailor.Stats() == nil {
		jsonError(w, "llm stats unavailable", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, map[string]any{
		"model": s.tailor.Model(),
		"stats": s.tailor.Stats().Snapshot(),
	})
}
