package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/resumetailor/internal/doctree"
	"github.com/dgallion1/resumetailor/internal/render"
)

type downloadRequest struct {
	Content  string `json:"content"`
	Format   string `json:"format"`
	FileName string `json:"fileName"`
}

func (s *Server) handleDownloadResume(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if !decodeJSON(w, r, s.cfg.MaxContentBytes, &req) {
		return
	}
	if req.Content == "" {
		jsonError(w, "Missing content string", http.StatusBadRequest)
		return
	}

	format := render.FormatDOCX
	if strings.TrimSpace(req.Format) != "" {
		f, err := render.ParseFormat(req.Format)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		format = f
	}

	start := time.Now()
	res, err := render.Render(req.Content, format, req.FileName)
	if err != nil {
		if errors.Is(err, render.ErrInvalidInput) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.log.Error("render failed", "format", format, "error", err)
		jsonError(w, "Failed to generate file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("resume rendered",
		"format", res.Format,
		"blocks", res.Blocks,
		"pages", res.Pages,
		"bytes", len(res.Data),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	h := w.Header()
	h.Set("Content-Type", res.MIMEType)
	h.Set("Content-Disposition", render.ContentDisposition(res.FileName))
	h.Set("Cache-Control", "no-store")
	h.Set("Content-Length", strconv.Itoa(len(res.Data)))
	if res.Format == render.FormatPDF {
		h.Set("X-Page-Count", strconv.Itoa(res.Pages))
	}
	w.Write(res.Data)
}

type previewBlock struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

type previewResponse struct {
	Format string         `json:"format"`
	Blocks []previewBlock `json:"blocks"`
	Pages  int            `json:"pages,omitempty"`
}

// handlePreviewResume returns the block structure a download would use,
// without rendering the file. PDF previews also report the page count.
func (s *Server) handlePreviewResume(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if !decodeJSON(w, r, s.cfg.MaxContentBytes, &req) {
		return
	}
	if req.Content == "" {
		jsonError(w, "Missing content string", http.StatusBadRequest)
		return
	}

	format := render.FormatDOCX
	if strings.TrimSpace(req.Format) != "" {
		f, err := render.ParseFormat(req.Format)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		format = f
	}

	doc := doctree.Build(req.Content, format.Profile())
	resp := previewResponse{
		Format: string(format),
		Blocks: make([]previewBlock, 0, doc.Len()),
	}
	for _, b := range doc.Blocks {
		resp.Blocks = append(resp.Blocks, previewBlock{Kind: b.Kind.String(), Text: b.Text})
	}
	if format == render.FormatPDF {
		resp.Pages = len(render.Layout(doc, render.DefaultGeometry))
	}
	writeJSON(w, resp)
}
