package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dgallion1/resumetailor/internal/parser"
	"github.com/dustin/go-humanize"
)

type parseResponse struct {
	Content  string `json:"content"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Pages    int    `json:"pages,omitempty"`
}

func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			jsonError(w, fmt.Sprintf("file exceeds max size (%s)", humanize.IBytes(uint64(s.cfg.MaxUploadBytes))), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "No file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%s)", humanize.IBytes(uint64(s.cfg.MaxUploadBytes))), http.StatusRequestEntityTooLarge)
		return
	}
	if len(data) == 0 {
		jsonError(w, "The uploaded file appears to be empty", http.StatusBadRequest)
		return
	}

	filename := sanitizeFilename(header.Filename)
	contentType := header.Header.Get("Content-Type")

	ext, err := parser.ForUpload(filename, contentType, parser.Options{
		FallbackPdftotext: s.cfg.PDFFallbackPdftotext,
	})
	switch {
	case errors.Is(err, parser.ErrLegacyDoc):
		jsonError(w, "Legacy .doc files aren't supported. Please upload .docx or PDF.", http.StatusUnsupportedMediaType)
		return
	case err != nil:
		jsonError(w, "Unsupported type. Use PDF, DOCX, TXT, Markdown or HTML.", http.StatusUnsupportedMediaType)
		return
	}

	res, err := ext.Extract(bytes.NewReader(data), filename)
	if err != nil {
		if errors.Is(err, parser.ErrEmpty) {
			jsonError(w, "The uploaded file appears to be empty", http.StatusBadRequest)
			return
		}
		s.log.Warn("extraction failed", "file", filename, "size", len(data), "error", err)
		jsonError(w, "could not read file: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.log.Info("resume parsed",
		"file", filename,
		"size", humanize.IBytes(uint64(len(data))),
		"pages", res.Pages,
		"chars", len(res.Text),
	)
	writeJSON(w, parseResponse{
		Content:  res.Text,
		FileName: filename,
		FileType: contentType,
		Pages:    res.Pages,
	})
}
