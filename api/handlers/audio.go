// ABOUTME: Audio proxy handler streaming stored episode audio
// ABOUTME: Serves MP3 blobs with range support for podcast clients

package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"anoncast-api/core/interfaces"
)

// AudioHandler streams stored episode audio
type AudioHandler struct {
	blobs  interfaces.BlobStore
	logger interfaces.Logger
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(blobs interfaces.BlobStore, logger interfaces.Logger) *AudioHandler {
	return &AudioHandler{
		blobs:  blobs,
		logger: logger,
	}
}

// RegisterRoutes registers the audio route on the router
func (h *AudioHandler) RegisterRoutes(router chi.Router) {
	router.Get("/audio/{filename}", h.ServeAudio)
}

// ServeAudio streams one episode's audio file
func (h *AudioHandler) ServeAudio(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if filename == "" || strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		http.Error(w, "invalid filename", http.StatusBadRequest)
		return
	}

	reader, size, err := h.blobs.Open(r.Context(), "episodes/"+filename)
	if err != nil {
		http.Error(w, "audio not found", http.StatusNotFound)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "audio/mpeg")

	// Podcast clients seek within episodes; serve with range support
	// when the blob backend hands us a seekable reader
	if rs, ok := reader.(io.ReadSeeker); ok {
		w.Header().Set("Accept-Ranges", "bytes")
		http.ServeContent(w, r, filename, time.Time{}, rs)
		return
	}

	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Warn("Audio stream interrupted", map[string]interface{}{
			"filename": filename,
			"error":    err.Error(),
		})
	}
}
