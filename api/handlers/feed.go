// ABOUTME: Podcast RSS feed handler served as a plain chi route
// ABOUTME: Returns XML directly, outside the JSON-oriented Huma surface

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"anoncast-api/core/errors"
	"anoncast-api/core/interfaces"
)

// FeedHandler serves podcast RSS feeds
type FeedHandler struct {
	feeds  interfaces.FeedService
	logger interfaces.Logger
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feeds interfaces.FeedService, logger interfaces.Logger) *FeedHandler {
	return &FeedHandler{
		feeds:  feeds,
		logger: logger,
	}
}

// RegisterRoutes registers the feed route on the router
func (h *FeedHandler) RegisterRoutes(router chi.Router) {
	router.Get("/feed/{showId}", h.ServeFeed)
}

// ServeFeed renders the show's RSS feed
func (h *FeedHandler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showId")

	out, err := h.feeds.Feed(r.Context(), showID)
	if err != nil {
		switch {
		case errors.IsValidation(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.IsNotFound(err):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			h.logger.Error("Failed to render feed", map[string]interface{}{
				"show_id": showID,
				"error":   err.Error(),
			})
			http.Error(w, "failed to render feed", http.StatusInternalServerError)
		}
		return
	}

	// Podcast clients poll feeds aggressively; always serve fresh
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(out)
}
