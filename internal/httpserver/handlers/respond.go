package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
	"github.com/MrSnakeDoc/readinglist/internal/httpserver/deps"
	"github.com/MrSnakeDoc/readinglist/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// notLoaded answers 503 until the first reload has produced a document.
func notLoaded(w http.ResponseWriter) {
	writeError(w, http.StatusServiceUnavailable, "reading list not loaded yet")
}

// redirectable reports whether an entry URL is safe to send in a Location header.
func redirectable(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// recordUsage counts a redirect in the index, then in Redis (best effort).
func recordUsage(ctx context.Context, d deps.Deps, entry *domain.Entry) {
	d.MemoryIndex.IncrementCounter(entry.ID)
	if d.Store == nil {
		return
	}
	if _, err := d.Store.IncrementUsage(ctx, entry.ID); err != nil {
		d.Logger.Warn("failed to record usage in redis",
			logger.String("entry_id", entry.ID),
			logger.Error(err))
	}
}
