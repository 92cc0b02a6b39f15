package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
	"github.com/MrSnakeDoc/readinglist/internal/httpserver/deps"
	"github.com/MrSnakeDoc/readinglist/internal/logger"
)

// Go redirects to the best match for ?q=, or to the index page when
// nothing matches.
func Go(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get("q"))
		query := domain.ParseQuery(raw)
		if query.Empty() {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		best := domain.FindBestEntry(query, d.MemoryIndex.GetAllEntries())
		if best == nil {
			d.Logger.Info("no matching entry found",
				logger.String("query", raw))
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		if !redirectable(best.URL) {
			d.Logger.Warn("best match has no absolute url",
				logger.String("entry_id", best.ID),
				logger.String("url", best.URL))
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		d.Logger.Info("resolved entry",
			logger.String("query", raw),
			logger.String("entry_id", best.ID),
			logger.String("title", best.Title))

		recordUsage(r.Context(), d, best)
		http.Redirect(w, r, best.URL, http.StatusFound)
	}
}

// Entry redirects to the URL of the entry named by {id}.
func Entry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		entry, ok := d.MemoryIndex.GetEntry(id)
		if !ok || entry.Disabled {
			writeError(w, http.StatusNotFound, "entry not found")
			return
		}
		if !redirectable(entry.URL) {
			writeError(w, http.StatusUnprocessableEntity, "entry has no absolute url")
			return
		}

		recordUsage(r.Context(), d, entry)
		http.Redirect(w, r, entry.URL, http.StatusFound)
	}
}
