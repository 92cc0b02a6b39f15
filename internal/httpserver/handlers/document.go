package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/readinglist/internal/httpserver/deps"
	"github.com/MrSnakeDoc/readinglist/internal/lint"
	"github.com/MrSnakeDoc/readinglist/internal/logger"
	"github.com/MrSnakeDoc/readinglist/internal/render"
)

// Page serves the reading list rendered as HTML.
func Page(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, source := d.MemoryIndex.Document()
		if doc == nil {
			notLoaded(w)
			return
		}

		page, err := render.Page(doc, source)
		if err != nil {
			d.Logger.Error("failed to render page", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to render page")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page)
	}
}

type categorySummary struct {
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Entries        int    `json:"entries"`
	CrossReference bool   `json:"cross_reference,omitempty"`
}

// Categories lists every category in document order.
func Categories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, ok := d.MemoryIndex.Categories()
		if !ok {
			notLoaded(w)
			return
		}

		out := make([]categorySummary, 0, len(categories))
		for _, c := range categories {
			out = append(out, categorySummary{
				Name:           c.Name,
				Slug:           c.Slug,
				Entries:        len(c.Entries),
				CrossReference: c.CrossReference(),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// Category returns one category, looked up by slug or exact name.
func Category(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, _ := d.MemoryIndex.Document()
		if doc == nil {
			notLoaded(w)
			return
		}

		c, ok := doc.Category(chi.URLParam(r, "slug"))
		if !ok {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeJSON(w, http.StatusOK, render.NewExportCategory(c))
	}
}

// Lint reports the lint findings of the loaded source.
func Lint(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, source := d.MemoryIndex.Document()
		if doc == nil {
			notLoaded(w)
			return
		}
		writeJSON(w, http.StatusOK, lint.Lint(doc, source, d.LintOptions))
	}
}

// Export serializes the loaded document as ?format=json (default) or yaml.
func Export(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, _ := d.MemoryIndex.Document()
		if doc == nil {
			notLoaded(w)
			return
		}

		format := strings.ToLower(r.URL.Query().Get("format"))
		data, err := render.Export(doc, format)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		w.Header().Set("Content-Type", render.ContentType(format))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
