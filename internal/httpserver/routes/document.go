package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/readinglist/internal/httpserver/deps"
	"github.com/MrSnakeDoc/readinglist/internal/httpserver/handlers"
)

func init() { Register(registerDocument) }

func registerDocument(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Page(d))
	r.Get("/categories", handlers.Categories(d))
	r.Get("/categories/{slug}", handlers.Category(d))
	r.Get("/lint", handlers.Lint(d))
	r.Get("/export", handlers.Export(d))
}
