package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/readinglist/internal/httpserver/deps"
	"github.com/MrSnakeDoc/readinglist/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/readinglist/internal/httpserver/mw"
)

func init() { Register(registerRedirects) }

// Redirects count usage, so they share one rate limiter.
func registerRedirects(r chi.Router, d deps.Deps) {
	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.RateBurst,
			RefillPerIPPerMin: d.RatePerMin,
			MaxEntries:        10000,
			TrustProxy:        d.TrustProxy,
			Logger:            d.Logger,
		}))
		r.Get("/go", handlers.Go(d))
		r.Get("/entries/{id}", handlers.Entry(d))
	})
}
