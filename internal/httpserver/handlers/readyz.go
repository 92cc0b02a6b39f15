package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/readinglist/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready   bool `json:"ready"`
	Entries int  `json:"entries"`
}

// Readyz answers 200 once a document is loaded, 503 before.
// Redis is optional and never affects readiness.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, _ := d.MemoryIndex.Document()
		resp := readyzResponse{
			Ready:   doc != nil,
			Entries: d.MemoryIndex.ActiveCount(),
		}

		status := http.StatusOK
		if !resp.Ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, resp)
	}
}
