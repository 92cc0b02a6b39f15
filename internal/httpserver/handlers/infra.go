package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/readinglist/internal/httpserver/deps"
)

type componentStatus struct {
	OK            bool   `json:"ok"`
	File          string `json:"file,omitempty"`
	EntriesLoaded *int   `json:"entries_loaded,omitempty"`
	Disabled      *int   `json:"disabled,omitempty"`
	LastReload    string `json:"last_reload,omitempty"`
	Redirects     *int64 `json:"redirects,omitempty"`
	EntriesUsed   *int   `json:"entries_used,omitempty"`
	Mode          string `json:"mode,omitempty"`
	Impact        string `json:"impact,omitempty"`
	Error         string `json:"error,omitempty"`
}

type infraResponse struct {
	ServingMode string                     `json:"serving_mode"`
	Components  map[string]componentStatus `json:"components"`
}

// Infra reports the state of the source, Redis and the search engine.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active := d.MemoryIndex.ActiveCount()
		disabled := d.MemoryIndex.Count() - active
		lastReload := d.MemoryIndex.GetLastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format(time.RFC3339)
		}

		counters := d.MemoryIndex.Counters()
		used := len(counters)
		var redirects int64
		for _, n := range counters {
			redirects += n
		}

		components := map[string]componentStatus{
			"source": {
				OK:            active > 0,
				File:          d.SourceFile,
				EntriesLoaded: &active,
				Disabled:      &disabled,
				LastReload:    lastReloadStr,
			},
			"redis": checkRedis(r.Context(), d),
			"search": {
				OK:          true,
				Mode:        "fuzzy+usage-learning",
				Redirects:   &redirects,
				EntriesUsed: &used,
			},
		}

		writeJSON(w, http.StatusOK, infraResponse{
			ServingMode: determineServingMode(components),
			Components:  components,
		})
	}
}

func determineServingMode(components map[string]componentStatus) string {
	if source, exists := components["source"]; exists && !source.OK {
		return "critical" // nothing to serve
	}

	if redis, exists := components["redis"]; exists && !redis.OK {
		return "degraded" // usage and cache are lost on restart
	}

	return "optimal"
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{
			OK:     false,
			Mode:   "memory-only",
			Impact: "usage-not-persisted",
			Error:  "redis not configured",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "usage-not-persisted",
			Error:  err.Error(),
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "persistent",
		Impact: "usage-persisted",
	}
}
