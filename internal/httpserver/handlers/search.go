package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
	"github.com/MrSnakeDoc/readinglist/internal/httpserver/deps"
	"github.com/MrSnakeDoc/readinglist/internal/logger"
	redisstore "github.com/MrSnakeDoc/readinglist/internal/store/redis"
)

var errInvalidLimit = errors.New("limit must be a positive integer")

type searchResult struct {
	ID         string  `json:"id"`
	Category   string  `json:"category"`
	Kind       string  `json:"kind,omitempty"`
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Free       bool    `json:"free"`
	Annotation string  `json:"annotation,omitempty"`
	Counter    int64   `json:"counter"`
	Score      float64 `json:"score"`
}

type searchResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Cached  bool           `json:"cached"`
	Results []searchResult `json:"results"`
}

// Search returns ranked entries for ?q=, at most ?limit= of them.
func Search(d deps.Deps) http.HandlerFunc {
	cacheTTL := d.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = redisstore.DefaultCacheTTL
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		raw := strings.TrimSpace(r.URL.Query().Get("q"))

		query := domain.ParseQuery(raw)
		if query.Empty() {
			writeError(w, http.StatusBadRequest, "missing query parameter q")
			return
		}

		limit, err := parseLimit(r.URL.Query().Get("limit"), d.MaxResults)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if candidates, ok := cachedCandidates(ctx, d, query, raw, limit); ok {
			d.Logger.Debug("search cache hit", logger.String("query", raw))
			writeJSON(w, http.StatusOK, newSearchResponse(raw, true, candidates))
			return
		}

		candidates := domain.RankEntries(query, d.MemoryIndex.GetAllEntries())
		if len(candidates) > limit {
			candidates = candidates[:limit]
		}

		d.Logger.Info("search request",
			logger.String("query", raw),
			logger.Int("results", len(candidates)))

		if d.Store != nil {
			ids := make([]string, 0, len(candidates))
			for _, c := range candidates {
				ids = append(ids, c.Entry.ID)
			}
			if err := d.Store.CacheResults(ctx, raw, limit, ids, cacheTTL); err != nil {
				d.Logger.Warn("failed to cache search results", logger.Error(err))
			}
		}

		writeJSON(w, http.StatusOK, newSearchResponse(raw, false, candidates))
	}
}

// cachedCandidates rebuilds a cached result list from the index.
// Any cached ID that no longer resolves to a live entry invalidates the
// cache line.
func cachedCandidates(ctx context.Context, d deps.Deps, query *domain.Query, raw string, limit int) ([]*domain.Candidate, bool) {
	if d.Store == nil {
		return nil, false
	}

	ids, hit, err := d.Store.GetCachedResults(ctx, raw, limit)
	if err != nil {
		d.Logger.Warn("failed to read search cache", logger.Error(err))
		return nil, false
	}
	if !hit {
		return nil, false
	}

	candidates := make([]*domain.Candidate, 0, len(ids))
	for _, id := range ids {
		entry, ok := d.MemoryIndex.GetEntry(id)
		if !ok {
			_ = d.Store.InvalidateCache(ctx, raw, limit)
			return nil, false
		}
		c := domain.NewCandidate(query, entry)
		if c == nil {
			_ = d.Store.InvalidateCache(ctx, raw, limit)
			return nil, false
		}
		candidates = append(candidates, c)
	}
	return candidates, true
}

func newSearchResponse(raw string, cached bool, candidates []*domain.Candidate) searchResponse {
	resp := searchResponse{
		Query:   raw,
		Count:   len(candidates),
		Cached:  cached,
		Results: make([]searchResult, 0, len(candidates)),
	}
	for _, c := range candidates {
		e := c.Entry
		resp.Results = append(resp.Results, searchResult{
			ID:         e.ID,
			Category:   e.Category,
			Kind:       e.Kind,
			Title:      e.Title,
			URL:        e.URL,
			Free:       e.Free,
			Annotation: e.Annotation,
			Counter:    e.Counter,
			Score:      c.TotalScore,
		})
	}
	return resp
}

// parseLimit reads ?limit=, defaulting to and capped at maxResults.
func parseLimit(raw string, maxResults int) (int, error) {
	if maxResults <= 0 {
		maxResults = 20
	}
	if raw == "" {
		return maxResults, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errInvalidLimit
	}
	return min(n, maxResults), nil
}
