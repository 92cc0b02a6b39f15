package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrSnakeDoc/readinglist/internal/logger"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(RateLimitConfig{Burst: 2, RefillPerIPPerMin: 1, Logger: logger.New("error", false)})(ok)

	req := func(ip string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/go?q=git", nil)
		r.RemoteAddr = ip + ":1234"
		return r
	}

	first := serve(h, req("192.0.2.1"))
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, serve(h, req("192.0.2.1")).Code)

	limited := serve(h, req("192.0.2.1"))
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, serve(h, req("192.0.2.2")).Code)
}

func TestEnforceHost(t *testing.T) {
	log := logger.New("error", false)
	h := EnforceHost([]string{"reading.example.com", "*.lan:8080"}, log)(ok)

	tests := []struct {
		host string
		code int
	}{
		{"reading.example.com", http.StatusOK},
		{"READING.example.com:443", http.StatusOK},
		{"books.lan", http.StatusOK},
		{"lan", http.StatusForbidden},
		{"evil.example.com", http.StatusForbidden},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodPost, "/reload", nil)
		r.Host = tt.host
		assert.Equal(t, tt.code, serve(h, r).Code, tt.host)
	}

	passthrough := EnforceHost(nil, log)(ok)
	assert.Equal(t, http.StatusOK, serve(passthrough, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestAllowOnlyCIDRS(t *testing.T) {
	log := logger.New("error", false)
	h := AllowOnlyCIDRS([]string{"10.0.0.0/8"}, true, log)(ok)

	r := httptest.NewRequest(http.MethodGet, "/infra", nil)
	r.RemoteAddr = "127.0.0.1:9999"
	r.Header.Set("X-Forwarded-For", "10.1.2.3")
	assert.Equal(t, http.StatusOK, serve(h, r).Code)

	r.Header.Set("X-Forwarded-For", "203.0.113.9")
	assert.Equal(t, http.StatusForbidden, serve(h, r).Code)

	strict := AllowOnlyCIDRS([]string{"10.0.0.0/8"}, false, log)(ok)
	r.Header.Set("X-Forwarded-For", "10.1.2.3")
	assert.Equal(t, http.StatusForbidden, serve(strict, r).Code)
}

func TestCORS(t *testing.T) {
	h := CORS()(ok)

	pre := httptest.NewRequest(http.MethodOptions, "/search", nil)
	pre.Header.Set("Access-Control-Request-Method", "GET")
	rec := serve(h, pre)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/search", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogRecordsStatus(t *testing.T) {
	var seen int
	h := Log(logger.New("error", false))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw, isStatusWriter := w.(*statusWriter)
		assert.True(t, isStatusWriter)
		http.NotFound(w, r)
		seen = sw.status
	}))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/entries/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, seen)
}
