package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireEnv(t *testing.T) {
	t.Run("variable set", func(t *testing.T) {
		t.Setenv("TEST_VAR", "test_value")
		assert.Equal(t, "test_value", requireEnv("TEST_VAR"))
	})

	t.Run("variable not set", func(t *testing.T) {
		assert.Panics(t, func() { requireEnv("TEST_VAR_MISSING") })
	})
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      int
		expected int
	}{
		{"valid integer", "42", 1, 42},
		{"invalid integer uses default", "not_a_number", 7, 7},
		{"missing variable uses default", "", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			assert.Equal(t, tt.expected, getenvInt("TEST_INT", tt.def))
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{"valid duration", "5s", time.Second, 5 * time.Second},
		{"invalid duration uses default", "invalid", 10 * time.Second, 10 * time.Second},
		{"missing variable uses default", "", 15 * time.Second, 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			assert.Equal(t, tt.expected, mustDuration("TEST_DURATION", tt.def))
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{"true value", "true", false, true},
		{"false value", "false", true, false},
		{"invalid value uses default", "invalid", true, true},
		{"missing variable uses default", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.expected, mustBool("TEST_BOOL", tt.def))
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, splitAndTrim(` "a.example.com" , b.example.com,, `))
}

func TestLoad(t *testing.T) {
	t.Run("missing source file panics", func(t *testing.T) {
		t.Setenv("READINGLIST_SOURCE_FILE", "")
		assert.Panics(t, func() { Load() })
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("READINGLIST_SOURCE_FILE", "/data/reading-list.md")
		t.Setenv("READINGLIST_REDIS_ADDR", "")
		t.Setenv("READINGLIST_LOG_LEVEL", "info")

		cfg := Load()
		require.NotNil(t, cfg)
		assert.Equal(t, "/data/reading-list.md", cfg.SourceFile)
		assert.Equal(t, ":8080", cfg.ListenPort)
		assert.Equal(t, time.Hour, cfg.ReloadInterval)
		assert.Equal(t, 20, cfg.MaxResults)
		assert.False(t, cfg.RedisEnabled())
		assert.Nil(t, cfg.AllowedCIDRS)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("READINGLIST_SOURCE_FILE", "/data/reading-list.md")
		t.Setenv("READINGLIST_REDIS_ADDR", "localhost:6379")
		t.Setenv("READINGLIST_ALLOWED_CIDRS", "10.0.0.0/8, 192.168.1.0/24")
		t.Setenv("READINGLIST_MAX_RESULTS", "5")
		t.Setenv("READINGLIST_LOG_LEVEL", "warn")

		cfg := Load()
		assert.True(t, cfg.RedisEnabled())
		assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.0/24"}, cfg.AllowedCIDRS)
		assert.Equal(t, 5, cfg.MaxResults)
	})

	t.Run("invalid max results panics", func(t *testing.T) {
		t.Setenv("READINGLIST_SOURCE_FILE", "/data/reading-list.md")
		t.Setenv("READINGLIST_MAX_RESULTS", "0")
		assert.Panics(t, func() { Load() })
	})
}

func TestRedacted(t *testing.T) {
	cfg := &Config{RedisAddr: "localhost:6379", RedisUser: "app", RedisPassword: "s3cret"}

	out := cfg.Redacted()
	assert.Equal(t, "localhost:6379", out.RedisAddr)
	assert.Equal(t, "***REDACTED***", out.RedisUser)
	assert.Equal(t, "***REDACTED***", out.RedisPassword)
	assert.NotContains(t, fmt.Sprintf("%+v", out), "s3cret")

	// the original is untouched
	assert.Equal(t, "s3cret", cfg.RedisPassword)

	empty := (&Config{}).Redacted()
	assert.Empty(t, empty.RedisPassword)
}
