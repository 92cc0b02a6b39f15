package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SourceFile     string        // path to the reading list markdown file
	LintConfig     string        // optional YAML lint settings, empty = defaults
	ReloadInterval time.Duration // interval to re-read the source file (default: 1h)
	GCInterval     time.Duration // interval to run garbage collection (default: 24h)
	GCThreshold    time.Duration // how long a removed entry is kept (default: 30 days)
	MaxResults     int           // max number of search results (default: 20)
	CacheTTL       time.Duration // TTL of cached search results (default: 1h)

	// Redis (optional, empty address = memory only)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedHosts []string // optional, restrict /reload to specific Host headers
	AllowedCIDRS []string // optional, restrict /infra and /reload to specific networks
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	RateBurst  int // token bucket size for /go and /entries
	RatePerMin int // refill rate for /go and /entries
}

// RedisEnabled reports whether a redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("READINGLIST_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("READINGLIST_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("READINGLIST_LOG_LEVEL", "info"),
		PrettyLog: mustBool("READINGLIST_PRETTY_LOG", true),

		// Source
		SourceFile:     requireEnv("READINGLIST_SOURCE_FILE"),
		LintConfig:     getenv("READINGLIST_LINT_CONFIG", ""),
		ReloadInterval: mustDuration("READINGLIST_RELOAD_INTERVAL", time.Hour),
		GCInterval:     mustDuration("READINGLIST_GC_INTERVAL", 24*time.Hour),
		GCThreshold:    mustDuration("READINGLIST_GC_THRESHOLD", 30*24*time.Hour),
		MaxResults:     getenvInt("READINGLIST_MAX_RESULTS", 20),
		CacheTTL:       mustDuration("READINGLIST_CACHE_TTL", time.Hour),

		// Redis settings
		RedisAddr:           getenv("READINGLIST_REDIS_ADDR", ""),
		RedisUser:           getenv("READINGLIST_REDIS_USERNAME", ""),
		RedisPassword:       getenv("READINGLIST_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("READINGLIST_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("READINGLIST_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("READINGLIST_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("READINGLIST_TRUST_PROXY", false),

		RateBurst:  getenvInt("READINGLIST_RATE_BURST", 20),
		RatePerMin: getenvInt("READINGLIST_RATE_PER_MIN", 60),
	}

	if cfg.MaxResults <= 0 {
		panic(fmt.Sprintf("❌ FATAL: READINGLIST_MAX_RESULTS must be > 0, got %d", cfg.MaxResults))
	}
	if cfg.RateBurst <= 0 || cfg.RatePerMin <= 0 {
		panic("❌ FATAL: READINGLIST_RATE_BURST and READINGLIST_RATE_PER_MIN must be > 0")
	}

	return cfg
}

// Redacted returns a copy safe to log, with Redis credentials masked.
func (c *Config) Redacted() Config {
	out := *c
	if out.RedisPassword != "" {
		out.RedisPassword = "***REDACTED***"
	}
	if out.RedisUser != "" {
		out.RedisUser = "***REDACTED***"
	}
	return out
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
