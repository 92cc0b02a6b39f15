package deps

import (
	"time"

	"github.com/MrSnakeDoc/readinglist/internal/index"
	"github.com/MrSnakeDoc/readinglist/internal/lint"
	"github.com/MrSnakeDoc/readinglist/internal/logger"
	redisstore "github.com/MrSnakeDoc/readinglist/internal/store/redis"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	AllowedHosts  []string           // Host headers allowed to call /reload
	AllowedCIDRS  []string           // networks allowed to call /infra and /reload
	TrustProxy    bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	SourceFile    string             // Path to the reading list file
	Store         *redisstore.Store  // nil when running memory-only
	MemoryIndex   *index.MemoryIndex // In-memory entry index
	LintOptions   lint.Options       // rules applied by /lint
	MaxResults    int                // cap and default for /search?limit=
	CacheTTL      time.Duration      // TTL of cached search results
	RateBurst     int                // token bucket size for redirects
	RatePerMin    int                // token refill per minute for redirects
	ReloadTrigger chan struct{}      // Channel to trigger a manual reload
}
