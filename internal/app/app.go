package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/readinglist/internal/config"
	"github.com/MrSnakeDoc/readinglist/internal/httpserver"
	"github.com/MrSnakeDoc/readinglist/internal/httpserver/deps"
	"github.com/MrSnakeDoc/readinglist/internal/index"
	"github.com/MrSnakeDoc/readinglist/internal/lint"
	"github.com/MrSnakeDoc/readinglist/internal/logger"
	"github.com/MrSnakeDoc/readinglist/internal/redis"
	"github.com/MrSnakeDoc/readinglist/internal/scheduler"
	redisstore "github.com/MrSnakeDoc/readinglist/internal/store/redis"
	"github.com/MrSnakeDoc/readinglist/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	memIndex    *index.MemoryIndex
	reloader    *scheduler.SourceReloader
	gc          *scheduler.GarbageCollector
}

// New wires the service from environment configuration.
// When a Redis address is configured Redis must answer within the connect
// timeout; without one the service runs memory-only.
func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	loggerClient.Debug("configuration loaded", logger.Any("config", cfg.Redacted()))

	lintOpts, err := lint.LoadOptions(cfg.LintConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load lint settings: %w", err)
	}

	memIndex := index.NewMemoryIndex()

	var (
		redisClient *goredis.Client
		store       *redisstore.Store
	)
	if cfg.RedisEnabled() {
		redisClient, err = redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		store = redisstore.NewStore(redisClient)

		// Restore counters and disabled entries before the first reload
		syncer := scheduler.NewRedisSyncer(store, memIndex, loggerClient)
		if err := syncer.Sync(context.Background()); err != nil {
			loggerClient.Warn("failed to sync from redis on startup, starting from the source file only",
				logger.Error(err))
		}
	} else {
		loggerClient.Info("redis not configured, running memory-only")
	}

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewSourceReloader(
		cfg.SourceFile,
		store,
		memIndex,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	gc := scheduler.NewGarbageCollector(
		store,
		memIndex,
		loggerClient,
		cfg.GCInterval,
		cfg.GCThreshold,
	)

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		SourceFile:    cfg.SourceFile,
		Store:         store,
		MemoryIndex:   memIndex,
		LintOptions:   lintOpts,
		MaxResults:    cfg.MaxResults,
		CacheTTL:      cfg.CacheTTL,
		RateBurst:     cfg.RateBurst,
		RatePerMin:    cfg.RatePerMin,
		ReloadTrigger: reloadTrigger,
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: redisClient,
		memIndex:    memIndex,
		reloader:    reloader,
		gc:          gc,
	}, nil
}

func (a *App) Run() error {
	defer func() { _ = a.logger.Sync() }()

	a.logger.Infof("🚀 Starting readinglist %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("readinglist %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Loads the source once, then refreshes periodically
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start source reloader: %w", err)
	}
	a.logger.Info("source reloader started",
		logger.String("file", a.cfg.SourceFile),
		logger.Int("entries", a.memIndex.ActiveCount()),
		logger.Duration("interval", a.cfg.ReloadInterval))

	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start garbage collector: %w", err)
	}
	a.logger.Info("garbage collector started",
		logger.Duration("interval", a.cfg.GCInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.reloader.Stop()
		a.gc.Stop()
		return err
	}

	a.reloader.Stop()
	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ readinglist stopped cleanly")
	return nil
}
