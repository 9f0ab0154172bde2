// Package cmd provides CLI commands for the samu tool.
package cmd

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/samuhq/samu-cli/config"
	"github.com/samuhq/samu-cli/pkg/db"
	"github.com/samuhq/samu-cli/pkg/logging"
	"github.com/samuhq/samu-cli/pkg/meetings"
)

// newLogger builds the CLI logger from config. Logs go to stderr so command
// output on stdout stays machine-parseable.
func newLogger(cfg *config.CLIConfig) logging.Logger {
	logCfg := logging.DefaultConfig()
	if cfg != nil && cfg.Debug {
		logCfg.Level = logging.LevelDebug
	}
	return logging.NewLogger(logCfg)
}

// newMeetingSource builds the meeting Source for the current configuration:
// Postgres when a database is configured, the built-in seed otherwise, with
// an optional Redis read-through cache on top. The returned cleanup func
// releases the pool and cache client and is safe to call when no backend was
// opened.
func newMeetingSource(ctx context.Context, cfg *config.CLIConfig, log logging.Logger) (meetings.Source, func(), error) {
	var source meetings.Source = meetings.NewStaticSource()
	cleanup := func() {}

	if cfg.Database.IsConfigured() {
		pool, err := db.Connect(ctx, cfg.Database.PoolConfig())
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		if _, err := db.RegisterPoolStatsCollector(pool, "samu", "cli"); err != nil {
			log.Warn("registering pool metrics failed", logging.Err(err))
		}
		source = meetings.NewRepository(pool, log)
		cleanup = func() { db.Close(pool) }
	}

	if cfg.Redis.IsConfigured() {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		source = meetings.NewCachedSource(source, rdb, cfg.Redis.TTL, log)
		inner := cleanup
		cleanup = func() {
			rdb.Close()
			inner()
		}
	}

	return source, cleanup, nil
}
