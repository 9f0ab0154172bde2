package meetings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	pferrors "github.com/samuhq/samu-cli/pkg/errors"
	"github.com/samuhq/samu-cli/pkg/logging"
)

const (
	cacheKeyList     = "samu:meetings:list"
	cacheKeyDetail   = "samu:meetings:detail:"
	cacheKeySchedule = "samu:schedule"
)

var (
	cacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "samu",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Number of meeting cache hits",
	}, []string{"kind"})

	cacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "samu",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Number of meeting cache misses",
	}, []string{"kind"})
)

// CachedSource wraps another Source with a read-through Redis cache.
// Cache failures are non-fatal: a Redis error falls back to the inner
// source, so a down cache only costs latency, never correctness.
type CachedSource struct {
	inner Source
	rdb   *redis.Client
	ttl   time.Duration
	log   logging.Logger
}

// NewCachedSource wraps inner with a Redis cache. Entries expire after ttl.
func NewCachedSource(inner Source, rdb *redis.Client, ttl time.Duration, log logging.Logger) *CachedSource {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedSource{inner: inner, rdb: rdb, ttl: ttl, log: log}
}

// List returns the cached record listing, fetching from the inner source on a
// miss.
func (c *CachedSource) List(ctx context.Context) ([]Record, error) {
	var records []Record
	if c.readCached(ctx, cacheKeyList, "list", &records) {
		return records, nil
	}

	records, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.writeCached(ctx, cacheKeyList, records)
	return records, nil
}

// Get returns the cached detail for one meeting, fetching on a miss.
// Not-found results are not cached: a meeting created moments later should
// become visible without waiting out the TTL.
func (c *CachedSource) Get(ctx context.Context, id string) (*Detail, error) {
	key := cacheKeyDetail + id
	var detail Detail
	if c.readCached(ctx, key, "detail", &detail) {
		return &detail, nil
	}

	d, err := c.inner.Get(ctx, id)
	if err != nil {
		if pferrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("fetch meeting %s: %w", id, err)
	}
	c.writeCached(ctx, key, d)
	return d, nil
}

// Schedule returns the cached agenda events, fetching on a miss.
func (c *CachedSource) Schedule(ctx context.Context) ([]ScheduleEvent, error) {
	var events []ScheduleEvent
	if c.readCached(ctx, cacheKeySchedule, "schedule", &events) {
		return events, nil
	}

	events, err := c.inner.Schedule(ctx)
	if err != nil {
		return nil, err
	}
	c.writeCached(ctx, cacheKeySchedule, events)
	return events, nil
}

// Invalidate drops all cached meeting entries. Called after writes that
// change the listing.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, cacheKeyList)
	pipe.Del(ctx, cacheKeySchedule)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("invalidate meeting cache: %w", err)
	}
	return nil
}

func (c *CachedSource) readCached(ctx context.Context, key, kind string, dest interface{}) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache read failed", logging.F("key", key), logging.Err(err))
		}
		cacheMissesTotal.WithLabelValues(kind).Inc()
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("cache entry corrupt, refetching", logging.F("key", key), logging.Err(err))
		cacheMissesTotal.WithLabelValues(kind).Inc()
		return false
	}
	cacheHitsTotal.WithLabelValues(kind).Inc()
	return true
}

func (c *CachedSource) writeCached(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("cache encode failed", logging.F("key", key), logging.Err(err))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", logging.F("key", key), logging.Err(err))
	}
}
