package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/kvstore"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// Entry is the persisted shape of every cached payload.
type Entry[T any] struct {
	Data      T      `json:"data"`
	Timestamp int64  `json:"timestamp"` // epoch millis
	UserID    string `json:"userId"`
}

func (e *Entry[T]) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// ValidFor reports whether the entry belongs to userID and is younger than ttl.
func (e *Entry[T]) ValidFor(userID string, ttl time.Duration, now time.Time) bool {
	if e.UserID != userID {
		return false
	}
	return now.Sub(e.Time()) < ttl
}

// TTLCache keeps one Entry per user in a kvstore.Store.
type TTLCache[T any] struct {
	name           string
	store          kvstore.Store
	keyFunc        func(userID string) string
	ttl            time.Duration
	now            func() time.Time
	metricsManager *metrics.Manager
}

type Params struct {
	// Name labels metrics and logs, e.g. "dashboard".
	Name           string
	Store          kvstore.Store
	KeyFunc        func(userID string) string
	TTL            time.Duration
	Now            func() time.Time
	MetricsManager *metrics.Manager
}

func NewTTLCache[T any](params Params) *TTLCache[T] {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &TTLCache[T]{
		name:           params.Name,
		store:          params.Store,
		keyFunc:        params.KeyFunc,
		ttl:            params.TTL,
		now:            now,
		metricsManager: params.MetricsManager,
	}
}

func (c *TTLCache[T]) Name() string {
	return c.name
}

func (c *TTLCache[T]) TTL() time.Duration {
	return c.ttl
}

// Read returns the cached entry for userID, or false when it is missing,
// expired, owned by another user or unreadable.
func (c *TTLCache[T]) Read(ctx context.Context, userID string) (*Entry[T], bool) {
	entry, ok := c.read(ctx, userID)
	if c.metricsManager != nil {
		result := "miss"
		if ok {
			result = "hit"
		}
		c.metricsManager.CounterCacheLookups.WithLabelValues(c.name, result).Inc()
	}
	return entry, ok
}

func (c *TTLCache[T]) read(ctx context.Context, userID string) (*Entry[T], bool) {
	key := c.keyFunc(userID)
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Errorf("%s cache: read [%s]: %s", c.name, key, err)
		}
		return nil, false
	}

	var entry Entry[T]
	if err := json.Unmarshal(raw, &entry); err != nil {
		log.Errorf("%s cache: corrupt entry [%s]: %s", c.name, key, err)
		return nil, false
	}

	if !entry.ValidFor(userID, c.ttl, c.now()) {
		log.Tracef("%s cache: stale or foreign entry [%s]", c.name, key)
		return nil, false
	}

	return &entry, true
}

// Write overwrites the user's slot with data stamped with the current time.
func (c *TTLCache[T]) Write(ctx context.Context, userID string, data T) error {
	entry := Entry[T]{
		Data:      data,
		Timestamp: c.now().UnixMilli(),
		UserID:    userID,
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal %s cache entry: %w", c.name, err)
	}
	if err := c.store.Set(ctx, c.keyFunc(userID), raw, c.ttl); err != nil {
		return fmt.Errorf("write %s cache: %w", c.name, err)
	}
	return nil
}

// Invalidate drops the user's slot. reason ends up in the invalidations metric.
func (c *TTLCache[T]) Invalidate(ctx context.Context, userID, reason string) error {
	if c.metricsManager != nil {
		c.metricsManager.CounterCacheInvalidations.WithLabelValues(c.name, reason).Inc()
	}
	if err := c.store.Delete(ctx, c.keyFunc(userID)); err != nil {
		return fmt.Errorf("invalidate %s cache: %w", c.name, err)
	}
	return nil
}
