// Package dashboard serves the wellness dashboard from a short lived per-user
// cache in front of the agent backend.
package dashboard

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/backend"
	"github.com/2beens/fitcoach/internal/cache"
	"github.com/2beens/fitcoach/internal/kvstore"
	"github.com/2beens/fitcoach/internal/notify"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
)

const DefaultTTL = 5 * time.Minute

type subscriber interface {
	Subscribe(topic notify.Topic, fn notify.Handler) (unsubscribe func())
}

// invalidatingTopics are the mutations that make a cached dashboard stale.
var invalidatingTopics = []notify.Topic{
	notify.TopicWellnessChanged,
	notify.TopicProfileChanged,
	notify.TopicOnboardingChanged,
	notify.TopicUserCleared,
}

type Cache struct {
	entries *cache.TTLCache[backend.DashboardMetrics]
}

func NewCache(store kvstore.Store, ttl time.Duration, now func() time.Time, metricsManager *metrics.Manager) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: cache.NewTTLCache[backend.DashboardMetrics](cache.Params{
			Name:           "dashboard",
			Store:          store,
			KeyFunc:        kvstore.DashboardKey,
			TTL:            ttl,
			Now:            now,
			MetricsManager: metricsManager,
		}),
	}
}

// ReadCache returns the entry only if it belongs to userID and is younger than the TTL.
func (c *Cache) ReadCache(ctx context.Context, userID string) (*cache.Entry[backend.DashboardMetrics], bool) {
	return c.entries.Read(ctx, userID)
}

func (c *Cache) WriteCache(ctx context.Context, userID string, payload backend.DashboardMetrics) error {
	return c.entries.Write(ctx, userID, payload)
}

func (c *Cache) Invalidate(ctx context.Context, userID string) error {
	return c.entries.Invalidate(ctx, userID, "explicit")
}

// SubscribeTo invalidates the user's entry whenever data of that user
// changes or is cleared.
func (c *Cache) SubscribeTo(hub subscriber) (unsubscribe func()) {
	var unsubscribers []func()
	for _, topic := range invalidatingTopics {
		unsubscribers = append(unsubscribers, hub.Subscribe(topic, c.onMutation))
	}
	return func() {
		for _, u := range unsubscribers {
			u()
		}
	}
}

func (c *Cache) onMutation(ctx context.Context, event notify.Event) {
	if err := c.entries.Invalidate(ctx, event.UserID, string(event.Topic)); err != nil {
		log.Errorf("dashboard cache, invalidate on %s for [%s]: %s", event.Topic, event.UserID, err)
	}
}
