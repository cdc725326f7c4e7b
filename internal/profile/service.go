// Package profile keeps the user's nutrition profile (calories, phase and
// protein target) cached per user in front of the agent backend.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/backend"
	"github.com/2beens/fitcoach/internal/bodymetrics"
	"github.com/2beens/fitcoach/internal/cache"
	"github.com/2beens/fitcoach/internal/kvstore"
	"github.com/2beens/fitcoach/internal/notify"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=profile_test

const DefaultTTL = 5 * time.Minute

type profileBackend interface {
	GetProfile(ctx context.Context, userID string) (*backend.UserProfile, error)
	SaveProfile(ctx context.Context, userID string, profile backend.UserProfile) error
}

type onboardingReader interface {
	Get(ctx context.Context, userID string) (*bodymetrics.OnboardingRecord, bool)
}

type hub interface {
	Subscribe(topic notify.Topic, fn notify.Handler) (unsubscribe func())
	Publish(ctx context.Context, event notify.Event)
}

type Params struct {
	Backend        profileBackend
	Onboarding     onboardingReader
	Store          kvstore.Store
	Hub            hub
	TTL            time.Duration
	Now            func() time.Time
	MetricsManager *metrics.Manager
}

type Service struct {
	backend    profileBackend
	onboarding onboardingReader
	hub        hub
	cache      *cache.TTLCache[backend.UserProfile]
}

// NewService publishes profile changes on params.Hub. Cache invalidation on
// onboarding changes is wired separately with SubscribeTo.
func NewService(params Params) *Service {
	ttl := params.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &Service{
		backend:    params.Backend,
		onboarding: params.Onboarding,
		hub:        params.Hub,
		cache: cache.NewTTLCache[backend.UserProfile](cache.Params{
			Name:           "profile",
			Store:          params.Store,
			KeyFunc:        kvstore.ProfileKey,
			TTL:            ttl,
			Now:            params.Now,
			MetricsManager: params.MetricsManager,
		}),
	}

	return s
}

// SubscribeTo drops the cached profile whenever the user's onboarding data
// changes or is cleared.
func (s *Service) SubscribeTo(h hub) (unsubscribe func()) {
	unsubscribers := []func(){
		h.Subscribe(notify.TopicOnboardingChanged, s.onUserDataChanged),
		h.Subscribe(notify.TopicUserCleared, s.onUserDataChanged),
	}
	return func() {
		for _, u := range unsubscribers {
			u()
		}
	}
}

// Get returns the cached profile, else the remote one. When the backend has no
// profile or cannot be reached, the user gets one derived from onboarding, or
// the defaults. Fallbacks are never cached.
func (s *Service) Get(ctx context.Context, userID string) (_ *backend.UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if entry, ok := s.cache.Read(ctx, userID); ok {
		return &entry.Data, nil
	}

	remote, fetchErr := s.fetchAndStore(ctx, userID)
	if fetchErr != nil {
		log.Warnf("profile for [%s], serving fallback: %s", userID, fetchErr)
	}
	if remote != nil {
		return remote, nil
	}

	fallback := s.fallback(ctx, userID)
	return &fallback, nil
}

func (s *Service) Save(ctx context.Context, userID string, profile backend.UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profile.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.backend.SaveProfile(ctx, userID, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	if err := s.cache.Invalidate(ctx, userID, "saved"); err != nil {
		log.Errorf("profile save for [%s], invalidate cache: %s", userID, err)
	}
	if s.hub != nil {
		s.hub.Publish(ctx, notify.Event{Topic: notify.TopicProfileChanged, UserID: userID})
	}
	return nil
}

// Prefetch warms the cache with the remote profile.
func (s *Service) Prefetch(ctx context.Context, userID string) error {
	if _, ok := s.cache.Read(ctx, userID); ok {
		return nil
	}
	_, err := s.fetchAndStore(ctx, userID)
	return err
}

func (s *Service) fetchAndStore(ctx context.Context, userID string) (*backend.UserProfile, error) {
	remote, err := s.backend.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if remote == nil {
		return nil, nil
	}
	if err := s.cache.Write(ctx, userID, *remote); err != nil {
		log.Errorf("profile cache write for [%s]: %s", userID, err)
	}
	return remote, nil
}

func (s *Service) fallback(ctx context.Context, userID string) backend.UserProfile {
	if s.onboarding != nil {
		if record, ok := s.onboarding.Get(ctx, userID); ok {
			return ProfileFromMetrics(bodymetrics.ComputeUserMetrics(*record))
		}
	}
	return backend.DefaultProfile()
}

func (s *Service) onUserDataChanged(ctx context.Context, event notify.Event) {
	if err := s.cache.Invalidate(ctx, event.UserID, string(event.Topic)); err != nil {
		log.Errorf("profile cache, invalidate on %s for [%s]: %s", event.Topic, event.UserID, err)
	}
}

// ProfileFromMetrics maps onboarding metrics onto the backend profile shape.
func ProfileFromMetrics(m bodymetrics.ComputedMetrics) backend.UserProfile {
	return backend.UserProfile{
		Calories:      m.CalorieTarget,
		Phase:         backend.Phase(strings.ToLower(string(m.Phase))),
		ProteinTarget: m.ProteinTarget,
	}
}
