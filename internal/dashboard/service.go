package dashboard

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/backend"
	"github.com/2beens/fitcoach/internal/bodymetrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

type Source string

const (
	SourceCache   Source = "cache"
	SourceRemote  Source = "remote"
	SourceDefault Source = "default"
)

const fallbackBanner = "Showing default wellness metrics, live data is unavailable right now."

type metricsFetcher interface {
	FetchDashboardMetrics(ctx context.Context, userID string) (*backend.DashboardMetrics, error)
}

type onboardingReader interface {
	Get(ctx context.Context, userID string) (*bodymetrics.OnboardingRecord, bool)
}

// View is what the dashboard renders. Banner is a non-blocking notice, set
// when defaults are shown. Body is present once the user is onboarded.
type View struct {
	Metrics   backend.DashboardMetrics     `json:"metrics"`
	Source    Source                       `json:"source"`
	FetchedAt *time.Time                   `json:"fetched_at,omitempty"`
	Banner    string                       `json:"banner,omitempty"`
	Body      *bodymetrics.ComputedMetrics `json:"body,omitempty"`
}

type Service struct {
	cache      *Cache
	fetcher    metricsFetcher
	onboarding onboardingReader
	now        func() time.Time
}

func NewService(cache *Cache, fetcher metricsFetcher, onboarding onboardingReader) *Service {
	return &Service{
		cache:      cache,
		fetcher:    fetcher,
		onboarding: onboarding,
		now:        time.Now,
	}
}

// Load never fails: it serves the cache, then the backend, then defaults.
func (s *Service) Load(ctx context.Context, userID string, forceRefresh bool) *View {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.load")
	defer span.End()

	view := s.loadMetrics(ctx, userID, forceRefresh)
	if s.onboarding != nil {
		if record, ok := s.onboarding.Get(ctx, userID); ok {
			body := bodymetrics.ComputeUserMetrics(*record)
			view.Body = &body
		}
	}
	return view
}

func (s *Service) loadMetrics(ctx context.Context, userID string, forceRefresh bool) *View {
	if forceRefresh {
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			log.Errorf("dashboard load for [%s], invalidate: %s", userID, err)
		}
	} else if entry, ok := s.cache.ReadCache(ctx, userID); ok {
		fetchedAt := entry.Time()
		return &View{
			Metrics:   entry.Data,
			Source:    SourceCache,
			FetchedAt: &fetchedAt,
		}
	}

	metrics, err := s.fetchAndStore(ctx, userID)
	if err != nil {
		log.Errorf("dashboard load for [%s], falling back to defaults: %s", userID, err)
		return &View{
			Metrics: backend.DefaultMetrics(),
			Source:  SourceDefault,
			Banner:  fallbackBanner,
		}
	}

	fetchedAt := s.now()
	return &View{
		Metrics:   *metrics,
		Source:    SourceRemote,
		FetchedAt: &fetchedAt,
	}
}

// Prefetch warms the cache unless it already holds a fresh entry.
func (s *Service) Prefetch(ctx context.Context, userID string) error {
	if _, ok := s.cache.ReadCache(ctx, userID); ok {
		return nil
	}
	_, err := s.fetchAndStore(ctx, userID)
	return err
}

func (s *Service) fetchAndStore(ctx context.Context, userID string) (*backend.DashboardMetrics, error) {
	metrics, err := s.fetcher.FetchDashboardMetrics(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.WriteCache(ctx, userID, *metrics); err != nil {
		// served anyway, the next load refetches
		log.Errorf("dashboard cache write for [%s]: %s", userID, err)
	}
	return metrics, nil
}
