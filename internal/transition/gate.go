// Package transition holds the user on the onboarding transition screen until
// the remote save has finished and a minimum display time has passed.
package transition

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/fitcoach/internal/bodymetrics"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=transition_test

var ErrAlreadyRan = errors.New("transition gate already ran")

type State int

const (
	StateIdle State = iota
	StateSaving
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSaving:
		return "saving"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type onboardingSaver interface {
	SaveOnboarding(ctx context.Context, record bodymetrics.OnboardingRecord) error
}

// Prefetcher warms a per-user cache.
type Prefetcher interface {
	Prefetch(ctx context.Context, userID string) error
}

type Params struct {
	Saver onboardingSaver
	// Prefetchers run in order once the save succeeded. Their errors are only logged.
	Prefetchers    []Prefetcher
	MinDuration    time.Duration
	OnReady        func()
	MetricsManager *metrics.Manager
}

// Gate is single use: create one per onboarding submission.
type Gate struct {
	saver          onboardingSaver
	prefetchers    []Prefetcher
	minDuration    time.Duration
	onReady        func()
	metricsManager *metrics.Manager

	mutex sync.Mutex
	state State
	err   error
}

func NewGate(params Params) *Gate {
	return &Gate{
		saver:          params.Saver,
		prefetchers:    params.Prefetchers,
		minDuration:    params.MinDuration,
		onReady:        params.OnReady,
		metricsManager: params.MetricsManager,
	}
}

func (g *Gate) State() State {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.state
}

// Err is the failure that moved the gate to StateFailed, if any.
func (g *Gate) Err() error {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.err
}

// Run saves the record remotely, prefetches, and waits for the later of that
// chain and the minimum duration. A failed save is fatal: the gate ends in
// StateFailed and OnReady is never called. Run may be called once.
func (g *Gate) Run(ctx context.Context, record bodymetrics.OnboardingRecord) (err error) {
	g.mutex.Lock()
	if g.state != StateIdle {
		g.mutex.Unlock()
		return ErrAlreadyRan
	}
	g.state = StateSaving
	g.mutex.Unlock()

	ctx, span := tracing.GlobalTracer.Start(ctx, "transition.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()
	err = g.join(ctx, record)
	if g.metricsManager != nil {
		g.metricsManager.HistogramTransitionDuration.Observe(time.Since(start).Seconds())
	}

	g.mutex.Lock()
	if err != nil {
		g.state = StateFailed
		g.err = err
	} else {
		g.state = StateReady
	}
	g.mutex.Unlock()

	if err != nil {
		g.countSave("failed")
		log.Errorf("transition for user [%s] failed: %s", record.UserID, err)
		return err
	}

	g.countSave("ok")
	if g.onReady != nil {
		g.onReady()
	}
	return nil
}

func (g *Gate) join(ctx context.Context, record bodymetrics.OnboardingRecord) error {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		timer := time.NewTimer(g.minDuration)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-egCtx.Done():
			return egCtx.Err()
		}
	})

	eg.Go(func() error {
		if err := g.saver.SaveOnboarding(egCtx, record); err != nil {
			return fmt.Errorf("save onboarding remotely: %w", err)
		}
		for _, p := range g.prefetchers {
			if err := p.Prefetch(egCtx, record.UserID); err != nil {
				log.Warnf("transition prefetch for user [%s]: %s", record.UserID, err)
			}
		}
		return nil
	})

	return eg.Wait()
}

func (g *Gate) countSave(outcome string) {
	if g.metricsManager != nil {
		g.metricsManager.CounterOnboardingSaves.WithLabelValues(outcome).Inc()
	}
}

// Factory hands out a fresh Gate for every submission.
type Factory struct {
	params Params
}

func NewFactory(params Params) *Factory {
	return &Factory{params: params}
}

// Run builds a new Gate and runs it with record.
func (f *Factory) Run(ctx context.Context, record bodymetrics.OnboardingRecord) error {
	return NewGate(f.params).Run(ctx, record)
}
