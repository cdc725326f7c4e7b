// Package onboarding persists the onboarding form per user and serves the
// onboarding endpoints, including the save-then-dashboard transition.
package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/fitcoach/internal/bodymetrics"
	"github.com/2beens/fitcoach/internal/kvstore"
	"github.com/2beens/fitcoach/internal/notify"
)

type publisher interface {
	Publish(ctx context.Context, event notify.Event)
}

type storedOnboarding struct {
	Data      bodymetrics.OnboardingRecord `json:"data"`
	Timestamp int64                        `json:"timestamp"` // epoch millis
}

type Store struct {
	kv        kvstore.Store
	publisher publisher
	now       func() time.Time
}

func NewStore(kv kvstore.Store, publisher publisher) *Store {
	return &Store{
		kv:        kv,
		publisher: publisher,
		now:       time.Now,
	}
}

// Save replaces whatever was stored for record.UserID.
func (s *Store) Save(ctx context.Context, record bodymetrics.OnboardingRecord) error {
	if record.UserID == "" {
		return errors.New("save onboarding: empty user id")
	}

	raw, err := json.Marshal(storedOnboarding{
		Data:      record,
		Timestamp: s.now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("marshal onboarding record: %w", err)
	}

	if err := s.kv.Set(ctx, kvstore.OnboardingKey(record.UserID), raw, 0); err != nil {
		return fmt.Errorf("save onboarding record: %w", err)
	}

	s.publish(ctx, notify.TopicOnboardingChanged, record.UserID)
	return nil
}

// Get reports false when nothing usable is stored. Read and decode failures
// are logged and treated as absent.
func (s *Store) Get(ctx context.Context, userID string) (*bodymetrics.OnboardingRecord, bool) {
	stored, ok := s.get(ctx, userID)
	if !ok {
		return nil, false
	}
	return &stored.Data, true
}

// SavedAt is the time of the last Save for userID.
func (s *Store) SavedAt(ctx context.Context, userID string) (time.Time, bool) {
	stored, ok := s.get(ctx, userID)
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(stored.Timestamp), true
}

func (s *Store) get(ctx context.Context, userID string) (*storedOnboarding, bool) {
	key := kvstore.OnboardingKey(userID)
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Errorf("onboarding store: get [%s]: %s", key, err)
		}
		return nil, false
	}

	var stored storedOnboarding
	if err := json.Unmarshal(raw, &stored); err != nil {
		log.Errorf("onboarding store: corrupt record [%s]: %s", key, err)
		return nil, false
	}
	if stored.Data.UserID != "" && stored.Data.UserID != userID {
		log.Errorf("onboarding store: record under [%s] belongs to [%s]", key, stored.Data.UserID)
		return nil, false
	}
	return &stored, true
}

// Clear drops the onboarding record and every per-user cache key, then
// announces TopicUserCleared so caches kept in other stores drop theirs. Used on logout.
func (s *Store) Clear(ctx context.Context, userID string) error {
	var err error
	for _, key := range kvstore.UserKeys(userID) {
		if delErr := s.kv.Delete(ctx, key); delErr != nil {
			err = multierr.Append(err, fmt.Errorf("delete [%s]: %w", key, delErr))
		}
	}

	s.publish(ctx, notify.TopicUserCleared, userID)
	return err
}

func (s *Store) publish(ctx context.Context, topic notify.Topic, userID string) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, notify.Event{Topic: topic, UserID: userID})
}
