// Package kvstore holds the persistent key/value storage behind the onboarding
// record, the per-user caches and anything else that used to live in browser
// local storage. Every backend satisfies Store, so callers never touch
// a concrete storage client directly.
package kvstore

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("kv entry not found")

type Store interface {
	// Get returns ErrNotFound when the key is missing or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces any previous value. A zero ttl means the value never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
}

const (
	onboardingKeyPrefix = "user_onboarding_data"
	dashboardKeyPrefix  = "dashboard_cache"
	profileKeyPrefix    = "profile_cache"
)

func OnboardingKey(userID string) string {
	return onboardingKeyPrefix + "::" + userID
}

func DashboardKey(userID string) string {
	return dashboardKeyPrefix + "::" + userID
}

func ProfileKey(userID string) string {
	return profileKeyPrefix + "::" + userID
}

// UserKeys lists every key holding data for the given user.
func UserKeys(userID string) []string {
	return []string{
		OnboardingKey(userID),
		DashboardKey(userID),
		ProfileKey(userID),
	}
}
