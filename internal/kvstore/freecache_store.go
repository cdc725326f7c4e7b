package kvstore

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/coocood/freecache"
)

var _ Store = (*FreecacheStore)(nil)

// FreecacheStore is an in-process store. Values are lost on restart,
// so it only suits caches, not the onboarding record.
type FreecacheStore struct {
	cache *freecache.Cache
}

func NewFreecacheStore(sizeMB int) *FreecacheStore {
	megabyte := 1024 * 1024
	return &FreecacheStore{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func (s *FreecacheStore) Get(_ context.Context, key string) ([]byte, error) {
	val, err := s.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("freecache get [%s]: %w", key, err)
	}
	return val, nil
}

func (s *FreecacheStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.cache.Set([]byte(key), value, expireSeconds(ttl)); err != nil {
		return fmt.Errorf("freecache set [%s]: %w", key, err)
	}
	return nil
}

func (s *FreecacheStore) Delete(_ context.Context, key string) error {
	s.cache.Del([]byte(key))
	return nil
}

// expireSeconds rounds sub-second ttls up, freecache treats 0 as "never".
func expireSeconds(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	return int(math.Ceil(ttl.Seconds()))
}
