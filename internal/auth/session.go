package auth

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitcoach-session||"
	tokensSetKey     = "fitcoach-sessions"
	tokenLength      = 35
)

type session struct {
	UserID    string `json:"user_id"`
	CreatedAt int64  `json:"created_at"` // unix seconds
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (s session) createdAt() time.Time {
	return time.Unix(s.CreatedAt, 0)
}

func (s session) expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(s.createdAt()) > ttl
}

func parseSession(raw string) (session, error) {
	var s session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return session{}, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if s.UserID == "" {
		return session{}, fmt.Errorf("%w: session without user", ErrInvalidToken)
	}
	return s, nil
}
