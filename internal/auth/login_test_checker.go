package auth

import (
	"context"
	"sync"
)

// LoginTestChecker maps tokens to user ids in memory.
type LoginTestChecker struct {
	mutex    sync.Mutex
	sessions map[string]string
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		sessions: map[string]string{},
	}
}

func (c *LoginTestChecker) AddSession(token, userID string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.sessions[token] = userID
}

func (c *LoginTestChecker) UserID(_ context.Context, token string) (string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if token == "" {
		return "", ErrInvalidToken
	}
	userID, ok := c.sessions[token]
	if !ok {
		return "", ErrSessionNotFound
	}
	return userID, nil
}
