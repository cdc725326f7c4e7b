package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginChecker_UserID(t *testing.T) {
	db, mock := redismock.NewClientMock()

	loginChecker := NewLoginChecker(time.Hour, db)
	require.NotNil(t, loginChecker)
	now := time.Now()
	loginChecker.now = func() time.Time { return now }

	ctx := context.Background()

	_, err := loginChecker.UserID(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	mock.ExpectGet(sessionKeyPrefix + "invalid token").RedisNil()
	_, err = loginChecker.UserID(ctx, "invalid token")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	mock.ExpectGet(sessionKeyPrefix + "invalid token").RedisNil()
	_, err = loginChecker.UserID(ctx, "invalid token")
	assert.ErrorIs(t, err, ErrSessionNotFound) // idempotent

	mock.ExpectGet(sessionKeyPrefix + "test-token").SetVal(sessionValue("u1", now.Add(-time.Minute)))
	userID, err := loginChecker.UserID(ctx, "test-token")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	mock.ExpectGet(sessionKeyPrefix + "old-token").SetVal(sessionValue("u1", now.Add(-2*time.Hour)))
	_, err = loginChecker.UserID(ctx, "old-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	mock.ExpectGet(sessionKeyPrefix + "no-user").SetVal(`{"created_at":1}`)
	_, err = loginChecker.UserID(ctx, "no-user")
	assert.ErrorIs(t, err, ErrInvalidToken)

	connErr := errors.New("connection reset")
	mock.ExpectGet(sessionKeyPrefix + "test-token").SetErr(connErr)
	_, err = loginChecker.UserID(ctx, "test-token")
	assert.ErrorIs(t, err, connErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginTestChecker(t *testing.T) {
	checker := NewLoginTestChecker()
	checker.AddSession("tkn", "u1")
	ctx := context.Background()

	userID, err := checker.UserID(ctx, "tkn")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	_, err = checker.UserID(ctx, "other")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = checker.UserID(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserIDContext(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := ContextWithUserID(context.Background(), "u1")
	userID, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", userID)

	_, ok = UserIDFromContext(ContextWithUserID(context.Background(), ""))
	assert.False(t, ok)
}
