//go:build integration

package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/newsroom/domain"
)

func setupTestClient(t *testing.T) *redislib.Client {
	t.Helper()

	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping test: TEST_REDIS_URL not set")
	}
	opts, err := redislib.ParseURL(url)
	require.NoError(t, err)

	client := redislib.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestRevocationRepository(t *testing.T) {
	client := setupTestClient(t)
	repo := NewRevocationRepository(client, time.Minute)
	ctx := context.Background()
	tokenID := uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), "revoked:"+tokenID) })

	revoked, err := repo.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, tokenID, 30*time.Second))

	revoked, err = repo.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, "revoked:"+tokenID).Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, 30*time.Second)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRevocationRepositoryFallbackTTL(t *testing.T) {
	client := setupTestClient(t)
	repo := NewRevocationRepository(client, time.Minute)
	ctx := context.Background()
	tokenID := uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), "revoked:"+tokenID) })

	require.NoError(t, repo.Revoke(ctx, tokenID, 0))

	ttl, err := client.TTL(ctx, "revoked:"+tokenID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 30*time.Second)
}

func TestRevocationRepositoryRejectsEmptyID(t *testing.T) {
	repo := NewRevocationRepository(nil, 0)

	assert.ErrorIs(t, repo.Revoke(context.Background(), "", time.Minute), domain.ErrInvalidPayload)
	revoked, err := repo.IsRevoked(context.Background(), "")
	assert.NoError(t, err)
	assert.False(t, revoked)
}
