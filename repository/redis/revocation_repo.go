package redis

import (
	"context"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/newsroom/domain"
	"github.com/fastygo/newsroom/repository"
)

type revocationRepository struct {
	client redislib.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRevocationRepository creates a Redis-backed token revocation list.
// Entries expire together with the token they revoke; fallbackTTL is used when that is unknown.
func NewRevocationRepository(client redislib.Cmdable, fallbackTTL time.Duration) repository.RevocationRepository {
	if fallbackTTL <= 0 {
		fallbackTTL = 24 * time.Hour
	}
	return &revocationRepository{
		client: client,
		prefix: "revoked:",
		ttl:    fallbackTTL,
	}
}

func (r *revocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return domain.ErrInvalidPayload
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	return r.client.Set(ctx, r.key(tokenID), time.Now().UTC().Format(time.RFC3339), ttl).Err()
}

func (r *revocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *revocationRepository) key(id string) string {
	return fmt.Sprintf("%s%s", r.prefix, id)
}
