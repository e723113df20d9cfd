package repository

import (
	"context"
	"time"
)

// RevocationRepository keeps the ids of access tokens that were logged out before expiry.
type RevocationRepository interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
