package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/newsroom/domain"
	appLogger "github.com/fastygo/newsroom/pkg/logger"
	"github.com/fastygo/newsroom/repository"
)

type UseCase struct {
	revocations repository.RevocationRepository
	logger      *zap.Logger
	now         func() time.Time
}

func New(revocations repository.RevocationRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		revocations: revocations,
		logger:      logger,
		now:         time.Now,
	}
}

// Logout revokes the caller's token for the rest of its lifetime.
func (uc *UseCase) Logout(ctx context.Context, principal *domain.Principal) error {
	if principal == nil || principal.TokenID == "" {
		return domain.ErrUnauthorized
	}
	if err := uc.revocations.Revoke(ctx, principal.TokenID, principal.RemainingTTL(uc.now())); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "revoke token", err)
	}
	appLogger.WithRequestID(ctx, uc.logger).Info("token revoked",
		zap.String("user_id", principal.UserID),
		zap.String("token_id", principal.TokenID))
	return nil
}

// IsRevoked reports whether the token id was logged out.
func (uc *UseCase) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return uc.revocations.IsRevoked(ctx, tokenID)
}
