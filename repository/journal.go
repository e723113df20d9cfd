package repository

import (
	"context"

	"github.com/fastygo/newsroom/domain"
)

// JournalRepository stores the audit trail of executed reports.
type JournalRepository interface {
	Append(ctx context.Context, run domain.ReportRun) error
	Recent(ctx context.Context, userID string, limit int) ([]domain.ReportRun, error)
}
