package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fastygo/newsroom/domain"
	"github.com/fastygo/newsroom/pkg/httpcontext"
	appLogger "github.com/fastygo/newsroom/pkg/logger"
	"github.com/fastygo/newsroom/repository"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type UseCase struct {
	reports repository.ReportRepository
	journal repository.JournalRepository
	logger  *zap.Logger
	now     func() time.Time
}

// New builds the video report use case. journal may be nil.
func New(reports repository.ReportRepository, journal repository.JournalRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		reports: reports,
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
}

// Generate runs the aggregation query, resolves clients and tags for the
// matched videos and assembles the report. When nothing matches, the report
// has no rows, no statistics and no elapsed time.
func (uc *UseCase) Generate(ctx context.Context, filter domain.Filter) (*domain.Report, error) {
	started := uc.now()
	log := appLogger.WithRequestID(ctx, uc.logger)

	aggregates, err := uc.reports.AggregateVideos(ctx, filter)
	if err != nil {
		log.Error("video aggregation failed", zap.Error(err))
		return nil, domain.WrapError(domain.ErrCodeInternal, "aggregate videos", err)
	}

	report := &domain.Report{Filter: filter, Rows: []domain.ReportRow{}}
	if len(aggregates) == 0 {
		log.Debug("report matched no videos", zap.String("keyword", filter.Keyword))
		uc.record(ctx, report, 0)
		return report, nil
	}

	refs, err := uc.resolve(ctx, aggregates)
	if err != nil {
		log.Error("reference resolution failed", zap.Error(err))
		return nil, domain.WrapError(domain.ErrCodeInternal, "resolve report references", err)
	}

	report.Rows, report.Stats = assemble(filter.Keyword, aggregates, refs)
	elapsed := uc.now().Sub(started)
	report.Elapsed = &elapsed

	log.Info("report computed",
		zap.String("keyword", filter.Keyword),
		zap.Int("videos", report.Stats.Videos),
		zap.Int64("downloads", report.Stats.Downloads),
		zap.Int("clients", report.Stats.Clients),
		zap.Duration("elapsed", elapsed))

	uc.record(ctx, report, elapsed)
	return report, nil
}

// History returns the caller's most recent report runs, newest first.
func (uc *UseCase) History(ctx context.Context, userID string, limit int) ([]domain.ReportRun, error) {
	if uc.journal == nil {
		return []domain.ReportRun{}, nil
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	runs, err := uc.journal.Recent(ctx, userID, limit)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "read report history", err)
	}
	if runs == nil {
		runs = []domain.ReportRun{}
	}
	return runs, nil
}

// record writes the run to the journal. Journal failures never fail the report.
func (uc *UseCase) record(ctx context.Context, report *domain.Report, elapsed time.Duration) {
	if uc.journal == nil {
		return
	}
	run := domain.ReportRun{
		ID:        uuid.NewString(),
		UserID:    httpcontext.UserID(ctx),
		RequestID: appLogger.RequestID(ctx),
		Filter:    report.Filter,
		Computed:  report.Computed(),
		Elapsed:   elapsed,
		CreatedAt: uc.now(),
	}
	if report.Stats != nil {
		run.Videos = report.Stats.Videos
		run.Downloads = report.Stats.Downloads
		run.Clients = report.Stats.Clients
	}
	if err := uc.journal.Append(ctx, run); err != nil {
		appLogger.WithRequestID(ctx, uc.logger).Warn("failed to journal report run", zap.Error(err))
	}
}
