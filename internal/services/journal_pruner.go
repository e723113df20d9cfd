package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/newsroom/internal/metrics"
)

// PrunableJournal is the retention surface of the report journal.
type PrunableJournal interface {
	Cleanup(olderThan time.Time) (int, error)
	Size() (int, error)
}

// PrunerConfig controls how often and how aggressively the journal is pruned.
type PrunerConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

// JournalPruner drops report runs that fell out of the retention window.
type JournalPruner struct {
	journal PrunableJournal
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     PrunerConfig
	now     func() time.Time
}

func NewJournalPruner(journal PrunableJournal, logger *zap.Logger, cfg PrunerConfig) *JournalPruner {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 30 * 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	jp := &JournalPruner{
		journal: journal,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
		now:     time.Now,
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = jp.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if _, err := jp.Prune(ctx); err != nil {
			jp.logger.Error("journal prune failed", zap.Error(err))
		}
	})

	return jp
}

// Start launches the cron scheduler.
func (jp *JournalPruner) Start() {
	if jp == nil || jp.cron == nil {
		return
	}
	jp.cron.Start()
	jp.logger.Info("journal pruner started",
		zap.Duration("interval", jp.cfg.Interval),
		zap.Duration("retention", jp.cfg.Retention))
}

// Stop waits for a running prune to finish or ctx to expire.
func (jp *JournalPruner) Stop(ctx context.Context) {
	if jp == nil || jp.cron == nil {
		return
	}
	stopCtx := jp.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	jp.logger.Info("journal pruner stopped")
}

// Prune removes runs older than the retention window.
func (jp *JournalPruner) Prune(ctx context.Context) (int, error) {
	if jp == nil || jp.journal == nil {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	cutoff := jp.now().Add(-jp.cfg.Retention)
	removed, err := jp.journal.Cleanup(cutoff)
	if err != nil {
		return removed, err
	}
	remaining, err := jp.journal.Size()
	if err != nil {
		return removed, err
	}
	metrics.RecordJournalPrune(removed, remaining)

	if removed > 0 {
		jp.logger.Info("journal pruned",
			zap.Int("removed", removed),
			zap.Int("remaining", remaining),
			zap.Time("cutoff", cutoff))
	}
	return removed, nil
}
