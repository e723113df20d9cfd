package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJournal struct {
	cutoff  time.Time
	removed int
	size    int
	err     error
}

func (f *fakeJournal) Cleanup(olderThan time.Time) (int, error) {
	f.cutoff = olderThan
	return f.removed, f.err
}

func (f *fakeJournal) Size() (int, error) {
	return f.size, nil
}

func TestJournalPrunerUsesRetentionWindow(t *testing.T) {
	journal := &fakeJournal{removed: 4, size: 6}
	pruner := NewJournalPruner(journal, nil, PrunerConfig{Interval: time.Minute, Retention: 48 * time.Hour})
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	pruner.now = func() time.Time { return now }

	removed, err := pruner.Prune(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, removed)
	assert.Equal(t, now.Add(-48*time.Hour), journal.cutoff)
}

func TestJournalPrunerPropagatesErrors(t *testing.T) {
	journal := &fakeJournal{err: errors.New("bolt closed")}
	pruner := NewJournalPruner(journal, nil, PrunerConfig{})

	_, err := pruner.Prune(context.Background())
	assert.EqualError(t, err, "bolt closed")
}

func TestJournalPrunerDefaultsAndNilSafety(t *testing.T) {
	pruner := NewJournalPruner(nil, nil, PrunerConfig{})
	assert.Equal(t, time.Hour, pruner.cfg.Interval)
	assert.Equal(t, 30*24*time.Hour, pruner.cfg.Retention)

	removed, err := pruner.Prune(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)

	pruner.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	pruner.Stop(ctx)
}
