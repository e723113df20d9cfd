package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/newsroom/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal", "runs.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func run(userID string, at time.Time, videos int) domain.ReportRun {
	return domain.ReportRun{
		UserID:    userID,
		Filter:    domain.Filter{Keyword: "Test"},
		Computed:  videos > 0,
		Videos:    videos,
		CreatedAt: at,
	}
}

func TestStoreRecentNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, run("alice", base, 1)))
	require.NoError(t, store.Append(ctx, run("bob", base.Add(time.Minute), 2)))
	require.NoError(t, store.Append(ctx, run("alice", base.Add(2*time.Minute), 3)))

	runs, err := store.Recent(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 3, runs[0].Videos)
	assert.Equal(t, 1, runs[1].Videos)
	assert.NotEmpty(t, runs[0].ID)
	assert.Equal(t, "Test", runs[0].Filter.Keyword)

	all, err := store.Recent(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 3, all[0].Videos)
	assert.Equal(t, 2, all[1].Videos)

	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 3, size)
}

func TestStoreCleanupRemovesOlderRuns(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(ctx, run("alice", base.Add(time.Duration(i)*time.Hour), i)))
	}

	removed, err := store.Cleanup(base.Add(3 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	runs, err := store.Recent(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 4, runs[0].Videos)
	assert.Equal(t, 3, runs[1].Videos)
}

func TestStoreRejectsCancelledContext(t *testing.T) {
	store := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Append(ctx, run("alice", time.Now(), 1)), context.Canceled)
	_, err := store.Recent(ctx, "alice", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClosedStore(t *testing.T) {
	var store *Store
	_, err := store.Size()
	assert.Error(t, err)
	assert.NoError(t, store.Close())
}
