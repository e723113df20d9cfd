package monitor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sizer struct {
	size int
	err  error
}

func (s sizer) Size() (int, error) { return s.size, s.err }

func up(context.Context) error   { return nil }
func down(context.Context) error { return errors.New("connection refused") }

func TestMonitorRefresh(t *testing.T) {
	m := New(Dependencies{
		Postgres: PingFunc(up),
		Redis:    PingFunc(up),
		Journal:  sizer{size: 12},
	}, 0, nil)

	status := m.Refresh()
	assert.True(t, status.PostgreSQL)
	assert.True(t, status.Redis)
	assert.True(t, status.Journal)
	assert.Equal(t, 12, status.JournalEntries)
	assert.True(t, m.IsOnline())
	assert.Equal(t, status, m.GetStatus())
}

func TestMonitorReportsFailures(t *testing.T) {
	m := New(Dependencies{
		Postgres: PingFunc(up),
		Redis:    PingFunc(down),
		Journal:  sizer{err: errors.New("database not open")},
	}, 0, nil)

	status := m.Refresh()
	assert.True(t, status.PostgreSQL)
	assert.False(t, status.Redis)
	assert.False(t, status.Journal)
	assert.False(t, m.IsOnline())
}

func TestMonitorMissingDependencies(t *testing.T) {
	m := New(Dependencies{}, 0, nil)

	status := m.Refresh()
	assert.False(t, status.PostgreSQL)
	assert.False(t, status.Redis)
	assert.False(t, status.Journal)
	assert.Nil(t, RedisPinger(nil))

	m.Start()
	m.Stop()
	m.Stop()
}
