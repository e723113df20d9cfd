package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/newsroom/internal/config"
)

func TestOptions(t *testing.T) {
	opts, err := Options(config.RedisConfig{URL: "redis://cache:6380/1"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 1, opts.DB)
	assert.Empty(t, opts.Password)

	opts, err = Options(config.RedisConfig{URL: "redis://cache:6380/1", Password: "pw", DB: 3})
	require.NoError(t, err)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 3, opts.DB)
}

func TestOptionsRejectsScheme(t *testing.T) {
	_, err := Options(config.RedisConfig{URL: "http://cache:6379"})
	assert.Error(t, err)
}
