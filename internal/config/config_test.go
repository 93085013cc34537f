package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DEBUG", "POLL_INTERVAL", "IDLE_EVICTION_CYCLES", "NEWS_API_KEY", "TRENDING_TOPICS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, time.Minute, cfg.PollInterval)
	assert.Equal(t, 0, cfg.IdleEvictionCycles)
	assert.Contains(t, cfg.TrendingTopics, "chess")
	assert.Len(t, cfg.TrendingTopics, 6)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("IDLE_EVICTION_CYCLES", "3")
	t.Setenv("TRENDING_TOPICS", "go, rust ,zig")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, 3, cfg.IdleEvictionCycles)
	assert.Equal(t, []string{"go", "rust", "zig"}, cfg.TrendingTopics)
}

func TestLoad_RejectsShortPollInterval(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "500ms")

	_, err := Load()
	assert.Error(t, err)
}
