package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(cfg *Config) (*Limiter, *time.Time) {
	l := NewLimiter(cfg)
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestAllowWithinBudget(t *testing.T) {
	l, _ := newTestLimiter(DefaultConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		info := l.Allow("203.0.113.7")
		assert.True(t, info.Allowed, "request %d should pass", i+1)
	}

	info := l.Allow("203.0.113.7")
	assert.False(t, info.Allowed)
	assert.Equal(t, 5, info.Limit)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(DefaultConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		l.Allow("203.0.113.7")
	}
	require.False(t, l.Allow("203.0.113.7").Allowed)
	assert.True(t, l.Allow("198.51.100.9").Allowed)
}

func TestTokensRefillOverTime(t *testing.T) {
	l, current := newTestLimiter(DefaultConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		l.Allow("203.0.113.7")
	}
	require.False(t, l.Allow("203.0.113.7").Allowed)

	// 5 per hour refills one token every 12 minutes.
	*current = current.Add(13 * time.Minute)
	assert.True(t, l.Allow("203.0.113.7").Allowed)
	assert.False(t, l.Allow("203.0.113.7").Allowed)
}

func TestLoopbackWhitelisted(t *testing.T) {
	l, _ := newTestLimiter(DefaultConfig())
	defer l.Stop()

	for i := 0; i < 20; i++ {
		assert.True(t, l.Allow("127.0.0.1").Allowed)
		assert.True(t, l.Allow("::1").Allowed)
	}
}

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("203.0.113.7").Allowed)
	}
}

func TestEvictStaleDropsIdleClients(t *testing.T) {
	l, current := newTestLimiter(DefaultConfig())
	defer l.Stop()

	l.Allow("203.0.113.7")
	require.Len(t, l.buckets, 1)

	*current = current.Add(2 * time.Hour)
	l.evictStale()
	assert.Empty(t, l.buckets)
	assert.Empty(t, l.lastAccess)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 5, cfg.Limit)
	assert.Equal(t, time.Hour, cfg.Window)
	assert.True(t, cfg.Whitelist["127.0.0.1"])
	assert.True(t, cfg.Whitelist["::1"])
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_LIMIT", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "30m")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")

	cfg := LoadConfig()
	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, 30*time.Minute, cfg.Window)
	assert.True(t, cfg.Whitelist["10.0.0.1"])
	assert.True(t, cfg.Whitelist["10.0.0.2"])
	assert.False(t, cfg.Whitelist["127.0.0.1"])
}

func TestLoadConfigDisabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}
