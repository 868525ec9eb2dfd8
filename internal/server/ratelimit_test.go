package server

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterManagerAllow(t *testing.T) {
	m := NewRateLimiter(60, time.Minute, 2, nil)
	defer m.Close()

	// Burst of two tokens, refilled at one per second.
	assert.True(t, m.Allow("client-a"))
	assert.True(t, m.Allow("client-a"))
	assert.False(t, m.Allow("client-a"))

	// Keys are isolated.
	assert.True(t, m.Allow("client-b"))
}

func TestLimiterManagerGetLimiter(t *testing.T) {
	m := NewRateLimiter(60, time.Minute, 2, nil)
	defer m.Close()

	first := m.GetLimiter("client-a")
	second := m.GetLimiter("client-a")
	other := m.GetLimiter("client-b")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestLimiterManagerStats(t *testing.T) {
	m := NewRateLimiter(120, time.Minute, 5, nil)
	defer m.Close()

	m.GetLimiter("a")
	m.GetLimiter("b")

	stats := m.GetStats()
	assert.Equal(t, 2, stats["active_limiters"])
	assert.Equal(t, 5, stats["burst_capacity"])
	assert.InDelta(t, 120.0, stats["rate_per_minute"].(float64), 0.01)
}

func TestLimiterManagerCleanup(t *testing.T) {
	m := NewRateLimiter(60, time.Minute, 2, nil)
	defer m.Close()

	m.GetLimiter("stale")
	m.GetLimiter("fresh")

	m.mu.Lock()
	m.lastSeen["stale"] = time.Now().Add(-time.Hour)
	m.mu.Unlock()

	m.cleanup(30 * time.Minute)

	m.mu.Lock()
	_, staleExists := m.limiters["stale"]
	_, freshExists := m.limiters["fresh"]
	m.mu.Unlock()

	assert.False(t, staleExists)
	assert.True(t, freshExists)
}

func TestGetRateLimitKey(t *testing.T) {
	t.Run("api key header", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/audit", nil)
		req.Header.Set("X-API-Key", "abc")

		assert.Equal(t, "api:abc", getRateLimitKey(req, true, true))
	})

	t.Run("bearer token fallback", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/audit", nil)
		req.Header.Set("Authorization", "Bearer xyz")

		assert.Equal(t, "api:xyz", getRateLimitKey(req, true, false))
	})

	t.Run("falls back to ip", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/audit", nil)
		req.RemoteAddr = "203.0.113.9:4312"

		assert.Equal(t, "ip:203.0.113.9", getRateLimitKey(req, true, true))
	})

	t.Run("nothing enabled", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/audit", nil)

		assert.Equal(t, "", getRateLimitKey(req, false, false))
	})
}

func TestGetClientIP(t *testing.T) {
	t.Run("x-forwarded-for takes precedence", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.5, 70.41.3.18")
		req.Header.Set("X-Real-IP", "198.51.100.7")

		assert.Equal(t, "203.0.113.5", getClientIP(req))
	})

	t.Run("invalid forwarded entries are skipped", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set("X-Forwarded-For", "garbage, 70.41.3.18")

		assert.Equal(t, "70.41.3.18", getClientIP(req))
	})

	t.Run("x-real-ip fallback", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set("X-Real-IP", "198.51.100.7")

		assert.Equal(t, "198.51.100.7", getClientIP(req))
	})

	t.Run("remote addr host", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "192.0.2.1:1234"

		assert.Equal(t, "192.0.2.1", getClientIP(req))
	})
}

func TestParseFirstIP(t *testing.T) {
	assert.Equal(t, "203.0.113.5", parseFirstIP("203.0.113.5, 70.41.3.18"))
	assert.Equal(t, "70.41.3.18", parseFirstIP("not-an-ip, 70.41.3.18"))
	assert.Equal(t, "", parseFirstIP("nope"))
	assert.Equal(t, "2001:db8::1", parseFirstIP(" 2001:db8::1 "))

	require.Equal(t, "", parseFirstIP(""))
}
