package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DamienOReilly/reddit-stats/internal/structures"
)

// local mock logger to avoid import cycle with testutil
type cacheTestLogger struct{}

func (m *cacheTestLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *cacheTestLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *cacheTestLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *cacheTestLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *cacheTestLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *cacheTestLogger) Close()                                        {}

func cacheConfig(enabled bool, size int, ttl time.Duration) *structures.Config {
	return &structures.Config{
		Cache: structures.CacheConfig{
			Enabled: enabled,
			Size:    size,
			TTL:     ttl,
		},
	}
}

func TestCacheProvider_DisabledReturnsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(false, 10, 5*time.Minute), &cacheTestLogger{})
	_, ok := c.Get("any")
	assert.False(t, ok)
	assert.IsType(t, &noopCache{}, c)
}

func TestCacheProvider_ZeroSizeReturnsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 0, 5*time.Minute), &cacheTestLogger{})
	assert.IsType(t, &noopCache{}, c)
}

func TestCacheProvider_SetGetRoundtrip(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Minute), &cacheTestLogger{})

	c.Set("stats:spez", []byte(`{"user":"spez"}`))
	val, ok := c.Get("stats:spez")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"user":"spez"}`), val)
}

func TestCacheProvider_MissingKey(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Minute), &cacheTestLogger{})

	_, ok := c.Get("stats:nobody")
	assert.False(t, ok)
}

func TestNoopCache_SetIsIgnored(t *testing.T) {
	c := &noopCache{}
	c.Set("k", []byte("v"))
	_, ok := c.Get("k")
	assert.False(t, ok)
}
