package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLGetSet(t *testing.T) {
	c := New[string](time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", "v")
	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestTTLExpiration(t *testing.T) {
	now := time.Now()
	c := New[int](30 * time.Second)
	c.now = func() time.Time { return now }

	c.Set("k", 42)

	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	// Passado o TTL, a entrada expira
	now = now.Add(31 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestTTLDelete(t *testing.T) {
	c := New[int](time.Minute)
	c.Set("k", 1)
	c.Delete("k")

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestTTLLazyEviction(t *testing.T) {
	now := time.Now()
	c := New[int](10 * time.Second)
	c.now = func() time.Time { return now }

	c.Set("old", 1)
	now = now.Add(11 * time.Second)

	// A escrita seguinte varre as entradas expiradas
	c.Set("new", 2)

	c.mu.RLock()
	_, oldKept := c.items["old"]
	c.mu.RUnlock()
	assert.False(t, oldKept)
}
