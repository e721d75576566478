package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AIMastersDoJo/citclocationsdashboard/internal/domain"
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time { return c.current }

func (c *fakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

func TestDashboardCache_PutGet(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 4, 22, 9, 0, 0, 0, time.UTC)}
	c := NewDashboardCache(25*time.Second, clock.Now)

	data := domain.LocationCards{"Brisbane": {{InstanceID: "1"}}}
	stored := c.Put("k", data)

	assert.Equal(t, clock.current, stored.Updated)
	assert.Equal(t, clock.current.Add(25*time.Second), stored.ExpiresAt)

	entry, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, data, entry.Data)
	assert.Equal(t, stored.Updated, entry.Updated)
}

func TestDashboardCache_Expiry(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 4, 22, 9, 0, 0, 0, time.UTC)}
	c := NewDashboardCache(25*time.Second, clock.Now)
	c.Put("k", domain.LocationCards{})

	// exatamente no limite ainda é servido
	clock.Advance(25 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok)

	clock.Advance(time.Nanosecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestDashboardCache_Defaults(t *testing.T) {
	c := NewDashboardCache(0, nil)
	assert.Equal(t, DefaultTTL, c.TTL())

	_, ok := c.Get("inexistente")
	assert.False(t, ok)
}

func TestDashboardCache_PutReplaces(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 4, 22, 9, 0, 0, 0, time.UTC)}
	c := NewDashboardCache(time.Minute, clock.Now)

	c.Put("k", domain.LocationCards{"A": nil})
	clock.Advance(10 * time.Second)
	second := c.Put("k", domain.LocationCards{"B": nil})

	entry, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, second.Updated, entry.Updated)
	assert.Contains(t, entry.Data, "B")
	assert.Equal(t, 1, c.Len())
}
