package server

import (
	"sync"
	"time"

	"github.com/mj1618/spaces-cli/internal/model"
	"github.com/mj1618/spaces-cli/internal/platform"
)

// SpaceCache provides a TTL-based cache for the display/space list, which
// agents tend to request repeatedly in quick succession.
type SpaceCache struct {
	mu        sync.Mutex
	displays  []model.Display
	timestamp time.Time
	valid     bool
	ttl       time.Duration
}

// NewSpaceCache creates a new cache. A ttl of 0 disables caching.
func NewSpaceCache(ttl time.Duration) *SpaceCache {
	return &SpaceCache{ttl: ttl}
}

// Displays returns cached displays if within TTL, otherwise reads fresh.
// The caller must hold the provider mutex.
func (c *SpaceCache) Displays(reader platform.SpaceReader) ([]model.Display, error) {
	if c.ttl == 0 {
		return reader.ListDisplays()
	}

	c.mu.Lock()
	if c.valid && time.Since(c.timestamp) < c.ttl {
		displays := c.displays
		c.mu.Unlock()
		return displays, nil
	}
	c.mu.Unlock()

	displays, err := reader.ListDisplays()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.displays = displays
	c.timestamp = time.Now()
	c.valid = true
	c.mu.Unlock()

	return displays, nil
}

// Invalidate clears the cache.
func (c *SpaceCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.displays = nil
}
