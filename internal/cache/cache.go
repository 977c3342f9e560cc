// Package cache holds read results of the content collection behind a
// version counter. Every write bumps the version and drops all entries, and
// the version doubles as the HTTP entity tag.
package cache

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/metrics"
)

// Versioned is a read-through cache invalidated as a whole on every write.
type Versioned[V any] struct {
	mu      sync.RWMutex
	version uint64
	entries map[string]V
}

// New creates an empty cache at version 1.
func New[V any]() *Versioned[V] {
	metrics.CacheVersion.Set(1)
	return &Versioned[V]{version: 1, entries: make(map[string]V)}
}

// Get returns the cached value for key with the version it belongs to.
func (c *Versioned[V]) Get(key string) (V, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	if ok {
		metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
	}
	return v, c.version, ok
}

// Set stores value for key if the cache is still at version. A value read
// before a concurrent invalidation is dropped.
func (c *Versioned[V]) Set(key string, version uint64, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version != c.version {
		return false
	}
	c.entries[key] = value
	return true
}

// Version returns the current version.
func (c *Versioned[V]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Invalidate drops every entry and returns the new version.
func (c *Versioned[V]) Invalidate() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	clear(c.entries)
	metrics.CacheVersion.Set(float64(c.version))
	return c.version
}

// ETag formats a version as a weak entity tag.
func ETag(version uint64) string {
	return fmt.Sprintf(`W/"v%d"`, version)
}

// Matches reports whether an If-None-Match header value names version.
func Matches(ifNoneMatch string, version uint64) bool {
	if ifNoneMatch == "" {
		return false
	}
	if strings.TrimSpace(ifNoneMatch) == "*" {
		return true
	}
	for _, tag := range strings.Split(ifNoneMatch, ",") {
		tag = strings.TrimSpace(tag)
		tag = strings.TrimPrefix(tag, "W/")
		tag = strings.Trim(tag, `"`)
		if n, err := strconv.ParseUint(strings.TrimPrefix(tag, "v"), 10, 64); err == nil && n == version {
			return true
		}
	}
	return false
}
