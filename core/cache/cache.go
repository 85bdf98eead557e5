package cache

import (
	"fmt"
	"time"

	"model-compare/core/graph"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// entry is a cached node mapping and the time it was built.
type entry struct {
	mapping graph.NodeMapping
	built   time.Time
}

// MappingCache holds node mappings of stored documents so repeated comparisons
// against the same object version skip download and extraction.
type MappingCache struct {
	entries *lru.Cache[string, entry]
	ttl     time.Duration
	sf      singleflight.Group
	now     func() time.Time
}

// New creates a cache holding up to size mappings for ttl each.
func New(size int, ttl time.Duration) (*MappingCache, error) {
	if size <= 0 {
		size = 1
	}
	entries, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create mapping cache: %w", err)
	}
	return &MappingCache{entries: entries, ttl: ttl, now: time.Now}, nil
}

// NewFromConfig creates a cache from configuration.
func NewFromConfig(cfg Config) (*MappingCache, error) {
	return New(cfg.Size, time.Duration(cfg.TTLSeconds)*time.Second)
}

// Key identifies one version of a stored document.
func Key(bucket, object, etag string) string {
	return bucket + "/" + object + "@" + etag
}

// GetOrBuild returns the cached mapping for key, or builds and stores it.
// Concurrent callers for the same key share a single build. hit reports whether
// the mapping came from the cache.
func (c *MappingCache) GetOrBuild(key string, build func() (graph.NodeMapping, error)) (mapping graph.NodeMapping, hit bool, err error) {
	if c.ttl <= 0 {
		mapping, err = build()
		return mapping, false, err
	}

	if e, ok := c.entries.Get(key); ok && !c.expired(e) {
		return e.mapping, true, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Another caller may have stored it while we waited
		if e, ok := c.entries.Get(key); ok && !c.expired(e) {
			return e.mapping, nil
		}

		built, err := build()
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, entry{mapping: built, built: c.now()})
		return built, nil
	})
	if err != nil {
		return nil, false, err
	}

	return result.(graph.NodeMapping), false, nil
}

// Invalidate removes the mapping for key.
func (c *MappingCache) Invalidate(key string) {
	c.entries.Remove(key)
}

// Len returns the number of cached mappings, including expired ones not yet evicted.
func (c *MappingCache) Len() int {
	return c.entries.Len()
}

func (c *MappingCache) expired(e entry) bool {
	return c.now().Sub(e.built) > c.ttl
}
