package cache

import (
	"errors"
	"fmt"

	cachebackend "txquery/internal/cache/backend"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache namespaces keys of a shared backend and counts lookups.
type Cache struct {
	prefix  string
	backend cachebackend.Backend
	hits    prometheus.Counter
	misses  prometheus.Counter
}

func NewCache(prefix string, backend cachebackend.Backend) *Cache {
	return &Cache{prefix: prefix, backend: backend}
}

// RegisterMetrics attaches hit and miss counters.
func (c *Cache) RegisterMetrics(hits, misses prometheus.Counter) {
	c.hits = hits
	c.misses = misses
}

func (c *Cache) key(key string) string {
	return fmt.Sprintf("%s-%s", c.prefix, key)
}

func (c *Cache) Get(key string) (any, error) {
	v, err := c.backend.Get(c.key(key))
	if err != nil {
		if errors.Is(err, cachebackend.ErrCacheMiss) && c.misses != nil {
			c.misses.Inc()
		}
		return nil, err
	}

	if c.hits != nil {
		c.hits.Inc()
	}
	return v, nil
}

func (c *Cache) Set(key string, v any) error {
	return c.backend.Set(c.key(key), v)
}

// Len is the number of entries held by the backend, across all prefixes.
func (c *Cache) Len() int {
	return c.backend.Len()
}
