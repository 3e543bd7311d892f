package cachebackend

import (
	gocache "github.com/patrickmn/go-cache"
)

// GoCache keeps every entry for the lifetime of the process.
type GoCache struct {
	c *gocache.Cache
}

func NewGoCache() *GoCache {
	return &GoCache{c: gocache.New(gocache.NoExpiration, 0)}
}

func (s *GoCache) Get(key string) (any, error) {
	v, found := s.c.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	return v, nil
}

func (s *GoCache) Set(key string, v any) error {
	s.c.Set(key, v, gocache.NoExpiration)
	return nil
}

func (s *GoCache) Len() int {
	return s.c.ItemCount()
}
