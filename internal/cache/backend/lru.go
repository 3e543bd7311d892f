package cachebackend

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU evicts the least recently used entry once size is reached.
type LRU struct {
	c *lru.Cache[string, any]
}

func NewLRU(size int) (*LRU, error) {
	c, err := lru.New[string, any](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}

	return &LRU{c: c}, nil
}

func (s *LRU) Get(key string) (any, error) {
	v, found := s.c.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	return v, nil
}

func (s *LRU) Set(key string, v any) error {
	s.c.Add(key, v)
	return nil
}

func (s *LRU) Len() int {
	return s.c.Len()
}
