package cachebackend

import "errors"

var ErrCacheMiss = errors.New("cache item not found")

// Backend stores values under string keys. Get returns ErrCacheMiss for
// absent keys. Len reports the number of stored entries.
type Backend interface {
	Get(key string) (any, error)
	Set(key string, v any) error
	Len() int
}
