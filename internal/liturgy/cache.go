package liturgy

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache stores resolved labels by key. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(key string) (string, bool)
	Add(key, value string)
}

// NewCache returns an unbounded cache when size is 0 and an LRU cache
// holding at most size entries otherwise.
func NewCache(size int) (Cache, error) {
	if size <= 0 {
		return &MapCache{}, nil
	}
	return NewLRUCache(size)
}

// MapCache is an append-only unbounded cache. Concurrent writers of the
// same key race and the last write wins; since values are deterministic the
// outcome is the same either way.
type MapCache struct {
	m sync.Map
}

// Get implements Cache.
func (c *MapCache) Get(key string) (string, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Add implements Cache.
func (c *MapCache) Add(key, value string) {
	c.m.Store(key, value)
}

// LRUCache evicts the least recently used label once full.
type LRUCache struct {
	c *lru.Cache[string, string]
}

// NewLRUCache creates an LRUCache holding at most size entries.
func NewLRUCache(size int) (*LRUCache, error) {
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{c: c}, nil
}

// Get implements Cache.
func (c *LRUCache) Get(key string) (string, bool) {
	return c.c.Get(key)
}

// Add implements Cache.
func (c *LRUCache) Add(key, value string) {
	c.c.Add(key, value)
}

// Len reports the number of cached entries.
func (c *LRUCache) Len() int {
	return c.c.Len()
}
