package huffstat

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheKey identifies one analysis.  The length guards against digest
// collisions between inputs of different sizes.
type cacheKey struct {
	digest uint64
	length int
	mode   StripMode
}

func makeCacheKey(data []byte, mode StripMode) cacheKey {
	return cacheKey{
		digest: xxhash.Sum64(data),
		length: len(data),
		mode:   mode,
	}
}

// resultCache remembers recent Results.  A nil *resultCache is a valid cache
// that never hits.
type resultCache struct {
	lru *lru.Cache[cacheKey, *Result]
}

func newResultCache(size int) (*resultCache, error) {
	if size <= 0 {
		return nil, nil
	}
	c, err := lru.New[cacheKey, *Result](size)
	if err != nil {
		return nil, err
	}
	return &resultCache{lru: c}, nil
}

func (c *resultCache) Get(key cacheKey) (*Result, bool) {
	if c == nil {
		return nil, false
	}
	return c.lru.Get(key)
}

func (c *resultCache) Add(key cacheKey, result *Result) {
	if c == nil {
		return
	}
	c.lru.Add(key, result)
}

func (c *resultCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
