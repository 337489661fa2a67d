package service

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ClaimCache holds poll results for claimed codes. A claimed link never
// changes until it is swept, so its status can be answered without a read.
// A nil *ClaimCache is valid and caches nothing.
type ClaimCache struct {
	lru *expirable.LRU[string, ClaimStatus]
}

// NewClaimCache returns a cache of at most size entries, each kept for ttl.
// A non-positive size or ttl disables caching.
func NewClaimCache(size int, ttl time.Duration) *ClaimCache {
	if size <= 0 || ttl <= 0 {
		return nil
	}
	return &ClaimCache{lru: expirable.NewLRU[string, ClaimStatus](size, nil, ttl)}
}

func (c *ClaimCache) Get(code string) (ClaimStatus, bool) {
	if c == nil {
		return ClaimStatus{}, false
	}
	return c.lru.Get(code)
}

func (c *ClaimCache) Add(code string, status ClaimStatus) {
	if c == nil || !status.Claimed {
		return
	}
	c.lru.Add(code, status)
}

func (c *ClaimCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
