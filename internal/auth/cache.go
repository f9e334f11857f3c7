package auth

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ghostcity-rp/companion/internal/domain"
)

// blockCache is an in-memory LRU over active IP blocks so an address
// hammering the login endpoint stops hitting the database on every
// attempt. Entries expire quickly; the database stays the source of
// truth and an unblock invalidates the entry immediately.
type blockCache struct {
	lru *expirable.LRU[string, *domain.IPBlock]
}

// newBlockCache creates a block cache.
// size: maximum number of cached addresses
// ttl: time-to-live for cached entries
func newBlockCache(size int, ttl time.Duration) *blockCache {
	return &blockCache{
		lru: expirable.NewLRU[string, *domain.IPBlock](size, nil, ttl),
	}
}

// Get returns the cached block for an address, dropping entries whose
// temporary block has already lapsed.
func (c *blockCache) Get(ip string, now time.Time) (*domain.IPBlock, bool) {
	block, found := c.lru.Get(ip)
	if !found {
		return nil, false
	}
	if !block.Blocked(now) {
		c.lru.Remove(ip)
		return nil, false
	}
	return block, true
}

// Set stores an active block for an address.
func (c *blockCache) Set(ip string, block *domain.IPBlock) {
	c.lru.Add(ip, block)
}

// Invalidate removes an address from the cache.
func (c *blockCache) Invalidate(ip string) {
	c.lru.Remove(ip)
}
