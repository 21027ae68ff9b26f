package auth

import (
	"crypto/sha256"
	"sync"
	"time"
)

// purge threshold; the cache sweeps expired entries once it grows past
// this many tokens.
const cacheSweepSize = 1024

// claimCache memoizes tokens that already passed signature and claim
// checks, keyed by a digest of the raw token. It is the only
// process-wide state in the turn pipeline and must tolerate concurrent
// reads from in-flight turns. Entries expire with the token itself.
type claimCache struct {
	mu      sync.RWMutex
	entries map[[sha256.Size]byte]cacheEntry
}

type cacheEntry struct {
	identity Identity
	expires  time.Time
}

func newClaimCache() *claimCache {
	return &claimCache{entries: make(map[[sha256.Size]byte]cacheEntry)}
}

func (c *claimCache) get(token string, now time.Time) (Identity, bool) {
	key := sha256.Sum256([]byte(token))
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || now.After(entry.expires) {
		return Identity{}, false
	}
	return entry.identity, true
}

func (c *claimCache) put(token string, id Identity, expires time.Time) {
	key := sha256.Sum256([]byte(token))
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= cacheSweepSize {
		now := time.Now()
		for k, e := range c.entries {
			if now.After(e.expires) {
				delete(c.entries, k)
			}
		}
	}
	c.entries[key] = cacheEntry{identity: id, expires: expires}
}

// len reports the number of cached tokens, expired or not.
func (c *claimCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
