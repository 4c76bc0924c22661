package llm

import (
	"sync"
	"time"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
)

// cachedAnswer is one validated classification kept for reuse.
type cachedAnswer struct {
	expiry    time.Time
	category  model.CategoryID
	rawAnswer string
}

// answerCache provides thread-safe caching of validated answers, keyed by the
// lot's normalized title. Auction sites repeat identical lot titles within a
// run; repeats skip the network call entirely.
type answerCache struct {
	entries map[string]cachedAnswer
	stopCh  chan struct{}
	ttl     time.Duration
	mu      sync.RWMutex
}

// newAnswerCache creates a new cache with the specified TTL.
func newAnswerCache(ttl time.Duration) *answerCache {
	if ttl == 0 {
		ttl = 15 * time.Minute
	}

	cache := &answerCache{
		entries: make(map[string]cachedAnswer),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	go cache.cleanup()

	return cache
}

// get retrieves an answer from the cache if it exists and hasn't expired.
func (c *answerCache) get(key string) (model.CategoryID, string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists || time.Now().After(entry.expiry) {
		return "", "", false
	}

	return entry.category, entry.rawAnswer, true
}

// set stores an answer in the cache.
func (c *answerCache) set(key string, category model.CategoryID, rawAnswer string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cachedAnswer{
		category:  category,
		rawAnswer: rawAnswer,
		expiry:    time.Now().Add(c.ttl),
	}
}

// cleanup periodically removes expired entries.
func (c *answerCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, entry := range c.entries {
				if now.After(entry.expiry) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

// size returns the number of entries in the cache.
func (c *answerCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the cleanup goroutine.
func (c *answerCache) Close() {
	close(c.stopCh)
}
