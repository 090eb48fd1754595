package tenant

import (
	"context"
	"sync"
	"time"
)

// Cache stores validated tenant records keyed by tenant id. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (*Record, bool)
	Set(ctx context.Context, key string, rec *Record, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Close() error
}

// DefaultCacheSize is the default maximum number of cached records.
const DefaultCacheSize = 1000

// inMemoryCache is a bounded TTL cache with LRU eviction and a background
// sweeper for expired entries.
type inMemoryCache struct {
	mu      sync.Mutex
	items   map[string]cacheItem
	lru     []string
	maxSize int
	stop    chan struct{}
	done    chan struct{}
	closed  bool
}

type cacheItem struct {
	rec       *Record
	expiresAt time.Time
}

// NewInMemoryCache creates an in-memory cache with the default size limit.
func NewInMemoryCache() Cache {
	return NewInMemoryCacheWithSize(DefaultCacheSize)
}

// NewInMemoryCacheWithSize creates an in-memory cache bounded to maxSize entries.
func NewInMemoryCacheWithSize(maxSize int) Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	c := &inMemoryCache{
		items:   make(map[string]cacheItem),
		lru:     make([]string, 0, maxSize),
		maxSize: maxSize,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go c.sweep()
	return c
}

func (c *inMemoryCache) Get(_ context.Context, key string) (*Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(item.expiresAt) {
		delete(c.items, key)
		c.removeLRU(key)
		return nil, false
	}
	c.touchLRU(key)
	return item.rec, true
}

func (c *inMemoryCache) Set(_ context.Context, key string, rec *Record, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxSize && len(c.lru) > 0 {
		oldest := c.lru[0]
		c.lru = c.lru[1:]
		delete(c.items, oldest)
	}
	c.items[key] = cacheItem{rec: rec, expiresAt: time.Now().Add(ttl)}
	c.touchLRU(key)
}

func (c *inMemoryCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	c.removeLRU(key)
}

func (c *inMemoryCache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.stop)
	<-c.done
	return nil
}

func (c *inMemoryCache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	defer close(c.done)

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, item := range c.items {
				if now.After(item.expiresAt) {
					delete(c.items, key)
					c.removeLRU(key)
				}
			}
			c.mu.Unlock()
		case <-c.stop:
			return
		}
	}
}

func (c *inMemoryCache) touchLRU(key string) {
	c.removeLRU(key)
	c.lru = append(c.lru, key)
}

func (c *inMemoryCache) removeLRU(key string) {
	for i, k := range c.lru {
		if k == key {
			c.lru = append(c.lru[:i], c.lru[i+1:]...)
			return
		}
	}
}
