package embedding

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/metrics"
)

// CachingEncoder wraps an Encoder with a TTL cache keyed by the input text.
// Model inference dominates fallback latency, and repeated inputs (health
// probes, duplicated chat messages) are common, so even a short TTL pays off.
// Cached slices are shared; callers must not mutate returned vectors.
type CachingEncoder struct {
	inner domain.Encoder

	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	clock   clockwork.Clock
}

type cacheEntry struct {
	vector    []float64
	expiresAt time.Time
}

// NewCachingEncoder wraps inner with a TTL cache. The clock is injected so
// tests can drive expiry deterministically.
func NewCachingEncoder(inner domain.Encoder, ttl time.Duration, clock clockwork.Clock) *CachingEncoder {
	return &CachingEncoder{
		inner:   inner,
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Encode returns the cached vector for text when present and fresh,
// delegating to the wrapped encoder otherwise. Only successful encodings
// are cached.
func (c *CachingEncoder) Encode(ctx context.Context, text string) ([]float64, error) {
	c.mu.RLock()
	entry, ok := c.entries[text]
	c.mu.RUnlock()

	if ok && c.clock.Now().Before(entry.expiresAt) {
		metrics.EncoderCacheHits.Inc()
		return entry.vector, nil
	}
	metrics.EncoderCacheMisses.Inc()

	vec, err := c.inner.Encode(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[text] = cacheEntry{vector: vec, expiresAt: c.clock.Now().Add(c.ttl)}
	c.mu.Unlock()

	return vec, nil
}

// Size returns the current number of entries, including expired ones.
func (c *CachingEncoder) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// EvictExpired removes expired entries and returns how many were dropped.
func (c *CachingEncoder) EvictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	evicted := 0
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}

// StartEvictionTimer periodically evicts expired entries in the background.
// The returned stop function cleans up the goroutine.
func (c *CachingEncoder) StartEvictionTimer(interval time.Duration) func() {
	ticker := c.clock.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.Chan():
				c.EvictExpired()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}
