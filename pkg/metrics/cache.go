package metrics

import "sync/atomic"

// CacheMetric counts hits and misses for one cache.
type CacheMetric struct {
	name   string
	hits   int64
	misses int64
}

func newCacheMetric(name string) *CacheMetric {
	return &CacheMetric{name: name}
}

// Hit records a cache hit.
func (c *CacheMetric) Hit() {
	if enabled {
		atomic.AddInt64(&c.hits, 1)
	}
}

// Miss records a cache miss.
func (c *CacheMetric) Miss() {
	if enabled {
		atomic.AddInt64(&c.misses, 1)
	}
}

// Name returns the metric name.
func (c *CacheMetric) Name() string { return c.name }

// Stats returns a snapshot.
func (c *CacheMetric) Stats() CacheStats {
	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return CacheStats{Name: c.name, Hits: hits, Misses: misses, HitRate: rate}
}

// Reset clears the counters.
func (c *CacheMetric) Reset() {
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
}

// CacheStats is a snapshot of a cache's hit rate.
type CacheStats struct {
	Name    string  `json:"name"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// SlideCache tracks the rendered-slide cache.
var SlideCache = newCacheMetric("slide_cache")

// AllCacheMetrics returns all registered cache metrics.
func AllCacheMetrics() []*CacheMetric {
	return []*CacheMetric{SlideCache}
}

// AllCacheStats returns stats for caches that saw traffic.
func AllCacheStats() []CacheStats {
	var out []CacheStats
	for _, c := range AllCacheMetrics() {
		if s := c.Stats(); s.Hits+s.Misses > 0 {
			out = append(out, s)
		}
	}
	return out
}
