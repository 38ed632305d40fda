package server

import (
	"sync"

	"github.com/zeebo/xxh3"

	"sqlforge/internal/dataset"
	"sqlforge/internal/schema"
)

// analysisCache memoizes upload analysis by content identity, so a client
// stepping through screens re-submitting the same file does not pay for
// re-parsing and re-inference every time. Entries are evicted oldest-first
// once the limit is reached; a miss only costs work, never correctness.
type analysisCache struct {
	mu      sync.Mutex
	entries map[uint64]analysis
	order   []uint64
	limit   int
}

type analysis struct {
	ds      dataset.Dataset
	reports []schema.ColumnReport
}

func newAnalysisCache(limit int) *analysisCache {
	return &analysisCache{entries: make(map[uint64]analysis), limit: limit}
}

// key derives the cache identity from the uploaded bytes and filename.
func (c *analysisCache) key(name string, content []byte) uint64 {
	return xxh3.Hash(content) ^ xxh3.HashString(name)
}

func (c *analysisCache) get(k uint64) (analysis, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.entries[k]
	return a, ok
}

func (c *analysisCache) put(k uint64, a analysis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[k]; ok {
		return
	}
	if len(c.order) >= c.limit {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}
	c.entries[k] = a
	c.order = append(c.order, k)
}
