package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/rpgo/carlease-calculator/internal/calculation"
	"github.com/rpgo/carlease-calculator/internal/domain"
)

// CachedEngine memoizes projections. Results are pure functions of the
// input, slabs and perquisite rates, so they are safe to share. A cache
// failure is logged and the projection recomputed.
type CachedEngine struct {
	engine *calculation.Engine
	cache  Cache

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCachedEngine wraps engine with cache.
func NewCachedEngine(engine *calculation.Engine, cache Cache) *CachedEngine {
	return &CachedEngine{engine: engine, cache: cache}
}

// Engine returns the wrapped engine.
func (c *CachedEngine) Engine() *calculation.Engine { return c.engine }

// Stats returns the hit and miss counters.
func (c *CachedEngine) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Key returns the cache key for a projection request: the hex SHA-256 of
// its canonical JSON encoding.
func Key(in domain.ProjectionInput, slabs domain.SlabTable, perq domain.PerquisiteRates) (string, error) {
	payload := struct {
		Input      domain.ProjectionInput `json:"input"`
		Slabs      domain.SlabTable       `json:"slabs"`
		Perquisite domain.PerquisiteRates `json:"perquisite"`
	}{in, slabs, perq}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Project returns the cached projection or computes and stores it.
func (c *CachedEngine) Project(ctx context.Context, in domain.ProjectionInput, slabs domain.SlabTable) domain.ProjectionResult {
	log := c.engine.Logger
	if log == nil {
		log = calculation.NopLogger{}
	}

	key, err := Key(in, slabs, c.engine.Perquisite)
	if err != nil {
		log.Warnf("projection cache disabled for request: %v", err)
		c.misses.Add(1)
		return c.engine.Project(in, slabs)
	}

	if raw, ok, err := c.cache.Get(ctx, key); err != nil {
		log.Warnf("projection cache get failed: %v", err)
	} else if ok {
		var result domain.ProjectionResult
		if err := json.Unmarshal([]byte(raw), &result); err == nil {
			c.hits.Add(1)
			return result
		}
		log.Warnf("discarding undecodable cache entry %s", key[:12])
	}

	c.misses.Add(1)
	result := c.engine.Project(in, slabs)
	data, err := json.Marshal(result)
	if err != nil {
		log.Warnf("projection cache encode failed: %v", err)
		return result
	}
	if err := c.cache.Set(ctx, key, string(data)); err != nil {
		log.Warnf("projection cache set failed: %v", err)
	}
	return result
}
