// Package cache provides an optional content-addressed cache for computed
// loan results. Correctness never depends on it: a miss simply means the
// engine recomputes.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/loanscope/loan-compare/internal/config"
	"github.com/loanscope/loan-compare/internal/engine"
)

// Cache is the storage contract: string keys to string values. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// Fingerprint derives the cache key for a scenario from its canonical JSON
// encoding. Identical scenarios always produce identical keys, matching the
// engine's determinism guarantee.
func Fingerprint(sc config.ScenarioConfig) string {
	payload, err := json.Marshal(sc)
	if err != nil {
		// ScenarioConfig contains only marshal-safe fields.
		return ""
	}
	sum := sha256.Sum256(payload)
	return "result:" + hex.EncodeToString(sum[:])
}

// ResultCache layers result encoding over a Cache.
type ResultCache struct {
	cache  Cache
	logger *zap.Logger
}

// NewResultCache creates a result cache over the given backend.
func NewResultCache(backend Cache, logger *zap.Logger) *ResultCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultCache{cache: backend, logger: logger}
}

// Lookup returns the cached result for a scenario, if present.
func (rc *ResultCache) Lookup(ctx context.Context, sc config.ScenarioConfig) (engine.Result, bool) {
	key := Fingerprint(sc)
	if key == "" {
		return engine.Result{}, false
	}

	payload, ok := rc.cache.Get(ctx, key)
	if !ok {
		return engine.Result{}, false
	}

	var result engine.Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		rc.logger.Warn(fmt.Sprintf("discarding undecodable cached result for %s", sc.Name),
			zap.String("op", "cache.Lookup"),
			zap.Error(err),
		)
		return engine.Result{}, false
	}
	return result, true
}

// Store caches a computed result under its scenario's fingerprint.
func (rc *ResultCache) Store(ctx context.Context, sc config.ScenarioConfig, result engine.Result) {
	key := Fingerprint(sc)
	if key == "" {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := rc.cache.Set(ctx, key, string(payload)); err != nil {
		rc.logger.Warn(fmt.Sprintf("failed to cache result for %s", sc.Name),
			zap.String("op", "cache.Store"),
			zap.Error(err),
		)
	}
}
