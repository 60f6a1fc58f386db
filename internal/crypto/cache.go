package crypto

import (
	"crypto/rand"
	"io"
)

// EngineCache lazily creates and reuses engines and key factories, one per
// algorithm name. It is intentionally not safe for concurrent use: each
// worker owns one cache, so no engine instance is ever shared between two
// concurrent callers. Entries hold only memory and need no teardown.
type EngineCache struct {
	engines   map[string]Engine
	factories map[string]KeyFactory
}

// NewEngineCache returns an empty per-worker cache.
func NewEngineCache() *EngineCache {
	return &EngineCache{
		engines:   make(map[string]Engine),
		factories: make(map[string]KeyFactory),
	}
}

// Engine returns the cached engine for name, creating it on first use.
func (c *EngineCache) Engine(name string) (Engine, error) {
	if e, ok := c.engines[name]; ok {
		return e, nil
	}
	e, err := newEngine(name)
	if err != nil {
		return nil, err
	}
	c.engines[name] = e
	return e, nil
}

// KeyFactory returns the cached key factory for name, creating it on first
// use.
func (c *EngineCache) KeyFactory(name string) (KeyFactory, error) {
	if f, ok := c.factories[name]; ok {
		return f, nil
	}
	f, err := newKeyFactory(name)
	if err != nil {
		return nil, err
	}
	c.factories[name] = f
	return f, nil
}

// Random returns the secure random source used for signing. crypto/rand is
// safe for concurrent use, so one reader serves all workers.
func (c *EngineCache) Random() io.Reader { return rand.Reader }
