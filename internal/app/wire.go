package app

import (
	"github.com/rs/zerolog"

	"certverify/internal/crypto"
	"certverify/internal/handshake"
)

// Wire bundles the per-worker signing and verification context. Engines are
// cached per worker and never shared, so build one Wire per worker goroutine
// and keep it for the worker's lifetime.
type Wire struct {
	Cache    *crypto.EngineCache
	Signer   *handshake.Signer
	Verifier *handshake.Verifier
	Log      zerolog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	log := cfg.Logger
	cache := crypto.NewEngineCache()
	return &Wire{
		Cache:    cache,
		Signer:   handshake.NewSigner(cache, log),
		Verifier: handshake.NewVerifier(cache, log),
		Log:      log,
	}
}
