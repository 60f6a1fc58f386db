package handshake

import (
	stdcrypto "crypto"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"certverify/internal/crypto"
	"certverify/internal/domain"
)

var (
	// ErrUnknownAlgorithmPair reports an algorithm pair the registry cannot
	// resolve to an engine.
	ErrUnknownAlgorithmPair = errors.New("unknown algorithm pair")

	errNoFallback = errors.New("no fallback re-encoding for key")
)

// Signer produces transcript signatures for one worker. It draws engines
// from the worker's cache and, like the cache, must not be shared between
// concurrent callers.
type Signer struct {
	cache *crypto.EngineCache
	log   zerolog.Logger
}

// NewSigner wraps a per-worker engine cache. Pass zerolog.Nop() to silence
// trace output.
func NewSigner(cache *crypto.EngineCache, log zerolog.Logger) *Signer {
	return &Signer{cache: cache, log: log}
}

// SignTranscript signs the ordered transcript with key under the agreed
// algorithm pair. When the engine rejects the key's encoding but the key's
// native algorithm maps to a known standard name, the key is re-encoded
// through a key factory and initialization retried once. Every failure
// surfaces as *SigningError; an empty signature is never returned.
func (s *Signer) SignTranscript(key stdcrypto.PrivateKey, pair domain.AlgorithmPair, transcript domain.Transcript) (domain.SignatureBlob, error) {
	name, ok := crypto.EngineName(pair)
	if !ok {
		return nil, &SigningError{Algorithm: pair.String(), Err: ErrUnknownAlgorithmPair}
	}
	engine, err := s.cache.Engine(name)
	if err != nil {
		return nil, &SigningError{Algorithm: name, Err: err}
	}

	if initErr := engine.InitSign(key, s.cache.Random()); initErr != nil {
		// Only a key/engine encoding mismatch may fall back; an unsupported
		// algorithm must fail as-is.
		if !errors.Is(initErr, crypto.ErrKeyMismatch) {
			return nil, &SigningError{Algorithm: name, Err: initErr}
		}
		reKey, fbErr := s.fallbackKey(key)
		if fbErr != nil {
			return nil, &SigningError{Algorithm: name, Err: fmt.Errorf("%v; %w", initErr, fbErr)}
		}
		s.log.Debug().Str("engine", name).Msg("retrying signing init with re-encoded key")
		if retryErr := engine.InitSign(reKey, s.cache.Random()); retryErr != nil {
			return nil, &SigningError{Algorithm: name, Err: retryErr}
		}
	}

	for i, msg := range transcript {
		engine.Update(msg.Bytes())
		s.log.Trace().Int("index", i).Uint8("type", uint8(msg.Type())).Msg("signing transcript entry")
	}

	sig, err := engine.Sign()
	if err != nil {
		return nil, &SigningError{Algorithm: name, Err: err}
	}
	return sig, nil
}

// fallbackKey re-encodes key's raw native export through the key factory
// registered for its standard algorithm name.
func (s *Signer) fallbackKey(key stdcrypto.PrivateKey) (stdcrypto.PrivateKey, error) {
	name, ok := crypto.StandardAlgorithmName(key)
	if !ok {
		return nil, errNoFallback
	}
	factory, err := s.cache.KeyFactory(name)
	if err != nil {
		return nil, err
	}
	raw := key.(domain.RawPrivateKey)
	return factory.NewPrivateKey(raw.Bytes)
}
