package handshake

import (
	stdcrypto "crypto"
	"errors"

	"github.com/rs/zerolog"

	"certverify/internal/crypto"
	"certverify/internal/domain"
)

var errSignatureMismatch = errors.New("signature does not match transcript")

// Verifier checks transcript signatures for one worker, with the same
// single-caller discipline as Signer.
type Verifier struct {
	cache *crypto.EngineCache
	log   zerolog.Logger
}

// NewVerifier wraps a per-worker engine cache.
func NewVerifier(cache *crypto.EngineCache, log zerolog.Logger) *Verifier {
	return &Verifier{cache: cache, log: log}
}

// Verify checks msg's signature against the transcript using the peer's
// public key. Public keys interoperate directly with any conformant engine,
// so there is no fallback path. Any failure returns *AuthenticationError
// carrying a fatal handshake_failure alert; the caller must abort the
// connection.
func (v *Verifier) Verify(pub stdcrypto.PublicKey, msg *CertificateVerify, transcript domain.Transcript) error {
	fail := func(err error) error {
		return &AuthenticationError{
			Alert: FatalAlert(AlertHandshakeFailure, msg.Peer()),
			Err:   err,
		}
	}

	name, ok := crypto.EngineName(msg.Algorithm())
	if !ok {
		return fail(ErrUnknownAlgorithmPair)
	}
	engine, err := v.cache.Engine(name)
	if err != nil {
		return fail(err)
	}
	if err := engine.InitVerify(pub); err != nil {
		return fail(err)
	}

	for i, m := range transcript {
		engine.Update(m.Bytes())
		v.log.Trace().Int("index", i).Uint8("type", uint8(m.Type())).Msg("verifying transcript entry")
	}

	if !engine.Verify(msg.Signature()) {
		return fail(errSignatureMismatch)
	}
	return nil
}
