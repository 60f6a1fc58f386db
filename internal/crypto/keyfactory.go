package crypto

import (
	stdcrypto "crypto"
	"crypto/ed25519"
	"crypto/x509"
	"errors"
	"fmt"

	"certverify/internal/domain"
)

// ErrUnknownKeyAlgorithm reports a native key algorithm with no factory.
var ErrUnknownKeyAlgorithm = errors.New("no key factory for algorithm")

// KeyFactory re-encodes a private key's raw native export into a typed key
// an engine accepts. Factories are stateless today but cached like engines
// so the construction discipline stays uniform.
type KeyFactory interface {
	Name() string
	NewPrivateKey(raw []byte) (stdcrypto.PrivateKey, error)
}

// StandardAlgorithmName maps a private key's native algorithm identifier to
// the standard name a key factory is registered under. It recognizes the
// spellings and the OID certificate layers use for Ed25519; keys of other
// families have no fallback and report ok == false.
func StandardAlgorithmName(key stdcrypto.PrivateKey) (name string, ok bool) {
	raw, isRaw := key.(domain.RawPrivateKey)
	if !isRaw {
		return "", false
	}
	switch raw.Alg {
	case "Ed25519", "EdDSA", "1.3.101.112":
		return NameEd25519, true
	}
	return "", false
}

// newKeyFactory builds the factory behind a standard algorithm name.
func newKeyFactory(name string) (KeyFactory, error) {
	switch name {
	case NameEd25519:
		return &ed25519KeyFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyAlgorithm, name)
	}
}

type ed25519KeyFactory struct{}

func (*ed25519KeyFactory) Name() string { return NameEd25519 }

// NewPrivateKey accepts a 32-byte seed, a 64-byte expanded key, or a PKCS#8
// DER structure wrapping an Ed25519 key.
func (*ed25519KeyFactory) NewPrivateKey(raw []byte) (stdcrypto.PrivateKey, error) {
	switch len(raw) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(append([]byte(nil), raw...)), nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("re-encode ed25519 key: %w", err)
	}
	priv, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("re-encode ed25519 key: PKCS#8 holds %T", parsed)
	}
	return priv, nil
}
