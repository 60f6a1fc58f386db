package crypto

import (
	"bytes"
	stdcrypto "crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	_ "crypto/sha256" // registers SHA-256 with crypto.Hash
	_ "crypto/sha512" // registers SHA-384 and SHA-512
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"certverify/internal/domain"
)

var (
	// ErrUnknownEngine reports an algorithm name no engine implements.
	ErrUnknownEngine = errors.New("no engine for algorithm name")

	// ErrKeyMismatch reports a key whose encoding the engine cannot use even
	// though the algorithm family may match. The signer may retry after
	// re-encoding the key; any other failure must not.
	ErrKeyMismatch = errors.New("key encoding incompatible with engine")

	// ErrNotInitialized reports Sign before a successful InitSign.
	ErrNotInitialized = errors.New("engine not initialized")
)

// Engine computes or checks one signature over a byte stream. Callers Init
// for the wanted direction, Update with each transcript entry in order, then
// Sign or Verify. Every Init resets accumulated state, so one instance
// serves any number of sequential operations. Instances are single-caller.
type Engine interface {
	Name() string
	InitSign(key stdcrypto.PrivateKey, random io.Reader) error
	InitVerify(key stdcrypto.PublicKey) error
	Update(p []byte)
	Sign() (domain.SignatureBlob, error)
	Verify(sig domain.SignatureBlob) bool
}

// newEngine builds the engine behind a registry name.
func newEngine(name string) (Engine, error) {
	switch name {
	case NameEd25519:
		return &ed25519Engine{}, nil
	case NameECDSASHA256:
		return &ecdsaEngine{name: name, hashID: stdcrypto.SHA256}, nil
	case NameECDSASHA384:
		return &ecdsaEngine{name: name, hashID: stdcrypto.SHA384}, nil
	case NameECDSASHA512:
		return &ecdsaEngine{name: name, hashID: stdcrypto.SHA512}, nil
	case NameRSASHA256:
		return &rsaEngine{name: name, hashID: stdcrypto.SHA256}, nil
	case NameRSASHA384:
		return &rsaEngine{name: name, hashID: stdcrypto.SHA384}, nil
	case NameRSASHA512:
		return &rsaEngine{name: name, hashID: stdcrypto.SHA512}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// ed25519Engine signs the full message stream; Ed25519 defines its own
// digest, so updates are buffered rather than hashed.
type ed25519Engine struct {
	buf  bytes.Buffer
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

func (e *ed25519Engine) Name() string { return NameEd25519 }

func (e *ed25519Engine) InitSign(key stdcrypto.PrivateKey, _ io.Reader) error {
	e.reset()
	priv, ok := key.(ed25519.PrivateKey)
	if !ok || len(priv) != ed25519.PrivateKeySize {
		return fmt.Errorf("%w: %T is not an ed25519.PrivateKey", ErrKeyMismatch, key)
	}
	e.priv = priv
	return nil
}

func (e *ed25519Engine) InitVerify(key stdcrypto.PublicKey) error {
	e.reset()
	pub, ok := key.(ed25519.PublicKey)
	if !ok || len(pub) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: %T is not an ed25519.PublicKey", ErrKeyMismatch, key)
	}
	e.pub = pub
	return nil
}

func (e *ed25519Engine) Update(p []byte) { e.buf.Write(p) }

func (e *ed25519Engine) Sign() (domain.SignatureBlob, error) {
	if e.priv == nil {
		return nil, ErrNotInitialized
	}
	return ed25519.Sign(e.priv, e.buf.Bytes()), nil
}

func (e *ed25519Engine) Verify(sig domain.SignatureBlob) bool {
	if e.pub == nil {
		return false
	}
	return ed25519.Verify(e.pub, e.buf.Bytes(), sig)
}

func (e *ed25519Engine) reset() {
	e.buf.Reset()
	e.priv = nil
	e.pub = nil
}

// ecdsaEngine covers the NIST curves through crypto/ecdsa and secp256k1
// through btcec. Signatures are ASN.1 DER in both cases.
type ecdsaEngine struct {
	name   string
	hashID stdcrypto.Hash
	digest hash.Hash
	random io.Reader

	priv  *ecdsa.PrivateKey
	kpriv *btcec.PrivateKey
	pub   *ecdsa.PublicKey
	kpub  *btcec.PublicKey
}

func (e *ecdsaEngine) Name() string { return e.name }

func (e *ecdsaEngine) InitSign(key stdcrypto.PrivateKey, random io.Reader) error {
	e.reset()
	switch k := key.(type) {
	case *ecdsa.PrivateKey:
		e.priv = k
	case *btcec.PrivateKey:
		e.kpriv = k
	default:
		return fmt.Errorf("%w: %T is not an ECDSA private key", ErrKeyMismatch, key)
	}
	e.random = random
	return nil
}

func (e *ecdsaEngine) InitVerify(key stdcrypto.PublicKey) error {
	e.reset()
	switch k := key.(type) {
	case *ecdsa.PublicKey:
		e.pub = k
	case *btcec.PublicKey:
		e.kpub = k
	default:
		return fmt.Errorf("%w: %T is not an ECDSA public key", ErrKeyMismatch, key)
	}
	return nil
}

func (e *ecdsaEngine) Update(p []byte) { e.digest.Write(p) }

func (e *ecdsaEngine) Sign() (domain.SignatureBlob, error) {
	switch {
	case e.kpriv != nil:
		return btcecdsa.Sign(e.kpriv, e.digest.Sum(nil)).Serialize(), nil
	case e.priv != nil:
		return ecdsa.SignASN1(e.random, e.priv, e.digest.Sum(nil))
	default:
		return nil, ErrNotInitialized
	}
}

func (e *ecdsaEngine) Verify(sig domain.SignatureBlob) bool {
	switch {
	case e.kpub != nil:
		parsed, err := btcecdsa.ParseDERSignature(sig)
		if err != nil {
			return false
		}
		return parsed.Verify(e.digest.Sum(nil), e.kpub)
	case e.pub != nil:
		return ecdsa.VerifyASN1(e.pub, e.digest.Sum(nil), sig)
	default:
		return false
	}
}

func (e *ecdsaEngine) reset() {
	e.digest = e.hashID.New()
	e.random = nil
	e.priv = nil
	e.kpriv = nil
	e.pub = nil
	e.kpub = nil
}

// rsaEngine signs with RSASSA-PKCS1-v1_5 over the configured digest.
type rsaEngine struct {
	name   string
	hashID stdcrypto.Hash
	digest hash.Hash
	random io.Reader

	priv *rsa.PrivateKey
	pub  *rsa.PublicKey
}

func (e *rsaEngine) Name() string { return e.name }

func (e *rsaEngine) InitSign(key stdcrypto.PrivateKey, random io.Reader) error {
	e.reset()
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return fmt.Errorf("%w: %T is not an *rsa.PrivateKey", ErrKeyMismatch, key)
	}
	e.priv = priv
	e.random = random
	return nil
}

func (e *rsaEngine) InitVerify(key stdcrypto.PublicKey) error {
	e.reset()
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return fmt.Errorf("%w: %T is not an *rsa.PublicKey", ErrKeyMismatch, key)
	}
	e.pub = pub
	return nil
}

func (e *rsaEngine) Update(p []byte) { e.digest.Write(p) }

func (e *rsaEngine) Sign() (domain.SignatureBlob, error) {
	if e.priv == nil {
		return nil, ErrNotInitialized
	}
	return rsa.SignPKCS1v15(e.random, e.priv, e.hashID, e.digest.Sum(nil))
}

func (e *rsaEngine) Verify(sig domain.SignatureBlob) bool {
	if e.pub == nil {
		return false
	}
	return rsa.VerifyPKCS1v15(e.pub, e.hashID, e.digest.Sum(nil), sig) == nil
}

func (e *rsaEngine) reset() {
	e.digest = e.hashID.New()
	e.random = nil
	e.priv = nil
	e.pub = nil
}
