// Package keystore persists signing keys as PEM files for the CLI. Private
// keys are written atomically with owner-only permissions.
package keystore

import (
	stdcrypto "crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcec/v2"

	"certverify/internal/util/memzero"
)

// PEM block types. secp256k1 keys have no PKCS#8 encoding in crypto/x509,
// so they get their own block type carrying the raw scalar or compressed
// point.
const (
	blockPrivate          = "PRIVATE KEY"
	blockPublic           = "PUBLIC KEY"
	blockSecp256k1Private = "SECP256K1 PRIVATE KEY"
	blockSecp256k1Public  = "SECP256K1 PUBLIC KEY"
)

var errUnknownBlock = errors.New("unrecognized PEM block")

// SavePrivateKey writes key to path as PEM, mode 0600.
func SavePrivateKey(path string, key stdcrypto.PrivateKey) error {
	var block pem.Block
	switch k := key.(type) {
	case *btcec.PrivateKey:
		block = pem.Block{Type: blockSecp256k1Private, Bytes: k.Serialize()}
	case ed25519.PrivateKey, *ecdsa.PrivateKey, *rsa.PrivateKey:
		der, err := x509.MarshalPKCS8PrivateKey(k)
		if err != nil {
			return fmt.Errorf("encode private key: %w", err)
		}
		block = pem.Block{Type: blockPrivate, Bytes: der}
	default:
		return fmt.Errorf("encode private key: unsupported type %T", key)
	}
	defer memzero.Zero(block.Bytes)
	return writeFile(path, pem.EncodeToMemory(&block), 0o600)
}

// LoadPrivateKey reads a PEM private key written by SavePrivateKey.
func LoadPrivateKey(path string) (stdcrypto.PrivateKey, error) {
	block, err := readBlock(path)
	if err != nil {
		return nil, err
	}
	switch block.Type {
	case blockSecp256k1Private:
		priv, _ := btcec.PrivKeyFromBytes(block.Bytes)
		return priv, nil
	case blockPrivate:
		return x509.ParsePKCS8PrivateKey(block.Bytes)
	}
	return nil, fmt.Errorf("%w: %q", errUnknownBlock, block.Type)
}

// SavePublicKey writes pub to path as PEM, mode 0644.
func SavePublicKey(path string, pub stdcrypto.PublicKey) error {
	var block pem.Block
	switch k := pub.(type) {
	case *btcec.PublicKey:
		block = pem.Block{Type: blockSecp256k1Public, Bytes: k.SerializeCompressed()}
	default:
		der, err := x509.MarshalPKIXPublicKey(k)
		if err != nil {
			return fmt.Errorf("encode public key: %w", err)
		}
		block = pem.Block{Type: blockPublic, Bytes: der}
	}
	return writeFile(path, pem.EncodeToMemory(&block), 0o644)
}

// LoadPublicKey reads a PEM public key written by SavePublicKey.
func LoadPublicKey(path string) (stdcrypto.PublicKey, error) {
	block, err := readBlock(path)
	if err != nil {
		return nil, err
	}
	switch block.Type {
	case blockSecp256k1Public:
		return btcec.ParsePubKey(block.Bytes)
	case blockPublic:
		return x509.ParsePKIXPublicKey(block.Bytes)
	}
	return nil, fmt.Errorf("%w: %q", errUnknownBlock, block.Type)
}

// Fingerprint returns a short hex fingerprint of a public key's encoded
// form for display and logs.
func Fingerprint(pub stdcrypto.PublicKey) (string, error) {
	var encoded []byte
	switch k := pub.(type) {
	case *btcec.PublicKey:
		encoded = k.SerializeCompressed()
	default:
		der, err := x509.MarshalPKIXPublicKey(k)
		if err != nil {
			return "", err
		}
		encoded = der
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:10]), nil
}

func readBlock(path string) (*pem.Block, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(b)
	if block == nil {
		return nil, fmt.Errorf("%s: no PEM block found", path)
	}
	return block, nil
}

// writeFile writes bytes via a temp file, then atomically replaces the
// target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
