package keystore_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"

	"certverify/internal/keystore"
)

func TestEd25519_SaveLoad_OK(t *testing.T) {
	dir := t.TempDir()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	privPath := filepath.Join(dir, "id.key")
	pubPath := filepath.Join(dir, "id.pub")
	if err := keystore.SavePrivateKey(privPath, priv); err != nil {
		t.Fatalf("save private: %v", err)
	}
	if err := keystore.SavePublicKey(pubPath, pub); err != nil {
		t.Fatalf("save public: %v", err)
	}

	gotPriv, err := keystore.LoadPrivateKey(privPath)
	if err != nil {
		t.Fatalf("load private: %v", err)
	}
	if !priv.Equal(gotPriv.(ed25519.PrivateKey)) {
		t.Fatal("private key mismatch after load")
	}
	gotPub, err := keystore.LoadPublicKey(pubPath)
	if err != nil {
		t.Fatalf("load public: %v", err)
	}
	if !pub.Equal(gotPub.(ed25519.PublicKey)) {
		t.Fatal("public key mismatch after load")
	}
}

func TestECDSA_SaveLoad_OK(t *testing.T) {
	dir := t.TempDir()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	path := filepath.Join(dir, "ec.key")
	if err := keystore.SavePrivateKey(path, priv); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := keystore.LoadPrivateKey(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !priv.Equal(got.(*ecdsa.PrivateKey)) {
		t.Fatal("key mismatch after load")
	}
}

func TestSecp256k1_SaveLoad_OK(t *testing.T) {
	dir := t.TempDir()
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	privPath := filepath.Join(dir, "k.key")
	pubPath := filepath.Join(dir, "k.pub")
	if err := keystore.SavePrivateKey(privPath, priv); err != nil {
		t.Fatalf("save private: %v", err)
	}
	if err := keystore.SavePublicKey(pubPath, priv.PubKey()); err != nil {
		t.Fatalf("save public: %v", err)
	}

	gotPriv, err := keystore.LoadPrivateKey(privPath)
	if err != nil {
		t.Fatalf("load private: %v", err)
	}
	if !bytes.Equal(priv.Serialize(), gotPriv.(*btcec.PrivateKey).Serialize()) {
		t.Fatal("private key mismatch after load")
	}
	gotPub, err := keystore.LoadPublicKey(pubPath)
	if err != nil {
		t.Fatalf("load public: %v", err)
	}
	if !priv.PubKey().IsEqual(gotPub.(*btcec.PublicKey)) {
		t.Fatal("public key mismatch after load")
	}
}

func TestLoad_RejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.key")
	if err := os.WriteFile(path, []byte("not pem at all"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := keystore.LoadPrivateKey(path); err == nil {
		t.Fatal("expected error for non-PEM input")
	}
}

func TestFingerprint_StablePerKey(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	fp1, err := keystore.Fingerprint(pub)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	fp2, err := keystore.Fingerprint(pub)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if fp1 != fp2 || len(fp1) != 20 {
		t.Fatalf("unstable or malformed fingerprint: %q %q", fp1, fp2)
	}

	other, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	fp3, err := keystore.Fingerprint(other)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if fp1 == fp3 {
		t.Fatal("distinct keys share a fingerprint")
	}
}
