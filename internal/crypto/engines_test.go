package crypto

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certverify/internal/domain"
)

func signAndVerify(t *testing.T, e Engine, priv any, pub any, msg []byte) domain.SignatureBlob {
	t.Helper()
	require.NoError(t, e.InitSign(priv, rand.Reader))
	e.Update(msg)
	sig, err := e.Sign()
	require.NoError(t, err)
	require.NotEmpty(t, sig)

	require.NoError(t, e.InitVerify(pub))
	e.Update(msg)
	require.True(t, e.Verify(sig))
	return sig
}

func TestEd25519Engine_SignVerify(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	e, err := newEngine(NameEd25519)
	require.NoError(t, err)
	signAndVerify(t, e, priv, pub, []byte("client hello bytes"))
}

func TestECDSAEngine_SignVerify_NISTCurves(t *testing.T) {
	for _, name := range []string{NameECDSASHA256, NameECDSASHA384, NameECDSASHA512} {
		priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)

		e, err := newEngine(name)
		require.NoError(t, err)
		signAndVerify(t, e, priv, &priv.PublicKey, []byte("transcript"))
	}
}

func TestECDSAEngine_SignVerify_Secp256k1(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	e, err := newEngine(NameECDSASHA256)
	require.NoError(t, err)
	signAndVerify(t, e, priv, priv.PubKey(), []byte("transcript"))
}

func TestRSAEngine_SignVerify(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	e, err := newEngine(NameRSASHA256)
	require.NoError(t, err)
	signAndVerify(t, e, priv, &priv.PublicKey, []byte("transcript"))
}

func TestEngine_InitResetsState(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	e, err := newEngine(NameEd25519)
	require.NoError(t, err)

	// First operation leaves buffered data behind; the second must not see it.
	require.NoError(t, e.InitSign(priv, rand.Reader))
	e.Update([]byte("first"))
	_, err = e.Sign()
	require.NoError(t, err)

	require.NoError(t, e.InitSign(priv, rand.Reader))
	e.Update([]byte("second"))
	sig, err := e.Sign()
	require.NoError(t, err)

	require.NoError(t, e.InitVerify(pub))
	e.Update([]byte("second"))
	assert.True(t, e.Verify(sig))
}

func TestEngine_RejectsMismatchedKeyEncoding(t *testing.T) {
	e, err := newEngine(NameEd25519)
	require.NoError(t, err)

	raw := domain.RawPrivateKey{Alg: "EdDSA", Bytes: make([]byte, ed25519.SeedSize)}
	err = e.InitSign(raw, rand.Reader)
	require.ErrorIs(t, err, ErrKeyMismatch)

	_, err = e.Sign()
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestStandardAlgorithmName(t *testing.T) {
	for _, alg := range []string{"Ed25519", "EdDSA", "1.3.101.112"} {
		name, ok := StandardAlgorithmName(domain.RawPrivateKey{Alg: alg})
		require.True(t, ok, "alg %s", alg)
		assert.Equal(t, NameEd25519, name)
	}

	_, ok := StandardAlgorithmName(domain.RawPrivateKey{Alg: "ML-DSA-44"})
	assert.False(t, ok)

	// Typed keys never need a fallback mapping.
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	_, ok = StandardAlgorithmName(priv)
	assert.False(t, ok)
}

func TestEd25519KeyFactory_Reencode(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	f, err := newKeyFactory(NameEd25519)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  []byte
	}{
		{"seed", priv.Seed()},
		{"expanded", priv},
		{"pkcs8", der},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := f.NewPrivateKey(tt.raw)
			require.NoError(t, err)
			got, ok := key.(ed25519.PrivateKey)
			require.True(t, ok)
			assert.Equal(t, pub, got.Public())
		})
	}
}

func TestEd25519KeyFactory_RejectsGarbage(t *testing.T) {
	f, err := newKeyFactory(NameEd25519)
	require.NoError(t, err)

	_, err = f.NewPrivateKey([]byte("not a key"))
	require.Error(t, err)

	// PKCS#8 wrapping a non-Ed25519 key must be rejected too.
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(ecKey)
	require.NoError(t, err)
	_, err = f.NewPrivateKey(der)
	require.Error(t, err)
}
