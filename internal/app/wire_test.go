package app_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certverify/internal/app"
	"certverify/internal/domain"
	"certverify/internal/handshake"
)

func TestNewWire_SignsAndVerifies(t *testing.T) {
	w := app.NewWire(app.Config{})
	require.NotNil(t, w.Cache)
	require.NotNil(t, w.Signer)
	require.NotNil(t, w.Verifier)

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	pair := domain.AlgorithmPair{Hash: domain.HashIntrinsic, Signature: domain.SignatureEd25519}
	ts := domain.Transcript{domain.RawMessage{MsgType: domain.TypeClientHello, Body: []byte("hi")}}

	msg, err := handshake.NewCertificateVerify(w.Signer, priv, pair, ts, "peer")
	require.NoError(t, err)
	require.NoError(t, w.Verifier.Verify(pub, msg, ts))
}

func TestNewWire_CachesArePerWire(t *testing.T) {
	a := app.NewWire(app.Config{})
	b := app.NewWire(app.Config{})
	assert.NotSame(t, a.Cache, b.Cache)
}
