package domain

// SignatureBlob is a variable-length signature, at most 65535 bytes so its
// length fits the 16-bit wire field.
type SignatureBlob []byte

// MaxSignatureLen is the largest signature the wire format can carry.
const MaxSignatureLen = 0xffff

// Clone returns an independent copy of the blob.
func (b SignatureBlob) Clone() SignatureBlob {
	if b == nil {
		return nil
	}
	out := make(SignatureBlob, len(b))
	copy(out, b)
	return out
}

// RawPrivateKey is a private key in its exported native encoding, as handed
// over by a certificate layer that could not produce a typed key. Alg is the
// key's native algorithm identifier (name or OID); Bytes is the raw export,
// e.g. an Ed25519 seed or a PKCS#8 DER structure. Engines reject it, and the
// signer's fallback path re-encodes it through a key factory.
type RawPrivateKey struct {
	Alg   string
	Bytes []byte
}
