package handshake

import (
	stdcrypto "crypto"
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"certverify/internal/domain"
)

// certificateVerifyHeaderLen covers the algorithm pair (2 bytes) and the
// signature length field (2 bytes), RFC 5246 section 7.4.8.
const certificateVerifyHeaderLen = 4

// CertificateVerify proves possession of the private key behind a
// previously presented certificate. It is immutable once built, either by
// signing a transcript or by decoding wire bytes.
type CertificateVerify struct {
	algorithm domain.AlgorithmPair
	signature domain.SignatureBlob
	peer      domain.PeerID
}

// NewCertificateVerify signs the transcript with key and wraps the result.
// The algorithm pair must already be agreed between the peers. Signing
// failures surface as *SigningError.
func NewCertificateVerify(s *Signer, key stdcrypto.PrivateKey, pair domain.AlgorithmPair, transcript domain.Transcript, peer domain.PeerID) (*CertificateVerify, error) {
	sig, err := s.SignTranscript(key, pair, transcript)
	if err != nil {
		return nil, err
	}
	return &CertificateVerify{algorithm: pair, signature: sig, peer: peer}, nil
}

// UnmarshalCertificateVerify decodes the exact byte window outer framing
// allotted to this message. The algorithm pair is not validated against the
// registry here; unknown pairs fail later, at verification. Truncated or
// oversized input fails with *DecodeError.
func UnmarshalCertificateVerify(b []byte, peer domain.PeerID) (*CertificateVerify, error) {
	s := cryptobyte.String(b)

	var hashID, sigID uint8
	var sigLen uint16
	if !s.ReadUint8(&hashID) || !s.ReadUint8(&sigID) || !s.ReadUint16(&sigLen) {
		return nil, &DecodeError{Reason: "message truncated inside header"}
	}

	var sig []byte
	if !s.ReadBytes(&sig, int(sigLen)) {
		return nil, &DecodeError{Reason: fmt.Sprintf("declared signature length %d exceeds %d remaining bytes", sigLen, len(s))}
	}
	if !s.Empty() {
		return nil, &DecodeError{Reason: fmt.Sprintf("%d trailing bytes after signature", len(s))}
	}

	return &CertificateVerify{
		algorithm: domain.AlgorithmPair{
			Hash:      domain.HashAlgorithm(hashID),
			Signature: domain.SignatureAlgorithm(sigID),
		},
		signature: domain.SignatureBlob(sig).Clone(),
		peer:      peer,
	}, nil
}

// Marshal encodes the message: hash id (8 bits), signature id (8 bits),
// signature length (16 bits big-endian), signature bytes.
func (m *CertificateVerify) Marshal() ([]byte, error) {
	if len(m.signature) > domain.MaxSignatureLen {
		return nil, fmt.Errorf("signature length %d exceeds 16-bit field", len(m.signature))
	}
	var b cryptobyte.Builder
	b.AddUint8(uint8(m.algorithm.Hash))
	b.AddUint8(uint8(m.algorithm.Signature))
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(m.signature)
	})
	return b.Bytes()
}

// Type implements domain.HandshakeMessage.
func (m *CertificateVerify) Type() domain.HandshakeType {
	return domain.TypeCertificateVerify
}

// Bytes implements domain.HandshakeMessage. A value built by signing or
// decoding always marshals cleanly, so the error path is unreachable.
func (m *CertificateVerify) Bytes() []byte {
	out, err := m.Marshal()
	if err != nil {
		panic(fmt.Sprintf("marshal certificate verify: %v", err))
	}
	return out
}

// MessageLength returns the encoded size, used by outer framing to size
// headers before fragmentation.
func (m *CertificateVerify) MessageLength() int {
	return certificateVerifyHeaderLen + len(m.signature)
}

// Algorithm returns the agreed algorithm pair.
func (m *CertificateVerify) Algorithm() domain.AlgorithmPair { return m.algorithm }

// Signature returns a copy of the signature blob.
func (m *CertificateVerify) Signature() domain.SignatureBlob { return m.signature.Clone() }

// Peer returns the opaque peer identifier this message is associated with.
func (m *CertificateVerify) Peer() domain.PeerID { return m.peer }
