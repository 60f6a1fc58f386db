package domain

// HandshakeType identifies a handshake message on the wire
// (RFC 5246 section 7.4).
type HandshakeType uint8

const (
	TypeHelloRequest       HandshakeType = 0
	TypeClientHello        HandshakeType = 1
	TypeServerHello        HandshakeType = 2
	TypeCertificate        HandshakeType = 11
	TypeServerKeyExchange  HandshakeType = 12
	TypeCertificateRequest HandshakeType = 13
	TypeServerHelloDone    HandshakeType = 14
	TypeCertificateVerify  HandshakeType = 15
	TypeClientKeyExchange  HandshakeType = 16
	TypeFinished           HandshakeType = 20
)

// HandshakeMessage is one prior handshake message able to produce its
// canonical byte representation. Bytes must be deterministic; the same
// message always yields the same bytes.
type HandshakeMessage interface {
	Type() HandshakeType
	Bytes() []byte
}

// Transcript is the ordered sequence of handshake messages a signature is
// computed over. Order is part of what the signature attests to.
type Transcript []HandshakeMessage

// RawMessage wraps already-encoded handshake bytes for callers that hold the
// canonical representation but not a typed message.
type RawMessage struct {
	MsgType HandshakeType
	Body    []byte
}

func (m RawMessage) Type() HandshakeType { return m.MsgType }

func (m RawMessage) Bytes() []byte { return m.Body }

// PeerID is an opaque address or session identifier attached to a message
// for logging and routing. This module never interprets it.
type PeerID string

// String returns the string form of the peer identifier.
func (p PeerID) String() string { return string(p) }
