package domain

import "fmt"

// HashAlgorithm is the registry code for a digest algorithm, one byte on the
// wire (RFC 5246 section 7.4.1.4.1).
type HashAlgorithm uint8

// SignatureAlgorithm is the registry code for a signature algorithm, one byte
// on the wire.
type SignatureAlgorithm uint8

// Hash algorithm codes. Intrinsic covers schemes such as Ed25519 that define
// their own digest (RFC 8422).
const (
	HashNone      HashAlgorithm = 0
	HashSHA256    HashAlgorithm = 4
	HashSHA384    HashAlgorithm = 5
	HashSHA512    HashAlgorithm = 6
	HashIntrinsic HashAlgorithm = 8
)

// Signature algorithm codes.
const (
	SignatureAnonymous SignatureAlgorithm = 0
	SignatureRSA       SignatureAlgorithm = 1
	SignatureECDSA     SignatureAlgorithm = 3
	SignatureEd25519   SignatureAlgorithm = 7
)

// AlgorithmPair is the (hash, signature) algorithm pair agreed for a
// handshake signature. Unknown codes stay representable so that decoding
// never rejects a pair; resolution happens at sign/verify time.
type AlgorithmPair struct {
	Hash      HashAlgorithm
	Signature SignatureAlgorithm
}

// String renders the pair as "hash(n)/signature(m)" for logs.
func (p AlgorithmPair) String() string {
	return fmt.Sprintf("hash(%d)/signature(%d)", p.Hash, p.Signature)
}
