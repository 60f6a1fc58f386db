package crypto

import "certverify/internal/domain"

// Engine names resolvable from an AlgorithmPair.
const (
	NameEd25519     = "Ed25519"
	NameECDSASHA256 = "ECDSA-SHA256"
	NameECDSASHA384 = "ECDSA-SHA384"
	NameECDSASHA512 = "ECDSA-SHA512"
	NameRSASHA256   = "RSA-SHA256"
	NameRSASHA384   = "RSA-SHA384"
	NameRSASHA512   = "RSA-SHA512"
)

var engineNames = map[domain.AlgorithmPair]string{
	{Hash: domain.HashIntrinsic, Signature: domain.SignatureEd25519}: NameEd25519,
	{Hash: domain.HashSHA256, Signature: domain.SignatureECDSA}:      NameECDSASHA256,
	{Hash: domain.HashSHA384, Signature: domain.SignatureECDSA}:      NameECDSASHA384,
	{Hash: domain.HashSHA512, Signature: domain.SignatureECDSA}:      NameECDSASHA512,
	{Hash: domain.HashSHA256, Signature: domain.SignatureRSA}:        NameRSASHA256,
	{Hash: domain.HashSHA384, Signature: domain.SignatureRSA}:        NameRSASHA384,
	{Hash: domain.HashSHA512, Signature: domain.SignatureRSA}:        NameRSASHA512,
}

// EngineName resolves a wire algorithm pair to a concrete engine name.
// Unknown pairs report ok == false; they remain representable on the wire
// but cannot sign or verify.
func EngineName(p domain.AlgorithmPair) (name string, ok bool) {
	name, ok = engineNames[p]
	return name, ok
}

// KnownPairs lists every algorithm pair the registry resolves. The slice is
// freshly allocated per call.
func KnownPairs() []domain.AlgorithmPair {
	out := make([]domain.AlgorithmPair, 0, len(engineNames))
	for p := range engineNames {
		out = append(out, p)
	}
	return out
}
