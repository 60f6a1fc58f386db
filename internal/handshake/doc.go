// Package handshake implements the CertificateVerify handshake message: the
// artifact a party signs over the ordered transcript of prior handshake
// messages to prove possession of its certificate's private key.
//
// Contents
//
//   - CertificateVerify value object with wire marshal/unmarshal
//     (NewCertificateVerify, UnmarshalCertificateVerify)
//   - Transcript signing with a fallback re-encoding path for private keys
//     in non-standard encodings (Signer)
//   - Transcript verification; any failure is fatal to the handshake
//     (Verifier)
//   - Fatal alert values carried by authentication failures (Alert)
//
// # Notes
//
// Signer and Verifier must see byte-identical, identically-ordered
// transcripts for verification to succeed; any added, removed, reordered or
// altered entry fails it. Both take their engines from a per-worker
// crypto.EngineCache and are single-caller like the cache itself.
package handshake
