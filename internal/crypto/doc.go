// Package crypto holds the signature machinery behind the CertificateVerify
// handshake message.
//
// Contents
//
//   - Algorithm registry mapping (hash, signature) wire codes to engine
//     names (EngineName, KnownPairs)
//   - Stateful signature engines for Ed25519, ECDSA (NIST and secp256k1
//     curves) and RSA PKCS#1 v1.5 (Engine, newEngine)
//   - Key factories that re-encode private keys arriving in non-standard
//     encodings (KeyFactory, StandardAlgorithmName)
//   - A per-worker cache of engines and key factories (EngineCache)
//
// # Notes
//
// Engines and key factories are stateful and not safe for concurrent use.
// Each worker owns its EngineCache; instances are created lazily per
// algorithm name and reused for the worker's lifetime. The secure random
// source exposed by the cache is crypto/rand and is safe to share.
package crypto
