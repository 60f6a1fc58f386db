// Package commands defines the certverify CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - keygen   Generate a signing key pair as PEM files
//   - sign     Sign a transcript and write the encoded message
//   - verify   Check an encoded message against a transcript and public key
//   - inspect  Decode an encoded message and print its fields
//
// # Implementation
//
// The root command builds a per-invocation app.Wire (engine cache, signer,
// verifier) before any subcommand runs. Transcript entries are given as file
// arguments; each file's bytes are one entry, in argument order.
package commands
