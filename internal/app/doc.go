// Package app wires the per-worker dependency graph (engine cache, signer,
// verifier) for callers such as the CLI.
package app
