package handshake

import "fmt"

// DecodeError reports malformed or truncated wire bytes. Always fatal to the
// handshake.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "decode certificate verify: " + e.Reason
}

// SigningError reports that the private key could not produce a signature
// with the negotiated algorithm, even after the fallback re-encoding
// attempt. It is surfaced explicitly; an empty signature is never
// substituted.
type SigningError struct {
	Algorithm string
	Err       error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("sign transcript with %s: %v", e.Algorithm, e.Err)
}

func (e *SigningError) Unwrap() error { return e.Err }

// AuthenticationError reports that the peer's signature did not verify, or
// that verification itself failed. It carries the fatal alert the caller
// must raise toward the peer before aborting. Never retried: the same
// inputs cannot verify on a second attempt.
type AuthenticationError struct {
	Alert Alert
	Err   error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("certificate verify failed: %v (%s)", e.Err, e.Alert)
	}
	return fmt.Sprintf("certificate verify failed (%s)", e.Alert)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }
