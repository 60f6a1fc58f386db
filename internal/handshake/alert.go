package handshake

import (
	"fmt"

	"certverify/internal/domain"
)

// AlertLevel is the severity of a protocol alert (RFC 5246 section 7.2).
type AlertLevel uint8

const (
	AlertLevelWarning AlertLevel = 1
	AlertLevelFatal   AlertLevel = 2
)

// AlertDescription identifies the alert condition.
type AlertDescription uint8

const (
	AlertCloseNotify      AlertDescription = 0
	AlertBadCertificate   AlertDescription = 42
	AlertHandshakeFailure AlertDescription = 40
	AlertDecodeError      AlertDescription = 50
	AlertDecryptError     AlertDescription = 51
	AlertInternalError    AlertDescription = 80
)

// Alert is the terminal protocol error signal a failure escalates to. The
// caller propagates it toward the peer and aborts the connection.
type Alert struct {
	Level       AlertLevel
	Description AlertDescription
	Peer        domain.PeerID
}

// FatalAlert builds a fatal alert for the given condition and peer.
func FatalAlert(desc AlertDescription, peer domain.PeerID) Alert {
	return Alert{Level: AlertLevelFatal, Description: desc, Peer: peer}
}

// IsFatal reports whether the alert aborts the connection.
func (a Alert) IsFatal() bool { return a.Level == AlertLevelFatal }

func (a Alert) String() string {
	return fmt.Sprintf("alert(level=%d, description=%d, peer=%s)", a.Level, a.Description, a.Peer)
}
