package commands

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"certverify/internal/crypto"
	"certverify/internal/domain"
	"certverify/internal/handshake"
)

// inspect <message-file>: decode and print fields without verifying.
func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <message-file>",
		Short: "Decode an encoded message and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			msg, err := handshake.UnmarshalCertificateVerify(encoded, domain.PeerID(peer))
			if err != nil {
				return err
			}

			pair := msg.Algorithm()
			name, known := crypto.EngineName(pair)
			if !known {
				name = "unknown"
			}
			sig := msg.Signature()
			fmt.Printf("Algorithm: %s (%s)\n", pair, name)
			fmt.Printf("Signature: %d bytes\n", len(sig))
			fmt.Printf("  %s\n", hex.EncodeToString(sig))
			fmt.Printf("Message length: %d bytes\n", msg.MessageLength())
			return nil
		},
	}
}
