package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"certverify/internal/domain"
	"certverify/internal/handshake"
	"certverify/internal/keystore"
)

// verify --pub k.pub --message msg.bin entry1 [entry2 ...]
func verifyCmd() *cobra.Command {
	var (
		pubPath string
		msgPath string
	)
	cmd := &cobra.Command{
		Use:   "verify <transcript-file>...",
		Short: "Check an encoded message against a transcript and public key",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := keystore.LoadPublicKey(pubPath)
			if err != nil {
				return err
			}
			encoded, err := os.ReadFile(msgPath)
			if err != nil {
				return err
			}
			msg, err := handshake.UnmarshalCertificateVerify(encoded, domain.PeerID(peer))
			if err != nil {
				return err
			}
			ts, err := readTranscript(args)
			if err != nil {
				return err
			}

			if err := appCtx.Verifier.Verify(pub, msg, ts); err != nil {
				var authErr *handshake.AuthenticationError
				if errors.As(err, &authErr) {
					return fmt.Errorf("verification failed, connection must abort: %s", authErr.Alert)
				}
				return err
			}
			fmt.Println("Signature verified.")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubPath, "pub", "", "public key PEM file")
	cmd.Flags().StringVar(&msgPath, "message", "", "encoded certificate verify message")
	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
