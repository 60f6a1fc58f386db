package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"certverify/internal/domain"
	"certverify/internal/handshake"
	"certverify/internal/keystore"
)

// sign --key k.key --algo ed25519 --out msg.bin entry1 [entry2 ...]
func signCmd() *cobra.Command {
	var (
		keyPath string
		algo    string
		out     string
	)
	cmd := &cobra.Command{
		Use:   "sign <transcript-file>...",
		Short: "Sign a transcript and write the encoded message",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := lookupPair(algo)
			if err != nil {
				return err
			}
			key, err := keystore.LoadPrivateKey(keyPath)
			if err != nil {
				return err
			}
			ts, err := readTranscript(args)
			if err != nil {
				return err
			}

			msg, err := handshake.NewCertificateVerify(appCtx.Signer, key, pair, ts, domain.PeerID(peer))
			if err != nil {
				return err
			}
			encoded, err := msg.Marshal()
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, encoded, 0o644); err != nil {
				return err
			}
			fmt.Printf("Signed %d transcript entries, wrote %d bytes to %s\n", len(ts), len(encoded), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyPath, "key", "", "private key PEM file")
	cmd.Flags().StringVar(&algo, "algo", "ed25519", "algorithm pair name")
	cmd.Flags().StringVar(&out, "out", "certverify.msg", "output message file")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
