package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"certverify/internal/app"
	"certverify/internal/domain"
)

var (
	verbose bool
	peer    string
	appCtx  *app.Wire
)

// algorithmPairs maps the CLI algorithm names to wire code pairs.
var algorithmPairs = map[string]domain.AlgorithmPair{
	"ed25519":      {Hash: domain.HashIntrinsic, Signature: domain.SignatureEd25519},
	"ecdsa-sha256": {Hash: domain.HashSHA256, Signature: domain.SignatureECDSA},
	"ecdsa-sha384": {Hash: domain.HashSHA384, Signature: domain.SignatureECDSA},
	"ecdsa-sha512": {Hash: domain.HashSHA512, Signature: domain.SignatureECDSA},
	"rsa-sha256":   {Hash: domain.HashSHA256, Signature: domain.SignatureRSA},
	"rsa-sha384":   {Hash: domain.HashSHA384, Signature: domain.SignatureRSA},
	"rsa-sha512":   {Hash: domain.HashSHA512, Signature: domain.SignatureRSA},
}

func Execute() error {
	root := &cobra.Command{
		Use:   "certverify",
		Short: "Sign and verify handshake transcripts (CertificateVerify)",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.TraceLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
			appCtx = app.NewWire(app.Config{Logger: log})
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace per-entry transcript logging")
	root.PersistentFlags().StringVar(&peer, "peer", "", "opaque peer identifier attached to messages")

	root.AddCommand(keygenCmd(), signCmd(), verifyCmd(), inspectCmd())
	return root.Execute()
}

// lookupPair resolves a CLI algorithm name to its wire code pair.
func lookupPair(name string) (domain.AlgorithmPair, error) {
	pair, ok := algorithmPairs[name]
	if !ok {
		return domain.AlgorithmPair{}, fmt.Errorf("unknown algorithm %q", name)
	}
	return pair, nil
}

// readTranscript loads each path as one transcript entry, in argument order.
func readTranscript(paths []string) (domain.Transcript, error) {
	ts := make(domain.Transcript, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		ts = append(ts, domain.RawMessage{Body: b})
	}
	return ts, nil
}
