package commands

import (
	stdcrypto "crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/spf13/cobra"

	"certverify/internal/keystore"
)

func keygenCmd() *cobra.Command {
	var (
		algo string
		out  string
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a signing key pair as PEM files",
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, pub, err := generateKey(algo)
			if err != nil {
				return err
			}
			if err := keystore.SavePrivateKey(out+".key", priv); err != nil {
				return err
			}
			if err := keystore.SavePublicKey(out+".pub", pub); err != nil {
				return err
			}
			fp, err := keystore.Fingerprint(pub)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s.key and %s.pub\nFingerprint: %s\n", out, out, fp)
			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "ed25519", "key type: ed25519, ecdsa-p256, ecdsa-p384, secp256k1, rsa")
	cmd.Flags().StringVar(&out, "out", "certverify", "output path prefix")
	return cmd
}

func generateKey(algo string) (stdcrypto.PrivateKey, stdcrypto.PublicKey, error) {
	switch algo {
	case "ed25519":
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		return priv, pub, err
	case "ecdsa-p256":
		priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		if err != nil {
			return nil, nil, err
		}
		return priv, &priv.PublicKey, nil
	case "ecdsa-p384":
		priv, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
		if err != nil {
			return nil, nil, err
		}
		return priv, &priv.PublicKey, nil
	case "secp256k1":
		priv, err := btcec.NewPrivateKey()
		if err != nil {
			return nil, nil, err
		}
		return priv, priv.PubKey(), nil
	case "rsa":
		priv, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return nil, nil, err
		}
		return priv, &priv.PublicKey, nil
	}
	return nil, nil, fmt.Errorf("unknown key type %q", algo)
}
