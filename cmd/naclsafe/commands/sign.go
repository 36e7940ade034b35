package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"naclsafe/internal/keyring"
	"naclsafe/sign"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign",
		Short: "Sign stdin with the keyring's signing key",
		RunE: func(cmd *cobra.Command, args []string) error {
			kr, err := keys.Load(passphrase)
			if err != nil {
				return err
			}
			msg, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), keyring.B64(sign.Sign(msg, kr.SignSecret)))
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signed message against a signer's public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := keyring.ParseSignPublicKey(from)
			if err != nil {
				return err
			}
			in, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			raw, err := keyring.FromB64(strings.TrimSpace(string(in)))
			if err != nil {
				return err
			}

			msg, ok := sign.Verify(raw, signer)
			if !ok {
				return fmt.Errorf("signature verification failed")
			}
			_, err = cmd.OutOrStdout().Write(msg)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "signer's base64 sign public key")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
