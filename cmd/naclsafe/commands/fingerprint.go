package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"naclsafe/internal/keyring"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the keyring fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			kr, err := keys.Load(passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", kr.Fingerprint())
			return nil
		},
	}
}

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public keys for sharing",
		RunE: func(cmd *cobra.Command, args []string) error {
			kr, err := keys.Load(passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "box:  %s\nsign: %s\n",
				keyring.B64(kr.BoxPublic.Slice()),
				keyring.B64(kr.SignPublic.Slice()))
			return nil
		},
	}
}
