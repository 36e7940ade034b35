package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"naclsafe/internal/keyring"
)

func initCmd() *cobra.Command {
	var boxSeed, signSeed string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the local keyring and store it encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			var kr keyring.Keyring
			switch {
			case boxSeed == "" && signSeed == "":
				var err error
				kr, err = keyring.Generate()
				if err != nil {
					return err
				}
			case boxSeed != "" && signSeed != "":
				bs, err := keyring.ParseSeed(boxSeed)
				if err != nil {
					return err
				}
				ss, err := keyring.ParseSeed(signSeed)
				if err != nil {
					return err
				}
				if bs == ss {
					return fmt.Errorf("box and sign seeds must differ")
				}
				kr = keyring.FromSeeds(bs, ss)
			default:
				return fmt.Errorf("provide both --box-seed and --sign-seed, or neither")
			}

			if err := keys.Save(passphrase, kr); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Keyring created.\nFingerprint: %s\n", kr.Fingerprint())
			return nil
		},
	}

	cmd.Flags().StringVar(&boxSeed, "box-seed", "", "base64 32-byte seed for the box key pair")
	cmd.Flags().StringVar(&signSeed, "sign-seed", "", "base64 32-byte seed for the sign key pair")
	return cmd
}
