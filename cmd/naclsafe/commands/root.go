package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"naclsafe/internal/store"
)

var (
	home       string
	passphrase string
	keys       store.KeyringStore
)

func Execute() error {
	root := &cobra.Command{
		Use:   "naclsafe",
		Short: "NaCl box, secretbox and sign operations over an encrypted keyring",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".naclsafe")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			keys = store.NewFileStore(home)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.naclsafe)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the keyring")

	root.AddCommand(
		initCmd(), fingerprintCmd(), pubkeyCmd(),
		sealCmd(), openCmd(),
		newkeyCmd(), lockCmd(), unlockCmd(),
		signCmd(), verifyCmd(),
	)
	return root.Execute()
}
