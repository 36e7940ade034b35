package commands

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"naclsafe/internal/keyring"
	"naclsafe/secretbox"
)

func newkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "newkey",
		Short: "Generate a random secretbox key",
		RunE: func(cmd *cobra.Command, args []string) error {
			var key secretbox.Key
			if _, err := rand.Read(key[:]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), keyring.B64(key.Slice()))
			return nil
		},
	}
}

func lockCmd() *cobra.Command {
	var keyText string

	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Encrypt stdin under a shared secretbox key",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keyring.ParseSecretboxKey(keyText)
			if err != nil {
				return err
			}
			msg, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}

			var nonce secretbox.Nonce
			if _, err := rand.Read(nonce[:]); err != nil {
				return err
			}
			ct := secretbox.Seal(msg, nonce, key)

			fmt.Fprintln(cmd.OutOrStdout(), keyring.B64(append(nonce.Slice(), ct...)))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyText, "key", "", "base64 secretbox key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func unlockCmd() *cobra.Command {
	var keyText string

	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Decrypt a locked message",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keyring.ParseSecretboxKey(keyText)
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
			if len(raw) < secretbox.NonceSize {
				return fmt.Errorf("locked message too short")
			}

			var nonce secretbox.Nonce
			copy(nonce[:], raw[:secretbox.NonceSize])

			pt, ok := secretbox.Open(raw[secretbox.NonceSize:], nonce, key)
			if !ok {
				return fmt.Errorf("decryption failed")
			}
			_, err = cmd.OutOrStdout().Write(pt)
			return err
		},
	}

	cmd.Flags().StringVar(&keyText, "key", "", "base64 secretbox key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
