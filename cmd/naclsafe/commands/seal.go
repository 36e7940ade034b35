package commands

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"naclsafe/box"
	"naclsafe/internal/keyring"
)

func sealCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Encrypt stdin to a recipient's box public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			peer, err := keyring.ParseBoxPublicKey(to)
			if err != nil {
				return err
			}
			kr, err := keys.Load(passphrase)
			if err != nil {
				return err
			}
			msg, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}

			var nonce box.Nonce
			if _, err := rand.Read(nonce[:]); err != nil {
				return err
			}
			ct := box.Seal(msg, nonce, peer, kr.BoxSecret)

			fmt.Fprintln(cmd.OutOrStdout(), keyring.B64(append(nonce.Slice(), ct...)))
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient's base64 box public key")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func openCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Decrypt a sealed message from a sender",
		RunE: func(cmd *cobra.Command, args []string) error {
			peer, err := keyring.ParseBoxPublicKey(from)
			if err != nil {
				return err
			}
			kr, err := keys.Load(passphrase)
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
			if len(raw) < box.NonceSize {
				return fmt.Errorf("sealed message too short")
			}

			var nonce box.Nonce
			copy(nonce[:], raw[:box.NonceSize])

			pt, ok := box.Open(raw[box.NonceSize:], nonce, peer, kr.BoxSecret)
			if !ok {
				return fmt.Errorf("decryption failed")
			}
			_, err = cmd.OutOrStdout().Write(pt)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "sender's base64 box public key")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
