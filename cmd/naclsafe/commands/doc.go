// Package commands defines the naclsafe CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init         Create the local keyring (random, or derived from seeds)
//   - fingerprint  Print the keyring fingerprint
//   - pubkey       Print the public keys for sharing
//   - seal         Encrypt stdin to a recipient's box public key
//   - open         Decrypt a sealed message from a sender
//   - newkey       Generate a random secretbox key
//   - lock         Encrypt stdin under a shared secretbox key
//   - unlock       Decrypt a locked message
//   - sign         Sign stdin with the keyring's signing key
//   - verify       Verify a signed message against a signer's public key
//
// # Implementation
//
// The root command resolves the home directory and builds the keyring store
// before any subcommand runs. Sealed and locked messages are emitted as
// base64 over a nonce-prefixed wire format: a fresh random nonce followed
// by the ciphertext.
package commands
