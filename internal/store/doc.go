// Package store persists the CLI keyring to disk.
//
// The keyring is serialised as JSON and sealed in a passphrase-derived
// envelope (scrypt + ChaCha20-Poly1305) before being written atomically
// under the user's configured home directory. All methods are
// concurrency-safe via internal locking.
package store
