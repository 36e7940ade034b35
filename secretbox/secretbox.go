// Package secretbox provides secret-key authenticated encryption in the
// style of NaCl's crypto_secretbox, with the zero-padding protocol of the
// underlying C calling convention handled internally.
//
// # Nonce requirements
//
// Nonce uniqueness per key is the caller's sole responsibility, for example
// by using nonce 1 for the first message, nonce 2 for the second, and so
// on. Nonces are long enough that randomly generated nonces have negligible
// risk of collision. This package performs no uniqueness tracking.
package secretbox

import (
	"errors"

	"naclsafe"
	"naclsafe/internal/pad"
	"naclsafe/internal/primitive"
)

const (
	// KeySize is the size of a Key in bytes.
	KeySize = primitive.SecretboxKeyBytes
	// NonceSize is the size of a Nonce in bytes.
	NonceSize = primitive.SecretboxNonceBytes
	// Overhead is the number of bytes Seal adds to the plaintext.
	Overhead = primitive.SecretboxZeroBytes - primitive.SecretboxBoxZeroBytes
)

// Key is a crypto_secretbox shared key.
type Key [KeySize]byte

// Slice returns the key as a []byte.
func (k Key) Slice() []byte { return k[:] }

// Nonce is a crypto_secretbox nonce.
type Nonce [NonceSize]byte

// Slice returns the nonce as a []byte.
func (n Nonce) Slice() []byte { return n[:] }

// Seal encrypts and authenticates plaintext under key.
//
// The result is Overhead bytes longer than the plaintext. Seal panics if
// the primitive reports a buffer mismatch: that is a bug in this package,
// not a caller error.
func Seal(plaintext naclsafe.Plaintext, nonce Nonce, key Key) naclsafe.Ciphertext {
	// crypto_secretbox requires the first SecretboxZeroBytes bytes of its
	// input to be zero, and promises the first SecretboxBoxZeroBytes bytes
	// of its output are.
	padded := pad.Pad(primitive.SecretboxZeroBytes, plaintext)
	out := make([]byte, len(padded))

	err := primitive.Secretbox(out, padded,
		(*[NonceSize]byte)(&nonce),
		(*[KeySize]byte)(&key))
	if err != nil {
		panic("secretbox: seal: " + err.Error())
	}

	ct, ok := pad.Unpad(primitive.SecretboxBoxZeroBytes, out)
	if !ok {
		panic("secretbox: seal: primitive output missing zero prefix")
	}
	return ct
}

// Open verifies and decrypts ciphertext under key.
//
// It reports ok == false for any forged, corrupted or wrong-key ciphertext,
// with no further detail. A false result is routine; partial output is
// never returned alongside it.
func Open(ciphertext naclsafe.Ciphertext, nonce Nonce, key Key) (naclsafe.Plaintext, bool) {
	padded := pad.Pad(primitive.SecretboxBoxZeroBytes, ciphertext)
	out := make([]byte, len(padded))

	err := primitive.SecretboxOpen(out, padded,
		(*[NonceSize]byte)(&nonce),
		(*[KeySize]byte)(&key))
	if errors.Is(err, primitive.ErrVerify) {
		return nil, false
	}
	if err != nil {
		panic("secretbox: open: " + err.Error())
	}

	pt, ok := pad.Unpad(primitive.SecretboxZeroBytes, out)
	if !ok {
		panic("secretbox: open: primitive output missing zero prefix")
	}
	return pt, true
}
