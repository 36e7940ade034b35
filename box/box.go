// Package box provides public-key authenticated encryption in the style of
// NaCl's crypto_box, with the zero-padding protocol of the underlying C
// calling convention handled internally.
//
// # Nonce requirements
//
// Distinct messages between the same {sender, receiver} set must use
// distinct nonces. Nonces are long enough that randomly generated nonces
// have negligible risk of collision. Nothing here tracks uniqueness; it is
// the caller's responsibility.
//
// # Non-repudiation
//
// crypto_box guarantees repudiability: a receiver can forge an apparently
// valid message and therefore cannot convince a third party of its origin.
// Callers who need public verifiability should use naclsafe/sign instead.
package box

import (
	"errors"

	"naclsafe"
	"naclsafe/internal/pad"
	"naclsafe/internal/primitive"
)

const (
	// PublicKeySize is the size of a PublicKey in bytes.
	PublicKeySize = primitive.BoxPublicKeyBytes
	// SecretKeySize is the size of a SecretKey in bytes.
	SecretKeySize = primitive.BoxSecretKeyBytes
	// NonceSize is the size of a Nonce in bytes.
	NonceSize = primitive.BoxNonceBytes
	// Overhead is the number of bytes Seal adds to the plaintext.
	Overhead = primitive.BoxZeroBytes - primitive.BoxBoxZeroBytes
)

// PublicKey is a crypto_box public key.
type PublicKey [PublicKeySize]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// SecretKey is a crypto_box secret key.
type SecretKey [SecretKeySize]byte

// Slice returns the key as a []byte.
func (k SecretKey) Slice() []byte { return k[:] }

// Nonce is a crypto_box nonce.
type Nonce [NonceSize]byte

// Slice returns the nonce as a []byte.
func (n Nonce) Slice() []byte { return n[:] }

// GenerateKeypair returns a fresh random key pair from the system
// randomness source.
func GenerateKeypair() (PublicKey, SecretKey, error) {
	pk, sk, err := primitive.BoxKeypair()
	if err != nil {
		return PublicKey{}, SecretKey{}, err
	}
	return PublicKey(pk), SecretKey(sk), nil
}

// DeriveKeypair derives the key pair for seed. The same seed always yields
// the same pair.
func DeriveKeypair(seed naclsafe.Seed) (PublicKey, SecretKey) {
	pk, sk := primitive.BoxKeypairSeed((*[primitive.SeedBytes]byte)(&seed))
	return PublicKey(pk), SecretKey(sk)
}

// Seal encrypts and authenticates plaintext from secret to peersPublic.
//
// The result is Overhead bytes longer than the plaintext. The padding
// protocol the C API requires never fails on well-formed buffers, so Seal
// panics if the primitive reports a buffer mismatch: that is a bug in this
// package, not a caller error.
func Seal(plaintext naclsafe.Plaintext, nonce Nonce, peersPublic PublicKey, secret SecretKey) naclsafe.Ciphertext {
	// crypto_box requires the first BoxZeroBytes bytes of its input to be
	// zero, and promises the first BoxBoxZeroBytes bytes of its output are.
	padded := pad.Pad(primitive.BoxZeroBytes, plaintext)
	out := make([]byte, len(padded))

	err := primitive.Box(out, padded,
		(*[NonceSize]byte)(&nonce),
		(*[PublicKeySize]byte)(&peersPublic),
		(*[SecretKeySize]byte)(&secret))
	if err != nil {
		panic("box: seal: " + err.Error())
	}

	ct, ok := pad.Unpad(primitive.BoxBoxZeroBytes, out)
	if !ok {
		panic("box: seal: primitive output missing zero prefix")
	}
	return ct
}

// Open verifies and decrypts ciphertext from peersPublic to secret.
//
// It reports ok == false for any forged, corrupted or mismatched-key
// ciphertext, with no further detail. A false result is routine; partial
// output is never returned alongside it.
func Open(ciphertext naclsafe.Ciphertext, nonce Nonce, peersPublic PublicKey, secret SecretKey) (naclsafe.Plaintext, bool) {
	padded := pad.Pad(primitive.BoxBoxZeroBytes, ciphertext)
	out := make([]byte, len(padded))

	err := primitive.BoxOpen(out, padded,
		(*[NonceSize]byte)(&nonce),
		(*[PublicKeySize]byte)(&peersPublic),
		(*[SecretKeySize]byte)(&secret))
	if errors.Is(err, primitive.ErrVerify) {
		return nil, false
	}
	if err != nil {
		panic("box: open: " + err.Error())
	}

	pt, ok := pad.Unpad(primitive.BoxZeroBytes, out)
	if !ok {
		panic("box: open: primitive output missing zero prefix")
	}
	return pt, true
}
