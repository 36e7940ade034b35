// Package sign provides public-key attached signatures in the style of
// NaCl's crypto_sign.
//
// A signed message carries its signature and content in one buffer, so no
// zero-padding protocol applies; Verify recovers exactly the original
// message. Unlike naclsafe/box, signatures are publicly verifiable and
// therefore non-repudiable.
package sign

import (
	"errors"

	"naclsafe"
	"naclsafe/internal/primitive"
)

const (
	// PublicKeySize is the size of a PublicKey in bytes.
	PublicKeySize = primitive.SignPublicKeyBytes
	// SecretKeySize is the size of a SecretKey in bytes.
	SecretKeySize = primitive.SignSecretKeyBytes
	// SignatureSize is the number of bytes Sign prepends to the message.
	SignatureSize = primitive.SignBytes
)

// PublicKey is a crypto_sign public key.
type PublicKey [PublicKeySize]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// SecretKey is a crypto_sign secret key.
type SecretKey [SecretKeySize]byte

// Slice returns the key as a []byte.
func (k SecretKey) Slice() []byte { return k[:] }

// GenerateKeypair returns a fresh random key pair from the system
// randomness source.
func GenerateKeypair() (PublicKey, SecretKey, error) {
	pk, sk, err := primitive.SignKeypair()
	if err != nil {
		return PublicKey{}, SecretKey{}, err
	}
	return PublicKey(pk), SecretKey(sk), nil
}

// DeriveKeypair derives the key pair for seed. The same seed always yields
// the same pair.
func DeriveKeypair(seed naclsafe.Seed) (PublicKey, SecretKey) {
	pk, sk := primitive.SignKeypairSeed((*[primitive.SeedBytes]byte)(&seed))
	return PublicKey(pk), SecretKey(sk)
}

// Sign signs message with secret, returning the attached signed message:
// SignatureSize bytes of signature followed by the message.
func Sign(message naclsafe.UnsignedMessage, secret SecretKey) naclsafe.SignedMessage {
	signed := make([]byte, len(message)+SignatureSize)
	err := primitive.SignAttached(signed, message, (*[SecretKeySize]byte)(&secret))
	if err != nil {
		panic("sign: " + err.Error())
	}
	return signed
}

// Verify checks the attached signed message against public and returns the
// original message it carries.
//
// It reports ok == false for any forged, corrupted or wrong-key signed
// message, with no further detail.
func Verify(signed naclsafe.SignedMessage, public PublicKey) (naclsafe.VerifiedMessage, bool) {
	verified := make([]byte, len(signed))
	n, err := primitive.SignAttachedOpen(verified, signed, (*[PublicKeySize]byte)(&public))
	if errors.Is(err, primitive.ErrVerify) {
		return nil, false
	}
	if err != nil {
		panic("sign: verify: " + err.Error())
	}
	// The verified length strips the signature; it can never exceed the
	// buffer we allocated. Defensive, since a shorter return is legitimate.
	if n > len(verified) {
		panic("sign: verify: verified length exceeds buffer")
	}
	return verified[:n], true
}
