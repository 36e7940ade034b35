package primitive

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/sign"
)

// SignAttached signs the message m into sm using the attached format:
// 64 bytes of signature followed by the message itself. sm must be exactly
// SignBytes longer than m. No padding is involved.
func SignAttached(sm, m []byte, secret *[SignSecretKeyBytes]byte) error {
	if len(sm) != len(m)+SignBytes {
		return fmt.Errorf("%w: output %d != input %d + %d", errSize, len(sm), len(m), SignBytes)
	}
	copy(sm, sign.Sign(nil, m, secret))
	return nil
}

// SignAttachedOpen verifies the attached signed message sm and writes the
// recovered message into m, returning its length. m must be at least as
// long as sm. Verification failure is reported as ErrVerify.
func SignAttachedOpen(m, sm []byte, public *[SignPublicKeyBytes]byte) (int, error) {
	if len(m) < len(sm) {
		return 0, fmt.Errorf("%w: output %d < input %d", errSize, len(m), len(sm))
	}
	opened, ok := sign.Open(nil, sm, public)
	if !ok {
		return 0, ErrVerify
	}
	return copy(m, opened), nil
}

// SignKeypair generates a random crypto_sign key pair from the system
// randomness source.
func SignKeypair() (pk [SignPublicKeyBytes]byte, sk [SignSecretKeyBytes]byte, err error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return pk, sk, err
	}
	copy(pk[:], pub)
	copy(sk[:], priv)
	return pk, sk, nil
}

// SignKeypairSeed derives a crypto_sign key pair from seed, per Ed25519's
// standard seed expansion.
func SignKeypairSeed(seed *[SeedBytes]byte) (pk [SignPublicKeyBytes]byte, sk [SignSecretKeyBytes]byte) {
	priv := ed25519.NewKeyFromSeed(seed[:])
	copy(pk[:], priv[ed25519.SeedSize:])
	copy(sk[:], priv)
	return pk, sk
}
