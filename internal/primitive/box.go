package primitive

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

// Box encrypts and authenticates the padded message m into c, which must
// have the same length as m. The first BoxZeroBytes bytes of m must be
// zero; the first BoxBoxZeroBytes bytes of c are set to zero.
func Box(c, m []byte, nonce *[BoxNonceBytes]byte, peersPublic *[BoxPublicKeyBytes]byte, secret *[BoxSecretKeyBytes]byte) error {
	if len(c) != len(m) {
		return fmt.Errorf("%w: output %d != input %d", errSize, len(c), len(m))
	}
	if len(m) < BoxZeroBytes {
		return fmt.Errorf("%w: input %d < %d", errSize, len(m), BoxZeroBytes)
	}
	sealed := box.Seal(nil, m[BoxZeroBytes:], nonce, peersPublic, secret)
	for i := 0; i < BoxBoxZeroBytes; i++ {
		c[i] = 0
	}
	copy(c[BoxBoxZeroBytes:], sealed)
	return nil
}

// BoxOpen verifies and decrypts the padded ciphertext c into m, which must
// have the same length as c. The first BoxBoxZeroBytes bytes of c must be
// zero; on success the first BoxZeroBytes bytes of m are set to zero.
// Authentication failure is reported as ErrVerify.
func BoxOpen(m, c []byte, nonce *[BoxNonceBytes]byte, peersPublic *[BoxPublicKeyBytes]byte, secret *[BoxSecretKeyBytes]byte) error {
	if len(m) != len(c) {
		return fmt.Errorf("%w: output %d != input %d", errSize, len(m), len(c))
	}
	// A ciphertext too short to hold the padding and authenticator is
	// adversarial input, not a caller bug: it fails like any forgery.
	if len(c) < BoxZeroBytes {
		return ErrVerify
	}
	opened, ok := box.Open(nil, c[BoxBoxZeroBytes:], nonce, peersPublic, secret)
	if !ok {
		return ErrVerify
	}
	for i := 0; i < BoxZeroBytes; i++ {
		m[i] = 0
	}
	copy(m[BoxZeroBytes:], opened)
	return nil
}

// BoxKeypair generates a random crypto_box key pair from the system
// randomness source.
func BoxKeypair() (pk [BoxPublicKeyBytes]byte, sk [BoxSecretKeyBytes]byte, err error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return pk, sk, err
	}
	return *pub, *priv, nil
}

// BoxKeypairSeed derives a crypto_box key pair from seed. The secret key is
// the seed itself; the public key is its scalar base multiple, as in
// TweetNaCl (the scalar is clamped inside the multiplication).
func BoxKeypairSeed(seed *[SeedBytes]byte) (pk [BoxPublicKeyBytes]byte, sk [BoxSecretKeyBytes]byte) {
	sk = *seed
	curve25519.ScalarBaseMult(&pk, &sk)
	return pk, sk
}
