package primitive

import (
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// Secretbox encrypts and authenticates the padded message m into c, which
// must have the same length as m. The first SecretboxZeroBytes bytes of m
// must be zero; the first SecretboxBoxZeroBytes bytes of c are set to zero.
func Secretbox(c, m []byte, nonce *[SecretboxNonceBytes]byte, key *[SecretboxKeyBytes]byte) error {
	if len(c) != len(m) {
		return fmt.Errorf("%w: output %d != input %d", errSize, len(c), len(m))
	}
	if len(m) < SecretboxZeroBytes {
		return fmt.Errorf("%w: input %d < %d", errSize, len(m), SecretboxZeroBytes)
	}
	sealed := secretbox.Seal(nil, m[SecretboxZeroBytes:], nonce, key)
	for i := 0; i < SecretboxBoxZeroBytes; i++ {
		c[i] = 0
	}
	copy(c[SecretboxBoxZeroBytes:], sealed)
	return nil
}

// SecretboxOpen verifies and decrypts the padded ciphertext c into m, which
// must have the same length as c. The first SecretboxBoxZeroBytes bytes of
// c must be zero; on success the first SecretboxZeroBytes bytes of m are
// set to zero. Authentication failure is reported as ErrVerify.
func SecretboxOpen(m, c []byte, nonce *[SecretboxNonceBytes]byte, key *[SecretboxKeyBytes]byte) error {
	if len(m) != len(c) {
		return fmt.Errorf("%w: output %d != input %d", errSize, len(m), len(c))
	}
	// A ciphertext too short to hold the padding and authenticator is
	// adversarial input, not a caller bug: it fails like any forgery.
	if len(c) < SecretboxZeroBytes {
		return ErrVerify
	}
	opened, ok := secretbox.Open(nil, c[SecretboxBoxZeroBytes:], nonce, key)
	if !ok {
		return ErrVerify
	}
	for i := 0; i < SecretboxZeroBytes; i++ {
		m[i] = 0
	}
	copy(m[SecretboxZeroBytes:], opened)
	return nil
}
