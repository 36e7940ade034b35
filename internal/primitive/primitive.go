package primitive

import "errors"

// Buffer sizes of the C NaCl API, in bytes.
//
// Values follow https://tweetnacl.cr.yp.to/20140427/tweetnacl.h.
const (
	// BoxZeroBytes is the zero padding required on crypto_box plaintext.
	BoxZeroBytes = 32
	// BoxBoxZeroBytes is the zero padding guaranteed on crypto_box ciphertext.
	BoxBoxZeroBytes = 16

	// SecretboxZeroBytes is the zero padding required on crypto_secretbox plaintext.
	SecretboxZeroBytes = 32
	// SecretboxBoxZeroBytes is the zero padding guaranteed on crypto_secretbox ciphertext.
	SecretboxBoxZeroBytes = 16

	BoxPublicKeyBytes = 32
	BoxSecretKeyBytes = 32
	BoxNonceBytes     = 24

	SecretboxKeyBytes   = 32
	SecretboxNonceBytes = 24

	SignPublicKeyBytes = 32
	SignSecretKeyBytes = 64
	// SignBytes is the size of an attached signature.
	SignBytes = 64

	SeedBytes = 32
)

// ErrVerify is returned when authentication or signature verification
// fails. It deliberately carries no detail about the cause.
var ErrVerify = errors.New("primitive: verification failed")

// errSize marks a violated buffer-size precondition. Unlike ErrVerify this
// signals a bug in the caller, not bad input data.
var errSize = errors.New("primitive: buffer size contract violated")
