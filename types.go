package naclsafe

// SeedSize is the length in bytes of a Seed.
const SeedSize = 32

// Seed is a cryptographically secure seed for deterministic keypair
// derivation.
//
// The value must be uniformly random and come from a cryptographically
// secure random number generator. Wrapping bytes in a Seed asserts exactly
// that; nothing is validated at runtime.
type Seed [SeedSize]byte

// Slice returns the seed as a []byte.
func (s Seed) Slice() []byte { return s[:] }

// The aliases below tag pipeline stages for documentation only; they carry
// no runtime distinction.

// Plaintext is an unencrypted message.
type Plaintext = []byte

// Ciphertext is an encrypted, authenticated message.
type Ciphertext = []byte

// UnsignedMessage is a message before signing.
type UnsignedMessage = []byte

// SignedMessage is a message bundled with its attached signature.
type SignedMessage = []byte

// VerifiedMessage is a message recovered from a valid signed message.
type VerifiedMessage = []byte
