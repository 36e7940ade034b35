package keyring

import (
	"encoding/base64"
	"fmt"

	"naclsafe"
	"naclsafe/box"
	"naclsafe/secretbox"
	"naclsafe/sign"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// FromB64 decodes standard base64.
func FromB64(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }

// decodeFixed decodes base64 into dst, requiring an exact length match.
func decodeFixed(dst []byte, s, what string) error {
	b, err := FromB64(s)
	if err != nil {
		return fmt.Errorf("decode %s: %w", what, err)
	}
	if len(b) != len(dst) {
		return fmt.Errorf("decode %s: got %d bytes, want %d", what, len(b), len(dst))
	}
	copy(dst, b)
	return nil
}

// ParseBoxPublicKey decodes a base64 crypto_box public key.
func ParseBoxPublicKey(s string) (box.PublicKey, error) {
	var pk box.PublicKey
	err := decodeFixed(pk[:], s, "box public key")
	return pk, err
}

// ParseSignPublicKey decodes a base64 crypto_sign public key.
func ParseSignPublicKey(s string) (sign.PublicKey, error) {
	var pk sign.PublicKey
	err := decodeFixed(pk[:], s, "sign public key")
	return pk, err
}

// ParseSecretboxKey decodes a base64 secretbox key.
func ParseSecretboxKey(s string) (secretbox.Key, error) {
	var k secretbox.Key
	err := decodeFixed(k[:], s, "secretbox key")
	return k, err
}

// ParseSeed decodes a base64 seed.
func ParseSeed(s string) (naclsafe.Seed, error) {
	var seed naclsafe.Seed
	err := decodeFixed(seed[:], s, "seed")
	return seed, err
}
