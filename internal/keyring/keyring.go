// Package keyring bundles the CLI's long-lived keys: a crypto_box pair for
// encryption and a crypto_sign pair for signatures.
//
// The library packages themselves perform no key management; the keyring is
// a caller-side convenience for the naclsafe command.
package keyring

import (
	"crypto/sha256"
	"encoding/hex"

	"naclsafe"
	"naclsafe/box"
	"naclsafe/sign"
)

// Keyring holds one box key pair and one sign key pair.
type Keyring struct {
	BoxPublic  box.PublicKey  `json:"box_public"`
	BoxSecret  box.SecretKey  `json:"box_secret"`
	SignPublic sign.PublicKey `json:"sign_public"`
	SignSecret sign.SecretKey `json:"sign_secret"`
}

// Generate returns a keyring with fresh random key pairs.
func Generate() (Keyring, error) {
	boxPub, boxSec, err := box.GenerateKeypair()
	if err != nil {
		return Keyring{}, err
	}
	signPub, signSec, err := sign.GenerateKeypair()
	if err != nil {
		return Keyring{}, err
	}
	return Keyring{
		BoxPublic:  boxPub,
		BoxSecret:  boxSec,
		SignPublic: signPub,
		SignSecret: signSec,
	}, nil
}

// FromSeeds derives a keyring deterministically from two independent seeds,
// one per scheme. Reusing one seed across schemes is not supported; the two
// key pairs must not share secret material.
func FromSeeds(boxSeed, signSeed naclsafe.Seed) Keyring {
	boxPub, boxSec := box.DeriveKeypair(boxSeed)
	signPub, signSec := sign.DeriveKeypair(signSeed)
	return Keyring{
		BoxPublic:  boxPub,
		BoxSecret:  boxSec,
		SignPublic: signPub,
		SignSecret: signSec,
	}
}

// Fingerprint returns a short hex fingerprint over both public keys.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func (k Keyring) Fingerprint() string {
	h := sha256.New()
	h.Write(k.BoxPublic.Slice())
	h.Write(k.SignPublic.Slice())
	return hex.EncodeToString(h.Sum(nil)[:10])
}
