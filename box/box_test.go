package box_test

import (
	"bytes"
	"testing"

	"naclsafe"
	"naclsafe/box"
)

// repeatSeed returns a seed with every byte set to b.
func repeatSeed(b byte) naclsafe.Seed {
	var s naclsafe.Seed
	for i := range s {
		s[i] = b
	}
	return s
}

func TestSealOpen_RoundTrip(t *testing.T) {
	alicePub, aliceSec := box.DeriveKeypair(repeatSeed(0x01))
	bobPub, bobSec := box.DeriveKeypair(repeatSeed(0x02))

	var nonce box.Nonce
	msg := []byte("hello")

	ct := box.Seal(msg, nonce, bobPub, aliceSec)
	if len(ct) != len(msg)+box.Overhead {
		t.Fatalf("ciphertext length %d, want %d", len(ct), len(msg)+box.Overhead)
	}

	pt, ok := box.Open(ct, nonce, alicePub, bobSec)
	if !ok {
		t.Fatal("Open failed on valid ciphertext")
	}
	if !bytes.Equal(pt, msg) {
		t.Fatalf("Open = %q, want %q", pt, msg)
	}
}

func TestSealOpen_EmptyMessage(t *testing.T) {
	alicePub, aliceSec := box.DeriveKeypair(repeatSeed(0x03))
	bobPub, bobSec := box.DeriveKeypair(repeatSeed(0x04))

	var nonce box.Nonce
	ct := box.Seal(nil, nonce, bobPub, aliceSec)
	if len(ct) != box.Overhead {
		t.Fatalf("ciphertext length %d, want %d", len(ct), box.Overhead)
	}

	pt, ok := box.Open(ct, nonce, alicePub, bobSec)
	if !ok {
		t.Fatal("Open failed on valid empty-message ciphertext")
	}
	if len(pt) != 0 {
		t.Fatalf("Open = %x, want empty", pt)
	}
}

func TestOpen_TamperedCiphertext(t *testing.T) {
	alicePub, aliceSec := box.DeriveKeypair(repeatSeed(0x05))
	bobPub, bobSec := box.DeriveKeypair(repeatSeed(0x06))

	var nonce box.Nonce
	ct := box.Seal([]byte("hello"), nonce, bobPub, aliceSec)

	// Flip every bit, one at a time.
	for i := range ct {
		for bit := 0; bit < 8; bit++ {
			tampered := append([]byte{}, ct...)
			tampered[i] ^= 1 << bit
			if _, ok := box.Open(tampered, nonce, alicePub, bobSec); ok {
				t.Fatalf("Open accepted ciphertext with bit %d of byte %d flipped", bit, i)
			}
		}
	}
}

func TestOpen_TamperedNonce(t *testing.T) {
	alicePub, aliceSec := box.DeriveKeypair(repeatSeed(0x01))
	bobPub, bobSec := box.DeriveKeypair(repeatSeed(0x02))

	var nonce box.Nonce
	ct := box.Seal([]byte("hello"), nonce, bobPub, aliceSec)

	altered := nonce
	altered[0] ^= 0x01
	if _, ok := box.Open(ct, altered, alicePub, bobSec); ok {
		t.Fatal("Open accepted ciphertext under altered nonce")
	}
}

func TestOpen_WrongKeys(t *testing.T) {
	_, aliceSec := box.DeriveKeypair(repeatSeed(0x07))
	bobPub, bobSec := box.DeriveKeypair(repeatSeed(0x08))
	evePub, _ := box.DeriveKeypair(repeatSeed(0x09))

	var nonce box.Nonce
	ct := box.Seal([]byte("hello"), nonce, bobPub, aliceSec)

	// Claimed sender is Eve, not Alice.
	if _, ok := box.Open(ct, nonce, evePub, bobSec); ok {
		t.Fatal("Open accepted ciphertext under wrong sender key")
	}
}

func TestOpen_TruncatedCiphertext(t *testing.T) {
	alicePub, _ := box.DeriveKeypair(repeatSeed(0x0A))
	_, bobSec := box.DeriveKeypair(repeatSeed(0x0B))

	var nonce box.Nonce
	for _, short := range [][]byte{nil, {0x42}, make([]byte, box.Overhead-1)} {
		if _, ok := box.Open(short, nonce, alicePub, bobSec); ok {
			t.Fatalf("Open accepted %d-byte ciphertext", len(short))
		}
	}
}

func TestDeriveKeypair_Deterministic(t *testing.T) {
	pk1, sk1 := box.DeriveKeypair(repeatSeed(0x42))
	pk2, sk2 := box.DeriveKeypair(repeatSeed(0x42))
	if pk1 != pk2 || sk1 != sk2 {
		t.Fatal("DeriveKeypair not deterministic")
	}

	pk3, _ := box.DeriveKeypair(repeatSeed(0x43))
	if pk1 == pk3 {
		t.Fatal("distinct seeds derived the same public key")
	}
}

func TestGenerateKeypair_RoundTrip(t *testing.T) {
	alicePub, aliceSec, err := box.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	bobPub, bobSec, err := box.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}

	var nonce box.Nonce
	nonce[23] = 0x99
	msg := []byte("generated keys work too")

	pt, ok := box.Open(box.Seal(msg, nonce, bobPub, aliceSec), nonce, alicePub, bobSec)
	if !ok || !bytes.Equal(pt, msg) {
		t.Fatalf("round trip with generated keys: %q, %v", pt, ok)
	}
}
