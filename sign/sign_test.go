package sign_test

import (
	"bytes"
	"testing"

	"naclsafe"
	"naclsafe/sign"
)

// repeatSeed returns a seed with every byte set to b.
func repeatSeed(b byte) naclsafe.Seed {
	var s naclsafe.Seed
	for i := range s {
		s[i] = b
	}
	return s
}

func TestSignVerify_RoundTrip(t *testing.T) {
	pub, sec := sign.DeriveKeypair(repeatSeed(0x11))

	msg := []byte("I hereby attest")
	signed := sign.Sign(msg, sec)
	if len(signed) != len(msg)+sign.SignatureSize {
		t.Fatalf("signed length %d, want %d", len(signed), len(msg)+sign.SignatureSize)
	}

	verified, ok := sign.Verify(signed, pub)
	if !ok {
		t.Fatal("Verify failed on valid signed message")
	}
	if !bytes.Equal(verified, msg) {
		t.Fatalf("Verify = %q, want %q", verified, msg)
	}
}

func TestSignVerify_EmptyMessage(t *testing.T) {
	pub, sec := sign.DeriveKeypair(repeatSeed(0x12))

	signed := sign.Sign(nil, sec)
	if len(signed) != sign.SignatureSize {
		t.Fatalf("signed length %d, want %d", len(signed), sign.SignatureSize)
	}
	verified, ok := sign.Verify(signed, pub)
	if !ok || len(verified) != 0 {
		t.Fatalf("Verify = %x, %v; want empty, true", verified, ok)
	}
}

func TestVerify_TamperedMessage(t *testing.T) {
	pub, sec := sign.DeriveKeypair(repeatSeed(0x13))
	signed := sign.Sign([]byte("I hereby attest"), sec)

	for i := range signed {
		for bit := 0; bit < 8; bit++ {
			tampered := append([]byte{}, signed...)
			tampered[i] ^= 1 << bit
			if _, ok := sign.Verify(tampered, pub); ok {
				t.Fatalf("Verify accepted signed message with bit %d of byte %d flipped", bit, i)
			}
		}
	}
}

func TestVerify_WrongPublicKey(t *testing.T) {
	_, sec := sign.DeriveKeypair(repeatSeed(0x14))
	otherPub, _ := sign.DeriveKeypair(repeatSeed(0x15))

	signed := sign.Sign([]byte("I hereby attest"), sec)
	if _, ok := sign.Verify(signed, otherPub); ok {
		t.Fatal("Verify accepted signature under wrong public key")
	}
}

func TestVerify_TruncatedSignedMessage(t *testing.T) {
	pub, _ := sign.DeriveKeypair(repeatSeed(0x16))

	for _, short := range [][]byte{nil, {0x42}, make([]byte, sign.SignatureSize-1)} {
		if _, ok := sign.Verify(short, pub); ok {
			t.Fatalf("Verify accepted %d-byte signed message", len(short))
		}
	}
}

func TestDeriveKeypair_Deterministic(t *testing.T) {
	pk1, sk1 := sign.DeriveKeypair(repeatSeed(0x17))
	pk2, sk2 := sign.DeriveKeypair(repeatSeed(0x17))
	if pk1 != pk2 || sk1 != sk2 {
		t.Fatal("DeriveKeypair not deterministic")
	}
}

func TestGenerateKeypair_RoundTrip(t *testing.T) {
	pub, sec, err := sign.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}

	msg := []byte("generated keys work too")
	verified, ok := sign.Verify(sign.Sign(msg, sec), pub)
	if !ok || !bytes.Equal(verified, msg) {
		t.Fatalf("round trip with generated keys: %q, %v", verified, ok)
	}
}
