// Package pad implements the zero-padding convention of the C NaCl API.
//
// The historical crypto_box and crypto_secretbox functions require their
// callers to reserve a fixed number of leading zero bytes in input buffers,
// and guarantee a (different) number of leading zero bytes in output
// buffers. This package isolates that convention so the scheme packages can
// work with unpadded buffers.
package pad

// Pad returns b with exactly size zero bytes prepended.
//
// Pad never fails; the result has length len(b)+size.
func Pad(size int, b []byte) []byte {
	p := make([]byte, size+len(b))
	copy(p[size:], b)
	return p
}

// Unpad checks and removes a prefix of size zero bytes from b.
//
// It returns (b[size:], true) iff size does not exceed len(b) and every byte
// of the prefix is zero. Both failure causes collapse into the same
// (nil, false) result; callers cannot tell a short buffer from a non-zero
// prefix.
func Unpad(size int, b []byte) ([]byte, bool) {
	if size > len(b) {
		return nil, false
	}
	var acc byte
	for _, c := range b[:size] {
		acc |= c
	}
	if acc != 0 {
		return nil, false
	}
	return b[size:], true
}
