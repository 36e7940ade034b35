// Package primitive exposes NaCl's transforms through the historical C
// calling convention: fixed-size buffers with mandatory zero prefixes.
//
// The actual curve, stream-cipher and MAC math is delegated to
// golang.org/x/crypto; this package only adapts it to the buffer layout the
// original C API defines, so the scheme packages above it deal with one
// uniform contract:
//
//   - crypto_box / crypto_secretbox inputs carry ZeroBytes (32) leading
//     zeros, outputs carry BoxZeroBytes (16) leading zeros, and output
//     buffers must be sized exactly like the input.
//   - crypto_sign's attached format needs no padding; signed buffers are
//     SignBytes (64) longer than the message.
//
// Every transform reports failure through an error value rather than a
// fault: ErrVerify for authentication failures, distinct size errors when
// the caller violated the buffer contract.
package primitive
