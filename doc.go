// Package naclsafe holds the types shared by the box, secretbox and sign
// schemes.
//
// The scheme packages wrap a NaCl-convention primitive layer, taking care of
// the zero-padding protocol the historical C API requires and exposing
// misuse-resistant key, nonce and seed types. See naclsafe/box,
// naclsafe/secretbox and naclsafe/sign for the actual operations.
//
// # External documentation
//
//   - https://nacl.cr.yp.to/
//   - https://tweetnacl.cr.yp.to/
package naclsafe
