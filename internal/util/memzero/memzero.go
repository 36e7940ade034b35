// Package memzero provides best-effort wiping of sensitive byte buffers.
//
// Wiping reduces the lifetime of secrets in memory; it is not a guarantee,
// since the runtime may have copied the data elsewhere.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
