package bls

import (
	"crypto/sha256"
	"encoding/binary"
)

// Fingerprint4 derives a short identifier from a canonical element
// encoding: the first four bytes, big-endian, of a double SHA-256 over
// data. Fingerprints are for indexing and display, not security.
func Fingerprint4(data []byte) uint32 {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return binary.BigEndian.Uint32(second[:4])
}
