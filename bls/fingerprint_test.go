package bls

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"
)

// TestFingerprint4 pins the construction: first four bytes, big-endian,
// of SHA-256 applied twice.
func TestFingerprint4(t *testing.T) {
	data := []byte("fingerprint input")
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	want := binary.BigEndian.Uint32(second[:4])

	if got := Fingerprint4(data); got != want {
		t.Fatalf("Fingerprint4 = %#08x, want %#08x", got, want)
	}
	if Fingerprint4(data) != Fingerprint4(data) {
		t.Fatal("fingerprint is not deterministic")
	}
}

func TestFingerprint4Distinct(t *testing.T) {
	a := Fingerprint4(G1GeneratorCompressed)
	b := Fingerprint4(G1InfinityCompressed)
	if a == b {
		t.Fatal("distinct encodings share a fingerprint")
	}
}
