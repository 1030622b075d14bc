//go:build blst

// Conformance adapter for the supranational/blst library.
//
// blst implements the same compressed wire format this package does, so
// its serializer doubles as an independent oracle: any byte string this
// codec accepts must round-trip through blst to the identical bytes,
// and any canonical encoding produced here must be accepted by blst.
//
// Build with: go build -tags blst
// Test with:  go test -tags blst ./bls/ -run Blst

package bls

import (
	blst "github.com/supranational/blst/bindings/go"
)

// blstRecompressG1 uncompresses b with blst and compresses it again.
// Returns nil if blst rejects the encoding.
func blstRecompressG1(b []byte) []byte {
	p := new(blst.P1Affine).Uncompress(b)
	if p == nil {
		return nil
	}
	return p.Compress()
}

// blstRecompressG2 uncompresses b with blst and compresses it again.
// Returns nil if blst rejects the encoding.
func blstRecompressG2(b []byte) []byte {
	q := new(blst.P2Affine).Uncompress(b)
	if q == nil {
		return nil
	}
	return q.Compress()
}
