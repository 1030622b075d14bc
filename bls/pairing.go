package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Pair computes the optimal ate pairing e(a, b). The argument order is
// fixed: short group first, long group second. The wrapper methods on
// both element types preserve this order regardless of which side the
// call starts from.
func Pair(a *G1Element, b *G2Element) (*GTElement, error) {
	gt, err := bls12381.Pair(
		[]bls12381.G1Affine{a.p},
		[]bls12381.G2Affine{b.q},
	)
	if err != nil {
		return nil, err
	}
	return &GTElement{r: gt}, nil
}

// Pair computes e(e, b).
func (e *G1Element) Pair(b *G2Element) (*GTElement, error) {
	return Pair(e, b)
}

// Pair computes e(a, e). The underlying argument order stays
// (short, long).
func (e *G2Element) Pair(a *G1Element) (*GTElement, error) {
	return Pair(a, e)
}

// PairingProduct computes the product of pairings
// e(g1s[0], g2s[0]) * ... * e(g1s[n-1], g2s[n-1]) in a single Miller
// loop, the standard shape for verifying a multi-pairing equation.
func PairingProduct(g1s []*G1Element, g2s []*G2Element) (*GTElement, error) {
	if len(g1s) != len(g2s) {
		return nil, ErrMismatchedLengths
	}
	ps := make([]bls12381.G1Affine, len(g1s))
	qs := make([]bls12381.G2Affine, len(g2s))
	for i := range g1s {
		ps[i] = g1s[i].p
		qs[i] = g2s[i].q
	}
	gt, err := bls12381.Pair(ps, qs)
	if err != nil {
		return nil, err
	}
	return &GTElement{r: gt}, nil
}

// PairingCheck reports whether the product of pairings over the given
// pairs equals unity, without materializing the product for the caller.
func PairingCheck(g1s []*G1Element, g2s []*G2Element) (bool, error) {
	if len(g1s) != len(g2s) {
		return false, ErrMismatchedLengths
	}
	ps := make([]bls12381.G1Affine, len(g1s))
	qs := make([]bls12381.G2Affine, len(g2s))
	for i := range g1s {
		ps[i] = g1s[i].p
		qs[i] = g2s[i].q
	}
	return bls12381.PairingCheck(ps, qs)
}
