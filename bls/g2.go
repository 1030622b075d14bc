package bls

// G2 wire format. The 96-byte encoding stores the extension-field
// x-coordinate as two 48-byte halves in the order c1 then c0, the
// reverse of the native component order, so both codec paths swap
// halves. Flags occupy the top 3 bits of wire byte 0 with the same
// semantics as G1; wire byte 48 (the start of the c0 half) must have its
// top 3 bits clear.

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/blswire/blswire/internal/secmem"
)

// G2Size is the compressed wire size of a G2 element in bytes.
const G2Size = 96

// g2CurveB is the b coefficient of the twist curve y^2 = x^3 + 4(u+1).
var g2CurveB bls12381.E2

func init() {
	g2CurveB.A0.SetUint64(4)
	g2CurveB.A1.SetUint64(4)
}

// G2Element is a point in the long group G2. The zero value is the
// group identity. Copies are independent; the type is immutable after
// construction and safe for concurrent use.
type G2Element struct {
	q bls12381.G2Affine
}

// G2FromBytes decodes a 96-byte compressed encoding and verifies the
// result is on the twist curve. This is the only decode path safe for
// untrusted input.
func G2FromBytes(b []byte) (*G2Element, error) {
	e, err := G2FromBytesUnchecked(b)
	if err != nil {
		return nil, err
	}
	if err := e.CheckValid(); err != nil {
		return nil, err
	}
	return e, nil
}

// G2FromBytesUnchecked decodes a 96-byte compressed encoding without the
// on-curve check. The canonical-form rules are still enforced.
func G2FromBytesUnchecked(b []byte) (*G2Element, error) {
	if len(b) != G2Size {
		return nil, ErrInvalidSize
	}
	if b[G2Size/2]&flagMask != 0 {
		return nil, ErrMalformedSecondComponent
	}
	tag, coord, err := parseCompressedHeader(b)
	if err != nil {
		return nil, err
	}
	e := new(G2Element)
	if tag == tagInfinity {
		return e, nil
	}
	// Swap the wire halves into native component order.
	if err := e.q.X.A1.SetBytesCanonical(coord[:G2Size/2]); err != nil {
		return nil, ErrInvalidPoint
	}
	if err := e.q.X.A0.SetBytesCanonical(coord[G2Size/2:]); err != nil {
		return nil, ErrInvalidPoint
	}
	y, err := solveG2Y(&e.q.X, tag)
	if err != nil {
		return nil, err
	}
	e.q.Y = y
	return e, nil
}

// solveG2Y recovers the y-coordinate selected by the header sign bit
// from y^2 = x^3 + 4(u+1) over the degree-2 extension field.
func solveG2Y(x *bls12381.E2, tag pointTag) (bls12381.E2, error) {
	var ySq, y bls12381.E2
	ySq.Square(x)
	ySq.Mul(&ySq, x)
	ySq.Add(&ySq, &g2CurveB)
	if ySq.Legendre() != 1 {
		return y, ErrInvalidPoint
	}
	y.Sqrt(&ySq)
	if y.LexicographicallyLargest() != (tag == tagCompressedLargerY) {
		y.Neg(&y)
	}
	return y, nil
}

// G2FromMessage hashes an arbitrary message to a G2 point using the
// hash-to-curve suite of the arithmetic provider with the given domain
// separation tag.
func G2FromMessage(msg, dst []byte) (*G2Element, error) {
	q, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return nil, err
	}
	return &G2Element{q: q}, nil
}

// G2FromNative constructs an element owning a copy of a provider point.
// No validity check is performed; use CheckValid if q is untrusted.
func G2FromNative(q *bls12381.G2Affine) *G2Element {
	return &G2Element{q: *q}
}

// G2Generator returns the standard generator of G2.
func G2Generator() *G2Element {
	_, _, _, g2 := bls12381.Generators()
	return &G2Element{q: g2}
}

// G2Infinity returns the group identity.
func G2Infinity() *G2Element {
	return new(G2Element)
}

// Native returns a copy of the underlying provider point.
func (e *G2Element) Native() bls12381.G2Affine {
	return e.q
}

// IsInfinity reports whether e is the group identity.
func (e *G2Element) IsInfinity() bool {
	return e.q.IsInfinity()
}

// IsValid reports whether e is the identity or a point on the twist
// curve. The identity carve-out matches G1Element.IsValid.
func (e *G2Element) IsValid() bool {
	if e.q.IsInfinity() {
		return true
	}
	return e.q.IsOnCurve()
}

// CheckValid returns ErrInvalidPoint unless IsValid holds.
func (e *G2Element) CheckValid() error {
	if !e.IsValid() {
		return ErrInvalidPoint
	}
	return nil
}

// Serialize returns the unique canonical 96-byte compressed encoding:
// the c1 half carrying the flag bits, then the c0 half.
func (e *G2Element) Serialize() []byte {
	out := make([]byte, G2Size)
	if e.q.IsInfinity() {
		out[0] = flagCompression | flagInfinity
		return out
	}
	c1 := e.q.X.A1.Bytes()
	c0 := e.q.X.A0.Bytes()
	copy(out[:G2Size/2], c1[:])
	copy(out[G2Size/2:], c0[:])
	out[0] |= flagCompression
	if e.q.Y.LexicographicallyLargest() {
		out[0] |= flagSign
	}
	return out
}

// Add returns e + other.
func (e *G2Element) Add(other *G2Element) *G2Element {
	var r G2Element
	r.q.Add(&e.q, &other.q)
	return &r
}

// Neg returns -e.
func (e *G2Element) Neg() *G2Element {
	var r G2Element
	r.q.Neg(&e.q)
	return &r
}

// Mul returns k*e. The scalar bytes are staged through a wiping buffer
// so that secret material does not persist after the call; see Scalar.
func (e *G2Element) Mul(k *Scalar) *G2Element {
	buf := secmem.Alloc(ScalarSize)
	defer secmem.Free(buf)
	k.writeBigEndian(buf)
	s := new(big.Int).SetBytes(buf)
	defer wipeBigInt(s)

	var r G2Element
	r.q.ScalarMultiplication(&e.q, s)
	return &r
}

// Equal reports whether e and other hold byte-identical native payloads.
// The comparison is pure: neither operand is modified.
func (e *G2Element) Equal(other *G2Element) bool {
	return e.q == other.q
}

// String returns the canonical encoding as a 0x-prefixed hex string.
func (e *G2Element) String() string {
	return hexutil.Encode(e.Serialize())
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (e *G2Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input must be a
// 0x-prefixed hex string of a valid canonical encoding.
func (e *G2Element) UnmarshalText(text []byte) error {
	b, err := hexutil.Decode(string(text))
	if err != nil {
		return err
	}
	dec, err := G2FromBytes(b)
	if err != nil {
		return err
	}
	*e = *dec
	return nil
}
