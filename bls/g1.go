package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/blswire/blswire/internal/secmem"
)

// G1Size is the compressed wire size of a G1 element in bytes.
const G1Size = 48

// g1CurveB is the b coefficient of the curve y^2 = x^3 + 4.
var g1CurveB = fp.NewElement(4)

// G1Element is a point in the short group G1. The zero value is the
// group identity. Copies are independent; the type is immutable after
// construction and safe for concurrent use.
type G1Element struct {
	p bls12381.G1Affine
}

// G1FromBytes decodes a 48-byte compressed encoding and verifies the
// result is on the curve. This is the only decode path safe for
// untrusted input.
func G1FromBytes(b []byte) (*G1Element, error) {
	e, err := G1FromBytesUnchecked(b)
	if err != nil {
		return nil, err
	}
	if err := e.CheckValid(); err != nil {
		return nil, err
	}
	return e, nil
}

// G1FromBytesUnchecked decodes a 48-byte compressed encoding without the
// on-curve check. The canonical-form rules are still enforced.
func G1FromBytesUnchecked(b []byte) (*G1Element, error) {
	if len(b) != G1Size {
		return nil, ErrInvalidSize
	}
	tag, coord, err := parseCompressedHeader(b)
	if err != nil {
		return nil, err
	}
	e := new(G1Element)
	if tag == tagInfinity {
		return e, nil
	}
	var x fp.Element
	if err := x.SetBytesCanonical(coord); err != nil {
		return nil, ErrInvalidPoint
	}
	y, err := solveG1Y(&x, tag)
	if err != nil {
		return nil, err
	}
	e.p.X = x
	e.p.Y = y
	return e, nil
}

// solveG1Y recovers the y-coordinate selected by the header sign bit
// from y^2 = x^3 + 4.
func solveG1Y(x *fp.Element, tag pointTag) (fp.Element, error) {
	var ySq, y fp.Element
	ySq.Square(x)
	ySq.Mul(&ySq, x)
	ySq.Add(&ySq, &g1CurveB)
	if ySq.Legendre() != 1 {
		return y, ErrInvalidPoint
	}
	y.Sqrt(&ySq)
	if y.LexicographicallyLargest() != (tag == tagCompressedLargerY) {
		y.Neg(&y)
	}
	return y, nil
}

// G1FromMessage hashes an arbitrary message to a G1 point using the
// hash-to-curve suite of the arithmetic provider with the given domain
// separation tag.
func G1FromMessage(msg, dst []byte) (*G1Element, error) {
	p, err := bls12381.HashToG1(msg, dst)
	if err != nil {
		return nil, err
	}
	return &G1Element{p: p}, nil
}

// G1FromNative constructs an element owning a copy of a provider point.
// No validity check is performed; use CheckValid if p is untrusted.
func G1FromNative(p *bls12381.G1Affine) *G1Element {
	return &G1Element{p: *p}
}

// G1Generator returns the standard generator of G1.
func G1Generator() *G1Element {
	_, _, g1, _ := bls12381.Generators()
	return &G1Element{p: g1}
}

// G1Infinity returns the group identity.
func G1Infinity() *G1Element {
	return new(G1Element)
}

// Native returns a copy of the underlying provider point.
func (e *G1Element) Native() bls12381.G1Affine {
	return e.p
}

// IsInfinity reports whether e is the group identity.
func (e *G1Element) IsInfinity() bool {
	return e.p.IsInfinity()
}

// IsValid reports whether e is the identity or a point on the curve.
// The identity is treated as valid regardless of the provider's
// on-curve predicate; newer providers no longer classify it as on
// curve.
func (e *G1Element) IsValid() bool {
	if e.p.IsInfinity() {
		return true
	}
	return e.p.IsOnCurve()
}

// CheckValid returns ErrInvalidPoint unless IsValid holds.
func (e *G1Element) CheckValid() error {
	if !e.IsValid() {
		return ErrInvalidPoint
	}
	return nil
}

// Serialize returns the unique canonical 48-byte compressed encoding.
func (e *G1Element) Serialize() []byte {
	out := make([]byte, G1Size)
	if e.p.IsInfinity() {
		out[0] = flagCompression | flagInfinity
		return out
	}
	x := e.p.X.Bytes()
	copy(out, x[:])
	out[0] |= flagCompression
	if e.p.Y.LexicographicallyLargest() {
		out[0] |= flagSign
	}
	return out
}

// Fingerprint returns the 4-byte identifier of e, derived from its
// canonical serialization.
func (e *G1Element) Fingerprint() uint32 {
	return Fingerprint4(e.Serialize())
}

// Add returns e + other.
func (e *G1Element) Add(other *G1Element) *G1Element {
	var r G1Element
	r.p.Add(&e.p, &other.p)
	return &r
}

// Neg returns -e.
func (e *G1Element) Neg() *G1Element {
	var r G1Element
	r.p.Neg(&e.p)
	return &r
}

// Mul returns k*e. The scalar bytes are staged through a wiping buffer
// so that secret material does not persist after the call; see Scalar.
func (e *G1Element) Mul(k *Scalar) *G1Element {
	buf := secmem.Alloc(ScalarSize)
	defer secmem.Free(buf)
	k.writeBigEndian(buf)
	s := new(big.Int).SetBytes(buf)
	defer wipeBigInt(s)

	var r G1Element
	r.p.ScalarMultiplication(&e.p, s)
	return &r
}

// Equal reports whether e and other hold byte-identical native payloads.
// The provider's affine representation is unique per point, so this is
// also mathematical equality; for payloads of unknown provenance,
// comparing canonical serializations is the conservative choice.
func (e *G1Element) Equal(other *G1Element) bool {
	return e.p == other.p
}

// String returns the canonical encoding as a 0x-prefixed hex string.
func (e *G1Element) String() string {
	return hexutil.Encode(e.Serialize())
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (e *G1Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input must be a
// 0x-prefixed hex string of a valid canonical encoding.
func (e *G1Element) UnmarshalText(text []byte) error {
	b, err := hexutil.Decode(string(text))
	if err != nil {
		return err
	}
	dec, err := G1FromBytes(b)
	if err != nil {
		return err
	}
	*e = *dec
	return nil
}
