package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// GTSize is the wire size of a target-group element in bytes: twelve
// 48-byte big-endian field coordinates in tower order C0.B0.A0 through
// C1.B2.A1. The encoding is uncompressed and carries no flag bits, so
// every element has exactly one byte form by construction.
const GTSize = 576

// GTElement is an element of the pairing target group, a degree-12
// extension field value. It is produced by pairing a G1 and a G2
// element or decoded directly from bytes.
type GTElement struct {
	r bls12381.GT
}

// GTFromBytes decodes a 576-byte encoding and verifies membership in
// the pairing target subgroup. The membership test is substantially
// more expensive than the G1/G2 on-curve checks; pay it only for
// untrusted input.
func GTFromBytes(b []byte) (*GTElement, error) {
	e, err := GTFromBytesUnchecked(b)
	if err != nil {
		return nil, err
	}
	if !e.r.IsInSubGroup() {
		return nil, ErrNotInTargetSubgroup
	}
	return e, nil
}

// GTFromBytesUnchecked decodes a 576-byte encoding without the subgroup
// membership test. Coordinates must still be canonical field elements.
func GTFromBytesUnchecked(b []byte) (*GTElement, error) {
	if len(b) != GTSize {
		return nil, ErrInvalidSize
	}
	e := new(GTElement)
	for i, c := range gtCoords(&e.r) {
		if err := c.SetBytesCanonical(b[i*fpByteLen : (i+1)*fpByteLen]); err != nil {
			return nil, ErrCoordinateOutOfRange
		}
	}
	return e, nil
}

// GTFromNative constructs an element owning a copy of a provider field
// value. No subgroup check is performed.
func GTFromNative(r *bls12381.GT) *GTElement {
	return &GTElement{r: *r}
}

// GTUnity returns the multiplicative identity of the target group.
func GTUnity() *GTElement {
	var e GTElement
	e.r.SetOne()
	return &e
}

// Native returns a copy of the underlying provider field value.
func (e *GTElement) Native() bls12381.GT {
	return e.r
}

// IsInTargetSubgroup reports whether e lies in the pairing target
// subgroup.
func (e *GTElement) IsInTargetSubgroup() bool {
	return e.r.IsInSubGroup()
}

// Mul returns e * other, the field multiplication used to combine
// multiple pairing results before an equality check against unity.
func (e *GTElement) Mul(other *GTElement) *GTElement {
	var r GTElement
	r.r.Mul(&e.r, &other.r)
	return &r
}

// Equal reports whether e and other hold byte-identical native payloads.
func (e *GTElement) Equal(other *GTElement) bool {
	return e.r == other.r
}

// Serialize returns the unique 576-byte encoding.
func (e *GTElement) Serialize() []byte {
	out := make([]byte, GTSize)
	for i, c := range gtCoords(&e.r) {
		b := c.Bytes()
		copy(out[i*fpByteLen:], b[:])
	}
	return out
}

// String returns the canonical encoding as a 0x-prefixed hex string.
func (e *GTElement) String() string {
	return hexutil.Encode(e.Serialize())
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (e *GTElement) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input must be a
// 0x-prefixed hex string of a valid encoding in the target subgroup.
func (e *GTElement) UnmarshalText(text []byte) error {
	b, err := hexutil.Decode(string(text))
	if err != nil {
		return err
	}
	dec, err := GTFromBytes(b)
	if err != nil {
		return err
	}
	*e = *dec
	return nil
}

// fpByteLen is the size of one base-field coordinate on the wire.
const fpByteLen = 48

// gtCoords returns the twelve base-field coordinates of z in wire order.
func gtCoords(z *bls12381.GT) [12]*fp.Element {
	return [12]*fp.Element{
		&z.C0.B0.A0, &z.C0.B0.A1,
		&z.C0.B1.A0, &z.C0.B1.A1,
		&z.C0.B2.A0, &z.C0.B2.A1,
		&z.C1.B0.A0, &z.C1.B0.A1,
		&z.C1.B1.A0, &z.C1.B1.A1,
		&z.C1.B2.A0, &z.C1.B2.A1,
	}
}
