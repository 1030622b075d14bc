package bls

import (
	"math/big"

	"github.com/holiman/uint256"
)

// ScalarSize is the byte width of a scalar operand.
const ScalarSize = 32

// Scalar is a 256-bit multiplication operand. Scalars frequently hold
// secret key material, so the type keeps its value in fixed storage
// (no stray heap copies) and supports explicit wiping. Multiplication
// entry points stage the bytes through internal/secmem and wipe every
// intermediate copy on all exit paths.
//
// Values are reduced modulo the group order by the arithmetic provider
// during multiplication; the type itself stores the full 256 bits.
type Scalar struct {
	v uint256.Int
}

// NewScalar returns a scalar holding the given small value.
func NewScalar(v uint64) *Scalar {
	var s Scalar
	s.v.SetUint64(v)
	return &s
}

// ScalarFromBytes constructs a scalar from exactly 32 big-endian bytes.
func ScalarFromBytes(b []byte) (*Scalar, error) {
	if len(b) != ScalarSize {
		return nil, ErrInvalidSize
	}
	var s Scalar
	s.v.SetBytes(b)
	return &s, nil
}

// Bytes32 returns the big-endian byte form. Callers holding secrets
// should wipe the returned array after use.
func (s *Scalar) Bytes32() [32]byte {
	return s.v.Bytes32()
}

// Wipe zeroes the scalar's storage. The scalar remains usable and holds
// the value zero afterwards.
func (s *Scalar) Wipe() {
	s.v.Clear()
}

// Equal reports whether s and other hold the same value.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.v.Eq(&other.v)
}

// MulG1 returns k*e; scalar multiplication is commutative in argument
// order.
func (s *Scalar) MulG1(e *G1Element) *G1Element {
	return e.Mul(s)
}

// MulG2 returns k*e.
func (s *Scalar) MulG2(e *G2Element) *G2Element {
	return e.Mul(s)
}

// writeBigEndian copies the scalar's big-endian bytes into dst (len 32)
// and wipes the intermediate stack copy.
func (s *Scalar) writeBigEndian(dst []byte) {
	b := s.v.Bytes32()
	copy(dst, b[:])
	for i := range b {
		b[i] = 0
	}
}

// wipeBigInt zeroes the word storage of a big.Int that held staged
// secret bytes. math/big offers no wiping deallocation of its own.
func wipeBigInt(v *big.Int) {
	words := v.Bits()
	for i := range words {
		words[i] = 0
	}
}
