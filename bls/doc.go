// Package bls implements the canonical compressed wire encoding for
// BLS12-381 group elements: the short group G1 (48 bytes), the long
// group G2 (96 bytes) and the pairing target group GT (576 bytes).
//
// The encoding follows the widely deployed "zcash" format: a point is
// represented by its big-endian x-coordinate with three flag bits packed
// into the most significant bits of the first byte (compression,
// infinity, and the sign of y). Decoding is strict: for every group
// element there is exactly one byte string that decodes to it, and any
// other byte string is rejected with a typed error. This rules out
// encoding malleability, which signature schemes built on these groups
// depend on.
//
// Curve and field arithmetic (point addition, scalar multiplication, the
// optimal ate pairing, hash-to-curve, and the on-curve and subgroup
// predicates) is delegated to github.com/consensys/gnark-crypto; this
// package owns only the element value types, their invariants, and the
// byte-level codec.
//
// All three element types are immutable value objects and safe for
// concurrent use. Scalar operands used in multiplication may carry
// secret key material and are staged through a wiping buffer, see
// Scalar and internal/secmem.
package bls
