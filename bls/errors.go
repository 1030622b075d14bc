package bls

import "errors"

// Decode failures are synchronous and final: there is no recovery or
// retry inside this package. Callers distinguish the kinds below with
// errors.Is.
var (
	// ErrInvalidSize reports an input whose length is not exactly the
	// wire size of the requested element type (48, 96 or 576 bytes).
	ErrInvalidSize = errors.New("bls: invalid encoding size")

	// ErrMalformedHeader reports a non-infinity encoding whose first
	// byte does not start with bits 0b10.
	ErrMalformedHeader = errors.New("bls: compressed encoding must start with 0b10")

	// ErrMalformedSecondComponent reports a G2 encoding whose 48th byte
	// does not start with bits 0b000.
	ErrMalformedSecondComponent = errors.New("bls: G2 second component must start with 0b000")

	// ErrNonCanonicalInfinity reports an encoding with the infinity flag
	// set that is not the canonical 0xC0-followed-by-zeros form.
	ErrNonCanonicalInfinity = errors.New("bls: infinity encoding must be canonical")

	// ErrZeroX reports a non-infinity encoding whose coordinate bits are
	// all zero. A zero x-coordinate is reserved for canonical infinity.
	ErrZeroX = errors.New("bls: non-infinity encoding cannot be all zeros")

	// ErrInvalidPoint reports a coordinate that does not describe a point
	// on the curve: x out of field range, x with no matching y, or a
	// native point failing the on-curve check.
	ErrInvalidPoint = errors.New("bls: point is not on the curve")

	// ErrCoordinateOutOfRange reports a GT sub-component that is not a
	// canonically encoded field element (value >= p).
	ErrCoordinateOutOfRange = errors.New("bls: field coordinate out of canonical range")

	// ErrNotInTargetSubgroup reports a GT element outside the pairing
	// target subgroup.
	ErrNotInTargetSubgroup = errors.New("bls: element is not in the target subgroup")

	// ErrMismatchedLengths reports pairing-product inputs of unequal length.
	ErrMismatchedLengths = errors.New("bls: mismatched pairing input lengths")
)
