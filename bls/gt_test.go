package bls

import (
	"bytes"
	"errors"
	"testing"
)

// TestGTUnityEncoding checks the encoding of the multiplicative
// identity: the first tower coordinate is one, everything else zero.
func TestGTUnityEncoding(t *testing.T) {
	enc := GTUnity().Serialize()
	if len(enc) != GTSize {
		t.Fatalf("unity encoding length = %d, want %d", len(enc), GTSize)
	}
	if enc[47] != 0x01 {
		t.Fatalf("unity first coordinate = %x, want ...01", enc[:48])
	}
	if !allZero(enc[:47]) || !allZero(enc[48:]) {
		t.Fatal("unity encoding has unexpected non-zero bytes")
	}

	dec, err := GTFromBytes(enc)
	if err != nil {
		t.Fatalf("GTFromBytes(unity) failed: %v", err)
	}
	if !dec.Equal(GTUnity()) {
		t.Fatal("decoded unity != unity")
	}
}

// TestGTDecodeSizeStrict rejects every length except 576.
func TestGTDecodeSizeStrict(t *testing.T) {
	for _, n := range []int{0, 48, 96, 575, 577} {
		if _, err := GTFromBytesUnchecked(make([]byte, n)); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("len %d: got %v, want ErrInvalidSize", n, err)
		}
	}
}

// TestGTPairingRoundTrip serializes a pairing output and decodes it
// through the checked path.
func TestGTPairingRoundTrip(t *testing.T) {
	r, err := Pair(G1Generator(), G2Generator())
	if err != nil {
		t.Fatalf("Pair failed: %v", err)
	}
	enc := r.Serialize()
	if len(enc) != GTSize {
		t.Fatalf("encoding length = %d, want %d", len(enc), GTSize)
	}
	dec, err := GTFromBytes(enc)
	if err != nil {
		t.Fatalf("GTFromBytes(pairing output) failed: %v", err)
	}
	if !dec.Equal(r) {
		t.Fatal("pairing output round trip mismatch")
	}
	if !bytes.Equal(dec.Serialize(), enc) {
		t.Fatal("re-encoding differs from original encoding")
	}
}

// TestGTCoordinateOutOfRange rejects a sub-component >= p.
func TestGTCoordinateOutOfRange(t *testing.T) {
	enc := GTUnity().Serialize()
	copy(enc[:48], mustDecodeHex(48, blsPHex))
	if _, err := GTFromBytesUnchecked(enc); !errors.Is(err, ErrCoordinateOutOfRange) {
		t.Fatalf("got %v, want ErrCoordinateOutOfRange", err)
	}
}

// TestGTSubgroupCheck accepts 1+u through the unchecked path only; the
// element is a valid field value but not in the pairing target
// subgroup.
func TestGTSubgroupCheck(t *testing.T) {
	enc := GTUnity().Serialize()
	enc[95] = 0x01 // second tower coordinate = 1, element becomes 1+u

	if _, err := GTFromBytesUnchecked(enc); err != nil {
		t.Fatalf("unchecked decode rejected a valid field element: %v", err)
	}
	if _, err := GTFromBytes(enc); !errors.Is(err, ErrNotInTargetSubgroup) {
		t.Fatalf("got %v, want ErrNotInTargetSubgroup", err)
	}
}

// TestGTMul checks unity is neutral and multiplication matches the
// combined-pairing use.
func TestGTMul(t *testing.T) {
	r, err := Pair(G1Generator(), G2Generator())
	if err != nil {
		t.Fatalf("Pair failed: %v", err)
	}
	if !r.Mul(GTUnity()).Equal(r) {
		t.Fatal("r * 1 != r")
	}
	if !GTUnity().Mul(r).Equal(r) {
		t.Fatal("1 * r != r")
	}
	if r.Mul(r).Equal(r) {
		t.Fatal("r * r == r for non-unity r")
	}
}

func TestGTFromNative(t *testing.T) {
	u := GTUnity()
	native := u.Native()
	if !GTFromNative(&native).Equal(u) {
		t.Fatal("FromNative(Native()) != original")
	}
}

func TestGTText(t *testing.T) {
	r, err := Pair(G1Generator(), G2Generator())
	if err != nil {
		t.Fatalf("Pair failed: %v", err)
	}
	txt, err := r.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	var dec GTElement
	if err := dec.UnmarshalText(txt); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if !dec.Equal(r) {
		t.Fatal("text round trip mismatch")
	}
}
