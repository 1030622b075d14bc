package bls

import (
	"encoding/hex"
	"fmt"
)

// Well-known compressed encodings, useful as known-answer values and for
// cheap equality checks against wire input.
var (
	// G1GeneratorCompressed is the canonical 48-byte encoding of the G1
	// generator.
	//
	// Source: draft-irtf-cfrg-pairing-friendly-curves, BLS12-381.
	G1GeneratorCompressed = mustDecodeHex(G1Size,
		"97f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb")

	// G2GeneratorCompressed is the canonical 96-byte encoding of the G2
	// generator.
	//
	// Source: draft-irtf-cfrg-pairing-friendly-curves, BLS12-381.
	G2GeneratorCompressed = mustDecodeHex(G2Size,
		"93e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e"+
			"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8")

	// G1InfinityCompressed is the canonical encoding of the G1 identity:
	// 0xC0 followed by 47 zero bytes.
	G1InfinityCompressed = func() []byte {
		b := make([]byte, G1Size)
		b[0] = flagCompression | flagInfinity
		return b
	}()

	// G2InfinityCompressed is the canonical encoding of the G2 identity:
	// 0xC0 followed by 95 zero bytes.
	G2InfinityCompressed = func() []byte {
		b := make([]byte, G2Size)
		b[0] = flagCompression | flagInfinity
		return b
	}()
)

func mustDecodeHex(size int, s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != size {
		panic(fmt.Sprintf("invalid hex for %d-byte value: %s", size, s))
	}
	return b
}
