package bls

// Flag bits packed into the most significant bits of the first byte of a
// compressed encoding.
const (
	flagCompression = 0x80 // bit 7: encoding is compressed
	flagInfinity    = 0x40 // bit 6: point is the group identity
	flagSign        = 0x20 // bit 5: y is the lexicographically larger root
	flagMask        = 0xE0
)

// pointTag classifies the 3-bit header of a compressed encoding. It is
// derived once at decode time so the canonical-form rules live in one
// place instead of mask logic scattered through the per-group codecs.
type pointTag uint8

const (
	tagInfinity pointTag = iota
	tagCompressedSmallerY
	tagCompressedLargerY
)

// parseCompressedHeader validates the layout rules shared by the G1 and
// G2 wire forms: buf holds the full encoding with the flag byte at index
// 0 and the x-coordinate in the remaining bits. On success it returns
// the header tag and, for non-infinity encodings, a copy of buf with the
// flag bits cleared (the raw coordinate bytes).
//
// Check order mirrors the canonical rules: infinity encodings must be
// exactly 0xC0 followed by zeros, non-infinity encodings must start with
// 0b10 and may not have an all-zero coordinate.
func parseCompressedHeader(buf []byte) (pointTag, []byte, error) {
	coord := make([]byte, len(buf))
	copy(coord, buf)
	coord[0] &= ^byte(flagMask)
	zeros := allZero(coord)

	if buf[0]&(flagCompression|flagInfinity) == flagCompression|flagInfinity {
		if buf[0] != flagCompression|flagInfinity || !zeros {
			return 0, nil, ErrNonCanonicalInfinity
		}
		return tagInfinity, nil, nil
	}
	if buf[0]&(flagCompression|flagInfinity) != flagCompression {
		return 0, nil, ErrMalformedHeader
	}
	if zeros {
		return 0, nil, ErrZeroX
	}
	if buf[0]&flagSign != 0 {
		return tagCompressedLargerY, coord, nil
	}
	return tagCompressedSmallerY, coord, nil
}

func allZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}
