package codec

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// AppendNatural appends x to dst in the general natural number layout: a
// prefix byte whose leading one bits give the count l of little-endian tail
// bytes, with the high bits of x packed into the rest of the prefix. Values
// of 2^56 and above use a 0xFF prefix followed by all eight bytes.
func AppendNatural(dst []byte, x uint64) []byte {
	for l := 0; l < 8; l++ {
		if x < 1<<(7*(l+1)) {
			prefix := ^byte(0xFF>>l) | byte(x>>(8*l))
			dst = append(dst, prefix)
			for i := 0; i < l; i++ {
				dst = append(dst, byte(x>>(8*i)))
			}
			return dst
		}
	}
	dst = append(dst, math.MaxUint8)
	return binary.LittleEndian.AppendUint64(dst, x)
}

// ConsumeNatural decodes a natural number from the front of data and returns
// it together with the number of bytes it occupied.
func ConsumeNatural(data []byte) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrTruncatedNatural
	}
	prefix := data[0]
	l := bits.LeadingZeros8(^prefix)
	if len(data) < 1+l {
		return 0, 0, ErrTruncatedNatural
	}
	if l == 8 {
		return binary.LittleEndian.Uint64(data[1:9]), 9, nil
	}

	var x uint64
	for i := 0; i < l; i++ {
		x |= uint64(data[1+i]) << (8 * i)
	}
	x |= uint64(prefix&(math.MaxUint8>>l)) << (8 * l)
	return x, 1 + l, nil
}
