package rice

import (
	"fmt"
	"math/bits"
)

// Unsigned is the set of symbol types the codec can be instantiated with.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the bit width of T.
func Width[T Unsigned]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Mask returns a T with the low nbits set. nbits equal to the width of T
// yields all ones; a full-width shift is never performed.
func Mask[T Unsigned](nbits uint) (T, error) {
	w := Width[T]()
	if nbits > w {
		return 0, fmt.Errorf("%w: mask of %d bits exceeds width %d", ErrInvalidParameter, nbits, w)
	}
	if nbits == w {
		return ^T(0), nil
	}
	return T(1)<<nbits - 1, nil
}

// MustMask is like Mask but panics if nbits exceeds the width of T.
func MustMask[T Unsigned](nbits uint) T {
	m, err := Mask[T](nbits)
	if err != nil {
		panic(err)
	}
	return m
}
