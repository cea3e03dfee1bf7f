package safemath

import (
	"math"
	"math/bits"
)

type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Magnitude is the outcome of comparing a quantity against a bit-count
// threshold that lives in the uint32 scale.
type Magnitude uint8

const (
	// Below means the value fits and is strictly smaller than the threshold.
	Below Magnitude = iota
	// AtOrAbove means the value fits and is greater than or equal to the threshold.
	AtOrAbove
	// Unrepresentable means the value does not fit the threshold's scale at all.
	Unrepresentable
)

func (m Magnitude) String() string {
	switch m {
	case Below:
		return "below"
	case AtOrAbove:
		return "at-or-above"
	case Unrepresentable:
		return "unrepresentable"
	default:
		return "unknown"
	}
}

// Add returns a+b and whether the sum fits in T.
func Add[T Unsigned](a, b T) (T, bool) {
	v, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 || v > uint64(maxOf[T]()) {
		return 0, false
	}
	return T(v), true
}

// Sub returns a-b and whether the difference did not underflow.
func Sub[T Unsigned](a, b T) (T, bool) {
	v, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		return 0, false
	}
	return T(v), true
}

// Compare classifies value against threshold. A value that cannot be
// narrowed to uint32 is Unrepresentable, never silently truncated.
func Compare[T Unsigned](value T, threshold uint32) Magnitude {
	if uint64(value) > math.MaxUint32 {
		return Unrepresentable
	}
	if uint32(value) >= threshold {
		return AtOrAbove
	}
	return Below
}

// Exceeds reports whether value is at least threshold. Unrepresentable
// values always exceed.
func Exceeds[T Unsigned](value T, threshold uint32) bool {
	return Compare(value, threshold) != Below
}

// CompareSum compares a+b against threshold without wrapping: a sum that
// overflows uint64 is Unrepresentable.
func CompareSum(a, b uint64, threshold uint32) Magnitude {
	sum, ok := Add(a, b)
	if !ok {
		return Unrepresentable
	}
	return Compare(sum, threshold)
}

func ExceedsSum(a, b uint64, threshold uint32) bool {
	return CompareSum(a, b, threshold) != Below
}

func maxOf[T Unsigned]() T {
	return ^T(0)
}
