// Package rice implements a bounded-width Golomb-Rice code for unsigned
// integers.
//
// Each symbol is written in one of two shapes, MSB first:
//
//	rice form: 1 · q one bits · 0 · k low bits     (q = symbol >> k)
//	raw form:  0 · W bits of the symbol
//
// The rice form is used only while it is strictly shorter than the raw form,
// so no symbol ever takes more than W+1 bits. The format carries no framing
// and no integrity check: decoding bits that were not produced by a matching
// encoder returns a meaningless value rather than an error.
package rice

import (
	"fmt"

	"github.com/eigerco/rice/internal/safemath"
	"github.com/eigerco/rice/pkg/bitstream"
)

// unaryChunk is the longest run of one bits emitted with a single WriteBits.
const unaryChunk = 32

// Form identifies which of the two encodings a symbol takes.
type Form uint8

const (
	FormRaw Form = iota
	FormRice
)

func (f Form) String() string {
	switch f {
	case FormRaw:
		return "raw"
	case FormRice:
		return "rice"
	default:
		return "unknown"
	}
}

// Codec holds the number of literal low bits k. It is an immutable value and
// may be shared across goroutines; each call only touches the stream passed
// to it.
type Codec[T Unsigned] struct {
	k uint
}

// New returns a codec carrying k low bits literally. k must not exceed the
// bit width of T.
func New[T Unsigned](k uint) (Codec[T], error) {
	if w := Width[T](); k > w {
		return Codec[T]{}, fmt.Errorf("%w: k=%d exceeds symbol width %d", ErrInvalidParameter, k, w)
	}
	return Codec[T]{k: k}, nil
}

// MustNew is like New but panics on an invalid k.
func MustNew[T Unsigned](k uint) Codec[T] {
	c, err := New[T](k)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Codec[T]) K() uint {
	return c.k
}

func (c Codec[T]) Width() uint {
	return Width[T]()
}

// Classify reports the form EncodeWord would choose for symbol.
func (c Codec[T]) Classify(symbol T) Form {
	// The rice cost q+k+2 is computed checked: for wide symbols and small k
	// the quotient alone can be close to the type maximum.
	q := uint64(symbol >> c.k)
	if safemath.ExceedsSum(q, uint64(c.k)+2, uint32(Width[T]())+1) {
		return FormRaw
	}
	return FormRice
}

// EncodedBits returns the number of bits EncodeWord writes for symbol.
func (c Codec[T]) EncodedBits(symbol T) uint {
	if c.Classify(symbol) == FormRaw {
		return Width[T]() + 1
	}
	return uint(symbol>>c.k) + c.k + 2
}

// MaxQuotient returns the longest unary run the encoder can emit. ok is false
// when k leaves no room for the rice form at all and every symbol is raw.
func (c Codec[T]) MaxQuotient() (q uint64, ok bool) {
	return safemath.Sub(uint64(Width[T]()), uint64(c.k)+2)
}

// EncodeWord writes symbol to w. Errors from w are returned as is.
func (c Codec[T]) EncodeWord(symbol T, w bitstream.BitWriter) error {
	if c.Classify(symbol) == FormRaw {
		if err := w.WriteBool(false); err != nil {
			return err
		}
		return w.WriteBits(uint64(symbol), uint8(Width[T]()))
	}

	if err := w.WriteBool(true); err != nil {
		return err
	}
	if err := writeUnary(w, uint64(symbol>>c.k)); err != nil {
		return err
	}
	if c.k == 0 {
		return nil
	}
	return w.WriteBits(uint64(symbol&MustMask[T](c.k)), uint8(c.k))
}

// DecodeWord reads one symbol from r. Errors from r, including running out
// of input part way through a symbol, are returned as is.
func (c Codec[T]) DecodeWord(r bitstream.BitReader) (T, error) {
	rice, err := r.ReadBool()
	if err != nil {
		return 0, err
	}
	if !rice {
		v, err := r.ReadBits(uint8(Width[T]()))
		if err != nil {
			return 0, err
		}
		return T(v), nil
	}

	var q T
	for {
		one, err := r.ReadBool()
		if err != nil {
			return 0, err
		}
		if !one {
			break
		}
		q++
	}

	result := q << c.k
	if c.k > 0 {
		low, err := r.ReadBits(uint8(c.k))
		if err != nil {
			return 0, err
		}
		result |= T(low)
	}
	return result, nil
}

// writeUnary writes q one bits followed by a zero terminator.
func writeUnary(w bitstream.BitWriter, q uint64) error {
	for ; q >= unaryChunk; q -= unaryChunk {
		if err := w.WriteBits(uint64(MustMask[uint32](unaryChunk)), unaryChunk); err != nil {
			return err
		}
	}
	if q > 0 {
		if err := w.WriteBits(uint64(MustMask[uint32](uint(q))), uint8(q)); err != nil {
			return err
		}
	}
	return w.WriteBool(false)
}
