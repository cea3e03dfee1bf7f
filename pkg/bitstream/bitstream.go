// Package bitstream provides the MSB-first bit-level streams the rice codec
// reads from and writes to.
package bitstream

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// MaxBits is the widest value a single WriteBits or ReadBits call can carry.
const MaxBits = 64

var ErrBitCount = errors.New("bitstream: invalid number of bits")

// BitWriter is the sink side of a bit stream. WriteBits writes the low n bits
// of r, most significant bit first.
type BitWriter interface {
	WriteBool(b bool) error
	WriteBits(r uint64, n uint8) error
}

// BitReader is the source side of a bit stream.
type BitReader interface {
	ReadBool() (bool, error)
	ReadBits(n uint8) (uint64, error)
}

// Writer writes bits to an io.Writer and keeps count of how many it wrote.
// It is not safe for concurrent use.
type Writer struct {
	bw   *bitio.Writer
	bits uint64
}

// NewWriter returns a Writer that packs bits into bytes of out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(out)}
}

func (w *Writer) WriteBool(b bool) error {
	if err := w.bw.WriteBool(b); err != nil {
		return err
	}
	w.bits++
	return nil
}

func (w *Writer) WriteBits(r uint64, n uint8) error {
	if n > MaxBits {
		return fmt.Errorf("%w: n (%d) exceeds %d", ErrBitCount, n, MaxBits)
	}
	if n == 0 {
		return nil
	}
	if n < MaxBits {
		r &= 1<<n - 1
	}
	if err := w.bw.WriteBits(r, n); err != nil {
		return err
	}
	w.bits += uint64(n)
	return nil
}

// Pad writes n zero bits. Used by callers to terminate a sequence so the
// final byte can be flushed safely.
func (w *Writer) Pad(n uint) error {
	for n > 0 {
		chunk := uint8(MaxBits)
		if n < MaxBits {
			chunk = uint8(n)
		}
		if err := w.WriteBits(0, chunk); err != nil {
			return err
		}
		n -= uint(chunk)
	}
	return nil
}

// Bits returns the number of bits written so far, excluding alignment
// padding added by Close.
func (w *Writer) Bits() uint64 {
	return w.bits
}

// Close writes out any partially filled byte, padding it with zero bits.
// It does not close the underlying io.Writer.
func (w *Writer) Close() error {
	return w.bw.Close()
}

// Reader reads bits from an io.Reader and keeps count of how many it read.
// It is not safe for concurrent use.
type Reader struct {
	br   *bitio.Reader
	bits uint64
}

// NewReader returns a Reader that unpacks bits from the bytes of in.
func NewReader(in io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(in)}
}

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.br.ReadBool()
	if err != nil {
		return false, err
	}
	r.bits++
	return b, nil
}

func (r *Reader) ReadBits(n uint8) (uint64, error) {
	if n > MaxBits {
		return 0, fmt.Errorf("%w: n (%d) exceeds %d", ErrBitCount, n, MaxBits)
	}
	if n == 0 {
		return 0, nil
	}
	u, err := r.br.ReadBits(n)
	if err != nil {
		return 0, err
	}
	r.bits += uint64(n)
	return u, nil
}

// Bits returns the number of bits consumed so far.
func (r *Reader) Bits() uint64 {
	return r.bits
}

// Counter is a BitWriter that discards its input and only counts bits.
type Counter struct {
	bits uint64
}

func (c *Counter) WriteBool(bool) error {
	c.bits++
	return nil
}

func (c *Counter) WriteBits(_ uint64, n uint8) error {
	if n > MaxBits {
		return fmt.Errorf("%w: n (%d) exceeds %d", ErrBitCount, n, MaxBits)
	}
	c.bits += uint64(n)
	return nil
}

func (c *Counter) Bits() uint64 {
	return c.bits
}

// Reset zeroes the count.
func (c *Counter) Reset() {
	c.bits = 0
}
