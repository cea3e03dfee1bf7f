package store

import (
	"fmt"
	"math"

	"github.com/eigerco/rice/internal/crypto"
	"github.com/eigerco/rice/pkg/serialization/codec"
	"github.com/eigerco/rice/pkg/serialization/codec/rice"
)

// Block is a rice-encoded symbol sequence together with what a reader needs
// to decode it: the encoding itself carries neither the parameters nor the
// symbol count.
type Block struct {
	Width uint
	K     uint
	Count int
	Data  []byte
}

// EncodeBlock encodes symbols with k literal low bits.
func EncodeBlock[T rice.Unsigned](k uint, symbols []T) (Block, error) {
	c, err := codec.NewRiceCodec[T](k)
	if err != nil {
		return Block{}, err
	}
	data, err := c.Marshal(symbols)
	if err != nil {
		return Block{}, err
	}
	return Block{Width: c.Width(), K: k, Count: len(symbols), Data: data}, nil
}

// DecodeBlock decodes the symbols of b, which must have been encoded with
// symbols of type T.
func DecodeBlock[T rice.Unsigned](b Block) ([]T, error) {
	if w := rice.Width[T](); w != b.Width {
		return nil, fmt.Errorf("%w: block is %d bits, type is %d bits", ErrWidthMismatch, b.Width, w)
	}
	c, err := codec.NewRiceCodec[T](b.K)
	if err != nil {
		return nil, err
	}
	return c.Unmarshal(b.Data, b.Count)
}

// Bytes serializes the block as its width, k and count as natural numbers
// followed by the encoded data.
func (b Block) Bytes() []byte {
	out := make([]byte, 0, 3+len(b.Data))
	out = codec.AppendNatural(out, uint64(b.Width))
	out = codec.AppendNatural(out, uint64(b.K))
	out = codec.AppendNatural(out, uint64(b.Count))
	return append(out, b.Data...)
}

// Hash identifies the block by the content of its record.
func (b Block) Hash() crypto.Hash {
	return crypto.HashData(b.Bytes())
}

// BlockFromBytes parses a record produced by Block.Bytes.
func BlockFromBytes(data []byte) (Block, error) {
	var fields [3]uint64
	for i := range fields {
		v, n, err := codec.ConsumeNatural(data)
		if err != nil {
			return Block{}, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
		}
		fields[i] = v
		data = data[n:]
	}
	width, k, count := fields[0], fields[1], fields[2]
	switch width {
	case 8, 16, 32, 64:
	default:
		return Block{}, fmt.Errorf("%w: unsupported width %d", ErrCorruptRecord, width)
	}
	if k > width {
		return Block{}, fmt.Errorf("%w: k=%d exceeds width %d", ErrCorruptRecord, k, width)
	}
	if count > math.MaxInt32 {
		return Block{}, fmt.Errorf("%w: count %d out of range", ErrCorruptRecord, count)
	}
	return Block{
		Width: uint(width),
		K:     uint(k),
		Count: int(count),
		Data:  append([]byte(nil), data...),
	}, nil
}
