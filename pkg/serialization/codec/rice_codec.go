package codec

import (
	"bytes"
	"fmt"

	"github.com/eigerco/rice/pkg/bitstream"
	"github.com/eigerco/rice/pkg/log"
	"github.com/eigerco/rice/pkg/serialization/codec/rice"
)

// RiceCodec implements the Codec interface on top of the bounded Golomb-Rice
// word codec.
type RiceCodec[T rice.Unsigned] struct {
	rc rice.Codec[T]
}

// NewRiceCodec initializes a sequence codec carrying k literal low bits per
// symbol.
func NewRiceCodec[T rice.Unsigned](k uint) (*RiceCodec[T], error) {
	rc, err := rice.New[T](k)
	if err != nil {
		return nil, err
	}
	return &RiceCodec[T]{rc: rc}, nil
}

func (c *RiceCodec[T]) K() uint {
	return c.rc.K()
}

func (c *RiceCodec[T]) Width() uint {
	return c.rc.Width()
}

// Marshal encodes symbols back to back, then appends W zero bits and pads to
// a byte boundary so the tail can be flushed.
func (c *RiceCodec[T]) Marshal(symbols []T) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := bitstream.NewWriter(buf)
	for i, s := range symbols {
		if err := c.rc.EncodeWord(s, w); err != nil {
			return nil, fmt.Errorf(ErrEncodingSymbol, i, err)
		}
	}
	payload := w.Bits()
	if err := w.Pad(c.rc.Width()); err != nil {
		return nil, fmt.Errorf(ErrFlushing, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf(ErrFlushing, err)
	}

	log.Codec.Debug().
		Int("symbols", len(symbols)).
		Uint("k", c.rc.K()).
		Uint64("payloadBits", payload).
		Int("bytes", buf.Len()).
		Msg("encoded sequence")
	return buf.Bytes(), nil
}

// Unmarshal decodes exactly n symbols from data. Trailing padding is ignored.
func (c *RiceCodec[T]) Unmarshal(data []byte, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	r := bitstream.NewReader(bytes.NewReader(data))
	symbols := make([]T, n)
	for i := range symbols {
		s, err := c.rc.DecodeWord(r)
		if err != nil {
			return nil, fmt.Errorf(ErrDecodingSymbol, i, err)
		}
		symbols[i] = s
	}

	log.Codec.Debug().
		Int("symbols", n).
		Uint("k", c.rc.K()).
		Uint64("consumedBits", r.Bits()).
		Msg("decoded sequence")
	return symbols, nil
}
