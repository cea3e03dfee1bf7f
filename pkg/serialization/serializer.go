package serialization

import (
	"errors"
	"fmt"

	"github.com/eigerco/rice/pkg/log"
	"github.com/eigerco/rice/pkg/serialization/codec"
	"github.com/eigerco/rice/pkg/serialization/codec/rice"
)

var ErrRoundTrip = errors.New("decoded symbols differ from the input")

// Serializer provides methods to encode and decode using a specified codec.
type Serializer[T rice.Unsigned] struct {
	codec codec.Codec[T]
}

// NewSerializer initializes a new Serializer with the given codec.
func NewSerializer[T rice.Unsigned](c codec.Codec[T]) *Serializer[T] {
	return &Serializer[T]{codec: c}
}

// Encode serializes the given symbols using the codec.
func (s *Serializer[T]) Encode(symbols []T) ([]byte, error) {
	return s.codec.Marshal(symbols)
}

// Decode deserializes n symbols from data using the codec.
func (s *Serializer[T]) Decode(data []byte, n int) ([]T, error) {
	return s.codec.Unmarshal(data, n)
}

// Gain describes how well a sequence compressed.
type Gain struct {
	Symbols int
	Bytes   int
	// Ratio is encoded bytes over the bytes the symbols occupy unencoded.
	// Values below 1 mean the sequence shrank.
	Ratio float64
	Data  []byte
}

// Measure encodes symbols, checks that they decode back unchanged and
// reports the resulting size.
func (s *Serializer[T]) Measure(symbols []T) (Gain, error) {
	encoded, err := s.Encode(symbols)
	if err != nil {
		return Gain{}, fmt.Errorf("encode: %w", err)
	}
	decoded, err := s.Decode(encoded, len(symbols))
	if err != nil {
		return Gain{}, fmt.Errorf("decode: %w", err)
	}
	for i := range symbols {
		if decoded[i] != symbols[i] {
			return Gain{}, fmt.Errorf("%w: symbol %d is %d, want %d", ErrRoundTrip, i, decoded[i], symbols[i])
		}
	}

	g := Gain{
		Symbols: len(symbols),
		Bytes:   len(encoded),
		Data:    encoded,
	}
	if raw := len(symbols) * int(s.codec.Width()) / 8; raw > 0 {
		g.Ratio = float64(g.Bytes) / float64(raw)
	}
	log.Codec.Debug().
		Int("symbols", g.Symbols).
		Int("bytes", g.Bytes).
		Float64("ratio", g.Ratio).
		Msg("measured gain")
	return g, nil
}
