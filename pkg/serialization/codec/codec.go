package codec

import "github.com/eigerco/rice/pkg/serialization/codec/rice"

// Codec turns a sequence of symbols into bytes and back. The encoding is not
// self-delimiting, so Unmarshal needs the number of symbols to read.
type Codec[T rice.Unsigned] interface {
	Marshal(symbols []T) ([]byte, error)
	Unmarshal(data []byte, n int) ([]T, error)
	// Width is the bit width of T.
	Width() uint
}
