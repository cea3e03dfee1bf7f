package codec

import "errors"

var (
	ErrInvalidCount = errors.New("codec: negative symbol count")
	// ErrTruncatedNatural is returned when a natural number's prefix announces
	// more bytes than remain in the input.
	ErrTruncatedNatural = errors.New("codec: truncated natural number")
)

const (
	ErrEncodingSymbol = "encoding symbol %d: %w"
	ErrDecodingSymbol = "decoding symbol %d: %w"
	ErrFlushing       = "flushing encoded sequence: %w"
)
