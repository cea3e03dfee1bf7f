package codec

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNatural(t *testing.T) {
	testCases := []struct {
		input    uint64
		expected []byte
	}{
		{0, []byte{0}},
		{1, []byte{1}},
		{math.MaxInt8, []byte{127}},
		{1 << 7, []byte{128, 128}},
		{math.MaxUint8, []byte{128, 255}},
		{1 << 8, []byte{129, 0}},
		{(1 << 14) - 1, []byte{191, 255}},
		{1 << 14, []byte{192, 0, 64}},
		{math.MaxUint16, []byte{192, 255, 255}},
		{1 << 21, []byte{224, 0, 0, 32}},
		{1 << 28, []byte{240, 0, 0, 0, 16}},
		{1 << 35, []byte{248, 0, 0, 0, 0, 8}},
		{1 << 42, []byte{252, 0, 0, 0, 0, 0, 4}},
		{1 << 49, []byte{254, 0, 0, 0, 0, 0, 0, 2}},
		{(1 << 56) - 1, []byte{254, 255, 255, 255, 255, 255, 255, 255}},
		{1 << 56, []byte{255, 0, 0, 0, 0, 0, 0, 0, 1}},
		{math.MaxUint64, []byte{255, 255, 255, 255, 255, 255, 255, 255, 255}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("uint64(%d)", tc.input), func(t *testing.T) {
			serialized := AppendNatural(nil, tc.input)
			assert.Equal(t, tc.expected, serialized)

			// Trailing bytes belong to the next field and must be left alone.
			x, n, err := ConsumeNatural(append(serialized, 0xAB))
			require.NoError(t, err)
			assert.Equal(t, tc.input, x)
			assert.Equal(t, len(tc.expected), n)
		})
	}
}

func TestNaturalTruncated(t *testing.T) {
	_, _, err := ConsumeNatural(nil)
	assert.ErrorIs(t, err, ErrTruncatedNatural)

	_, _, err = ConsumeNatural([]byte{192, 0})
	assert.ErrorIs(t, err, ErrTruncatedNatural)

	_, _, err = ConsumeNatural([]byte{255, 0, 0, 0})
	assert.ErrorIs(t, err, ErrTruncatedNatural)
}
