package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockRoundTrip(t *testing.T) {
	symbols := []uint16{0, 1, 7, 8, 300, 65535}

	b, err := EncodeBlock(4, symbols)
	require.NoError(t, err)
	assert.Equal(t, uint(16), b.Width)
	assert.Equal(t, uint(4), b.K)
	assert.Equal(t, len(symbols), b.Count)

	decoded, err := DecodeBlock[uint16](b)
	require.NoError(t, err)
	assert.Equal(t, symbols, decoded)
}

func TestBlockRecord(t *testing.T) {
	b, err := EncodeBlock(3, []uint8{2, 15, 255})
	require.NoError(t, err)

	record := b.Bytes()
	assert.Equal(t, []byte{8, 3, 3}, record[:3])

	parsed, err := BlockFromBytes(record)
	require.NoError(t, err)
	assert.Equal(t, b, parsed)
	assert.Equal(t, b.Hash(), parsed.Hash())
}

func TestBlockWidthMismatch(t *testing.T) {
	b, err := EncodeBlock(2, []uint32{1, 2, 3})
	require.NoError(t, err)

	_, err = DecodeBlock[uint64](b)
	assert.ErrorIs(t, err, ErrWidthMismatch)
}

func TestBlockInvalidK(t *testing.T) {
	_, err := EncodeBlock(9, []uint8{1})
	assert.Error(t, err)
}

func TestBlockFromBytesCorrupt(t *testing.T) {
	testCases := []struct {
		name   string
		record []byte
	}{
		{"empty", nil},
		{"missing count", []byte{8, 3}},
		{"odd width", []byte{12, 3, 0}},
		{"k above width", []byte{8, 9, 0}},
		{"truncated natural", []byte{8, 3, 0x80}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BlockFromBytes(tc.record)
			assert.ErrorIs(t, err, ErrCorruptRecord)
		})
	}
}

func TestBlockHashDependsOnParameters(t *testing.T) {
	a, err := EncodeBlock(3, []uint8{1, 2, 3})
	require.NoError(t, err)
	b, err := EncodeBlock(4, []uint8{1, 2, 3})
	require.NoError(t, err)

	assert.NotEqual(t, a.Hash(), b.Hash())
}
