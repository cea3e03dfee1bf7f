package testutils

import (
	"crypto/rand"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// RandomSymbols returns n uniformly random values of T.
func RandomSymbols[T Unsigned](t *testing.T, n int) []T {
	buf := make([]byte, 8*n)
	_, err := rand.Read(buf)
	require.NoError(t, err)

	symbols := make([]T, n)
	for i := range symbols {
		symbols[i] = T(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	return symbols
}

// BitDump renders data as one line per byte of 0/1 characters, MSB first.
func BitDump(data []byte) string {
	var sb strings.Builder
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			if b>>i&1 == 1 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RequireBits fails the test with a unified diff of the bit dumps when
// actual differs from expected.
func RequireBits(t *testing.T, expected, actual []byte) {
	t.Helper()
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(BitDump(expected)),
		B:        difflib.SplitLines(BitDump(actual)),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	if diff != "" {
		t.Fatalf("bit mismatch:\n%s", diff)
	}
}
