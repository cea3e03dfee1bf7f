package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

const HashSize = blake2b.Size256

// Hash identifies an encoded block by content.
type Hash [HashSize]byte

func HashData(data []byte) Hash {
	return blake2b.Sum256(data)
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// ParseHash decodes a hex string produced by Hash.String.
func ParseHash(s string) (Hash, error) {
	var h Hash
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	if len(b) != HashSize {
		return h, hex.ErrLength
	}
	copy(h[:], b)
	return h, nil
}
