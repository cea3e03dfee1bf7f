package store

import "errors"

var (
	ErrBlockNotFound = errors.New("block not found")
	ErrStoreClosed   = errors.New("block store is closed")
	ErrEmptyName     = errors.New("block name is empty")
	ErrCorruptRecord = errors.New("corrupt block record")
	ErrWidthMismatch = errors.New("block width does not match symbol type")
)

const (
	ErrFailedBatchCommit = "failed to commit batch: %w"
)

// Prefix constants for all store types
const (
	prefixBlock byte = iota + 1
	prefixName
)

// PrefixToString converts a prefix byte to a string
func PrefixToString(p byte) string {
	switch p {
	case prefixBlock:
		return "block"
	case prefixName:
		return "name"
	default:
		return "unknown"
	}
}

// makeKey creates a key from a prefix and an identifier
func makeKey(prefix byte, id []byte) []byte {
	key := make([]byte, 1+len(id))
	key[0] = prefix
	copy(key[1:], id)
	return key
}
