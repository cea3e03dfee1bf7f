package db

// KVStore is the key-value storage the block store persists encoded
// sequences in.
type KVStore interface {
	Reader
	Writer
	Delete(key []byte) error
	NewBatch() Batch
	NewIterator(start, end []byte) (Iterator, error)
	Close() error
}

type Reader interface {
	Get(key []byte) ([]byte, error)
}

type Writer interface {
	Put(key []byte, value []byte) error
}

// Batch groups writes that are applied atomically on Commit.
type Batch interface {
	Writer
	Delete(key []byte) error
	Commit() error
	Close() error
}

// Iterator walks a key range in ascending order. The first call to Next
// positions it on the first key. Iterators must be closed after use.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() ([]byte, error)
	Valid() bool
	Close() error
}
