package pebble

import (
	"errors"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/eigerco/rice/pkg/db"
	"github.com/eigerco/rice/pkg/log"
)

// KVStore implements db.KVStore on a pebble database.
type KVStore struct {
	db     *pebble.DB
	closed bool
	mu     sync.RWMutex
}

var _ db.KVStore = (*KVStore)(nil)

// NewKVStore opens a store kept entirely in memory.
func NewKVStore() (*KVStore, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()})
}

// Open opens, creating if needed, a store persisted in the directory at path.
func Open(path string) (*KVStore, error) {
	return open(path, &pebble.Options{
		Cache:                       pebble.NewCache(64 * 1024 * 1024), // 64MB
		MemTableSize:                32 * 1024 * 1024,                  // 32MB
		MemTableStopWritesThreshold: 4,                                 // 4 x 32MB = 128MB of queued memtables
	})
}

func open(path string, opts *pebble.Options) (*KVStore, error) {
	pdb, err := pebble.Open(path, opts)
	if opts.Cache != nil {
		// pebble holds its own reference while the database is open.
		opts.Cache.Unref()
	}
	if err != nil {
		return nil, err
	}
	log.Store.Debug().Str("path", path).Msg("opened kv store")
	return &KVStore{db: pdb}, nil
}

func (p *KVStore) Get(key []byte) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrClosed
	}

	value, closer, err := p.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

func (p *KVStore) Put(key, value []byte) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}
	return p.db.Set(key, value, pebble.Sync)
}

func (p *KVStore) Delete(key []byte) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}
	return p.db.Delete(key, pebble.Sync)
}

func (p *KVStore) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.db.Close()
}
