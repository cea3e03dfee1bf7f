package store

import (
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/eigerco/rice/internal/crypto"
	"github.com/eigerco/rice/pkg/db"
	"github.com/eigerco/rice/pkg/db/pebble"
	"github.com/eigerco/rice/pkg/log"
)

// Blocks stores encoded blocks by content hash, with a name index on top.
// Several names may refer to the same block.
type Blocks struct {
	db     db.KVStore
	closed atomic.Bool
}

// NewBlocks creates a new block store using KVStore
func NewBlocks(db db.KVStore) *Blocks {
	return &Blocks{db: db}
}

// Put stores b and points name at it, replacing whatever name referred to
// before. The block record and the name entry are written atomically.
func (s *Blocks) Put(name string, b Block) (crypto.Hash, error) {
	if s.closed.Load() {
		return crypto.Hash{}, ErrStoreClosed
	}
	if name == "" {
		return crypto.Hash{}, ErrEmptyName
	}

	record := b.Bytes()
	hash := crypto.HashData(record)

	batch := s.db.NewBatch()
	defer batch.Close()

	if err := batch.Put(makeKey(prefixBlock, hash[:]), record); err != nil {
		return crypto.Hash{}, fmt.Errorf("store block: %w", err)
	}
	if err := batch.Put(makeKey(prefixName, []byte(name)), hash[:]); err != nil {
		return crypto.Hash{}, fmt.Errorf("store name: %w", err)
	}
	if err := batch.Commit(); err != nil {
		return crypto.Hash{}, fmt.Errorf(ErrFailedBatchCommit, err)
	}

	log.Store.Debug().
		Str("name", name).
		Stringer("hash", hash).
		Int("symbols", b.Count).
		Int("bytes", len(b.Data)).
		Msg("stored block")
	return hash, nil
}

// Get retrieves a block by its hash
func (s *Blocks) Get(hash crypto.Hash) (Block, error) {
	if s.closed.Load() {
		return Block{}, ErrStoreClosed
	}

	record, err := s.db.Get(makeKey(prefixBlock, hash[:]))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return Block{}, ErrBlockNotFound
		}
		return Block{}, fmt.Errorf("get block: %w", err)
	}
	return BlockFromBytes(record)
}

// Lookup returns the hash name refers to.
func (s *Blocks) Lookup(name string) (crypto.Hash, error) {
	if s.closed.Load() {
		return crypto.Hash{}, ErrStoreClosed
	}

	v, err := s.db.Get(makeKey(prefixName, []byte(name)))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return crypto.Hash{}, ErrBlockNotFound
		}
		return crypto.Hash{}, fmt.Errorf("get name: %w", err)
	}
	if len(v) != crypto.HashSize {
		return crypto.Hash{}, fmt.Errorf("%w: name %q holds %d bytes", ErrCorruptRecord, name, len(v))
	}
	return crypto.Hash(v), nil
}

// GetByName retrieves the block name refers to.
func (s *Blocks) GetByName(name string) (Block, error) {
	hash, err := s.Lookup(name)
	if err != nil {
		return Block{}, err
	}
	return s.Get(hash)
}

// Names lists all block names in ascending order.
func (s *Blocks) Names() ([]string, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	iter, err := s.db.NewIterator([]byte{prefixName}, []byte{prefixName + 1})
	if err != nil {
		return nil, fmt.Errorf("create iterator: %w", err)
	}
	defer iter.Close()

	var names []string
	for iter.Next() {
		names = append(names, string(iter.Key()[1:]))
	}
	return names, nil
}

// Delete removes name. The block record goes too once no other name refers
// to it. Deleting an unknown name returns ErrBlockNotFound.
func (s *Blocks) Delete(name string) error {
	hash, err := s.Lookup(name)
	if err != nil {
		return err
	}

	shared, err := s.referencedElsewhere(name, hash)
	if err != nil {
		return err
	}

	batch := s.db.NewBatch()
	defer batch.Close()

	if err := batch.Delete(makeKey(prefixName, []byte(name))); err != nil {
		return fmt.Errorf("delete name: %w", err)
	}
	if !shared {
		if err := batch.Delete(makeKey(prefixBlock, hash[:])); err != nil {
			return fmt.Errorf("delete block: %w", err)
		}
	}
	if err := batch.Commit(); err != nil {
		return fmt.Errorf(ErrFailedBatchCommit, err)
	}

	log.Store.Debug().Str("name", name).Bool("recordKept", shared).Msg("deleted block")
	return nil
}

func (s *Blocks) referencedElsewhere(name string, hash crypto.Hash) (bool, error) {
	iter, err := s.db.NewIterator([]byte{prefixName}, []byte{prefixName + 1})
	if err != nil {
		return false, fmt.Errorf("create iterator: %w", err)
	}
	defer iter.Close()

	for iter.Next() {
		if string(iter.Key()[1:]) == name {
			continue
		}
		v, err := iter.Value()
		if err != nil {
			return false, err
		}
		if bytes.Equal(v, hash[:]) {
			return true, nil
		}
	}
	return false, nil
}

// Close closes the block store and the underlying KVStore
func (s *Blocks) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.db.Close()
}
