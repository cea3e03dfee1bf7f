package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/rice/internal/store"
	"github.com/eigerco/rice/pkg/db/pebble"
)

func TestGenerateBounds(t *testing.T) {
	cfg := config{count: 1000, spread: 2, seed: 7}

	for _, s := range generate[uint16](cfg, 3) {
		assert.Less(t, s, uint16(1<<5))
	}

	// k+spread past the width draws from the whole type.
	wide := generate[uint8](cfg, 8)
	assert.Len(t, wide, cfg.count)
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := config{count: 64, spread: 3, seed: 42}
	assert.Equal(t, generate[uint32](cfg, 4), generate[uint32](cfg, 4))
	assert.NotEqual(t, generate[uint32](cfg, 4), generate[uint32](cfg, 5))
}

func TestRunPersists(t *testing.T) {
	dir := t.TempDir()
	cfg := config{width: 16, kmin: 2, kmax: 4, count: 500, spread: 3, seed: 1, dbPath: dir}

	require.NoError(t, run[uint16](cfg))

	kv, err := pebble.Open(dir)
	require.NoError(t, err)
	blocks := store.NewBlocks(kv)
	defer blocks.Close()

	names, err := blocks.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"w16-k2-s1", "w16-k3-s1", "w16-k4-s1"}, names)

	b, err := blocks.GetByName("w16-k3-s1")
	require.NoError(t, err)
	symbols, err := store.DecodeBlock[uint16](b)
	require.NoError(t, err)
	assert.Equal(t, generate[uint16](cfg, 3), symbols)
}

func TestRunRejectsWideK(t *testing.T) {
	cfg := config{width: 8, kmin: 0, kmax: 9, count: 10, spread: 1, seed: 1}
	assert.Error(t, run[uint8](cfg))
}
