package piece

import (
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentIndex_FloorAndAscend(t *testing.T) {
	idx := newFragmentIndex(originalFragment(8))
	idx.remove(0)
	idx.set(0, originalFragment(3))
	idx.set(3, insertionFragment(0, 5))
	idx.set(8, originalFragment(3))

	key, frag := idx.floor(0)
	assert.Equal(t, 0, key)
	assert.Equal(t, 3, frag.Length)

	key, frag = idx.floor(4)
	assert.Equal(t, 3, key)
	assert.Equal(t, Insertion, frag.Source)

	key, frag = idx.floor(10)
	assert.Equal(t, 8, key)
	assert.Equal(t, 3, frag.Length)

	require.Equal(t, []int{3, 8}, idx.affected(3))
	require.Equal(t, []int{0, 3, 8}, idx.affected(0))
}

func TestFragmentIndex_EmptyFloorPanics(t *testing.T) {
	idx := &fragmentIndex{tree: btree.New(btreeDegree)}
	assert.Panics(t, func() { idx.floor(0) })
}

func TestFragmentIndex_Last(t *testing.T) {
	idx := newFragmentIndex(originalFragment(4))
	idx.set(4, insertionFragment(0, 2))
	key, frag := idx.last()
	assert.Equal(t, 4, key)
	assert.Equal(t, 2, frag.Length)
}
