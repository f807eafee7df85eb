package piece

import (
	"github.com/google/btree"

	"github.com/jcorbin/piece/internal/perr"
)

// fragmentIndex is the ordered mapping from document-relative start byte to
// Fragment that defines a Document's current visible text. It is backed by
// an in-memory B-tree keyed by start byte, giving point lookup, "largest
// key <= x", and ordered traversal in O(log n).
type fragmentIndex struct {
	tree *btree.BTree
}

// btreeDegree mirrors the degree google/btree's own tests use for small
// in-memory trees; the fragment index is rarely more than a few thousand
// entries even for large documents, so tree shape has little practical
// effect here.
const btreeDegree = 32

type fragEntry struct {
	key  int
	frag Fragment
}

func (e fragEntry) Less(than btree.Item) bool {
	return e.key < than.(fragEntry).key
}

// newFragmentIndex returns an index holding a single fragment keyed at 0:
// every freshly constructed Document holds exactly one fragment.
func newFragmentIndex(initial Fragment) *fragmentIndex {
	idx := &fragmentIndex{tree: btree.New(btreeDegree)}
	idx.tree.ReplaceOrInsert(fragEntry{key: 0, frag: initial})
	return idx
}

// Len returns the number of fragments currently indexed.
func (idx *fragmentIndex) Len() int { return idx.tree.Len() }

// get returns the fragment stored at key, and whether one was found.
func (idx *fragmentIndex) get(key int) (Fragment, bool) {
	item := idx.tree.Get(fragEntry{key: key})
	if item == nil {
		return Fragment{}, false
	}
	return item.(fragEntry).frag, true
}

// set inserts or replaces the fragment at key.
func (idx *fragmentIndex) set(key int, f Fragment) {
	idx.tree.ReplaceOrInsert(fragEntry{key: key, frag: f})
}

// remove deletes the entry at key, if any.
func (idx *fragmentIndex) remove(key int) {
	idx.tree.Delete(fragEntry{key: key})
}

// floor returns the entry with the largest key <= at, which is the
// fragment covering document-relative byte "at". It is a
// structural-impossibility assertion failure for the index to be empty;
// a Document always holds at least one fragment.
func (idx *fragmentIndex) floor(at int) (key int, frag Fragment) {
	found := false
	idx.tree.DescendLessOrEqual(fragEntry{key: at}, func(item btree.Item) bool {
		e := item.(fragEntry)
		key, frag, found = e.key, e.frag, true
		return false
	})
	perr.Assertf(found, "fragment index has no entry at or before key %d (empty index)", at)
	return key, frag
}

// ascendFrom calls fn for every entry with key >= from, in ascending key
// order, stopping early if fn returns false.
func (idx *fragmentIndex) ascendFrom(from int, fn func(key int, frag Fragment) bool) {
	idx.tree.AscendGreaterOrEqual(fragEntry{key: from}, func(item btree.Item) bool {
		e := item.(fragEntry)
		return fn(e.key, e.frag)
	})
}

// ascendAll calls fn for every entry in ascending key order.
func (idx *fragmentIndex) ascendAll(fn func(key int, frag Fragment) bool) {
	idx.tree.Ascend(func(item btree.Item) bool {
		e := item.(fragEntry)
		return fn(e.key, e.frag)
	})
}

// last returns the entry with the largest key. It is a structural
// impossibility for the index to be empty.
func (idx *fragmentIndex) last() (key int, frag Fragment) {
	found := false
	idx.tree.Descend(func(item btree.Item) bool {
		e := item.(fragEntry)
		key, frag, found = e.key, e.frag, true
		return false
	})
	perr.Assertf(found, "fragment index is empty")
	return key, frag
}

// affected returns, in ascending key order, the key of every fragment from
// the one covering byte "at" through the last fragment.
func (idx *fragmentIndex) affected(at int) []int {
	start, _ := idx.floor(at)
	keys := make([]int, 0, idx.tree.Len())
	idx.ascendFrom(start, func(key int, _ Fragment) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
