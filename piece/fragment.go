package piece

import "github.com/jcorbin/piece/internal/perr"

// SourceTag selects which of a Document's two backing stores a Fragment
// resolves its bytes against.
type SourceTag uint8

// The two backing stores a Fragment may reference.
const (
	Original SourceTag = iota
	Insertion
)

func (t SourceTag) String() string {
	switch t {
	case Original:
		return "original"
	case Insertion:
		return "insertion"
	default:
		return "invalid"
	}
}

// Fragment is an immutable window [Offset, Offset+Length) into one of a
// Document's two backing stores. Fragments are value-typed and cheap to
// copy; they carry no back-reference to the Document, and no ordering
// information -- their position within a document is carried exclusively
// by the key under which the fragment index stores them.
type Fragment struct {
	Source SourceTag
	Offset int
	Length int
}

// originalFragment returns a Fragment spanning the whole of an Original
// store of the given length.
func originalFragment(length int) Fragment {
	return Fragment{Source: Original, Offset: 0, Length: length}
}

// insertionFragment returns a Fragment over a slice of the Insertion store.
func insertionFragment(offset, length int) Fragment {
	return Fragment{Source: Insertion, Offset: offset, Length: length}
}

// Slice resolves the fragment's bytes against the given store, which must
// be the store named by the fragment's Source tag.
func (f Fragment) Slice(store *IndexedString) []byte {
	perr.Assertf(f.Offset+f.Length <= store.Len(),
		"fragment [%d,%d) exceeds store of length %d", f.Offset, f.Offset+f.Length, store.Len())
	return store.Slice(f.Offset, f.Offset+f.Length)
}

// resized returns a copy of the fragment with a new offset and length.
func (f Fragment) resized(offset, length int) Fragment {
	f.Offset, f.Length = offset, length
	return f
}
