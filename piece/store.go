package piece

import "sort"

// IndexedString is a growable byte sequence with a maintained sorted index
// of the byte positions of every line-feed (0x0A) within it. It never
// shrinks: bytes are only ever appended, never removed, so any byte range
// resolved against it earlier remains valid for as long as its end stays at
// or below the length observed at resolution time.
type IndexedString struct {
	source     []byte
	linebreaks []int
}

// NewIndexedString returns an empty store.
func NewIndexedString() IndexedString {
	return IndexedString{}
}

// IndexedStringFrom returns a store containing a copy of s, with its
// line-break index built by scanning s once.
func IndexedStringFrom(s string) IndexedString {
	var is IndexedString
	is.source = append(is.source, s...)
	is.scanLineBreaks(0)
	return is
}

// Len returns the current byte length of the store.
func (is *IndexedString) Len() int { return len(is.source) }

// Append extends the store with p, scanning only the newly appended region
// for line-feeds. Existing line-break positions are unaffected: they name
// byte offsets that never move under append.
func (is *IndexedString) Append(p []byte) {
	start := len(is.source)
	is.source = append(is.source, p...)
	is.scanLineBreaks(start)
}

// AppendString is the string-argument form of Append.
func (is *IndexedString) AppendString(s string) {
	start := len(is.source)
	is.source = append(is.source, s...)
	is.scanLineBreaks(start)
}

func (is *IndexedString) scanLineBreaks(from int) {
	for i := from; i < len(is.source); i++ {
		if is.source[i] == '\n' {
			is.linebreaks = append(is.linebreaks, i)
		}
	}
}

// Render returns the store's current bytes. The caller must not mutate the
// returned slice.
func (is *IndexedString) Render() []byte { return is.source }

// Slice returns the byte range [start, end) of the store.
func (is *IndexedString) Slice(start, end int) []byte {
	return is.source[start:end]
}

// LineBreaks returns the indexed line-break positions within [start, end),
// in ascending order. It is a direct range query over the sorted index kept
// for a line-addressing layer above the core; the core itself never
// consults it during editing.
func (is *IndexedString) LineBreaks(start, end int) []int {
	lo := sort.SearchInts(is.linebreaks, start)
	hi := sort.SearchInts(is.linebreaks, end)
	out := make([]int, hi-lo)
	copy(out, is.linebreaks[lo:hi])
	return out
}
