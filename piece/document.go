// Package piece implements a piece-table document model: a mutable text
// buffer represented as an ordered composition of immutable fragments over
// two append-only byte stores. Edits are realised as structural changes to
// the fragment set rather than rewrites of the underlying text storage, so
// edits are cheap regardless of document size, and the original text is
// preserved verbatim for as long as the Document lives.
package piece

import "github.com/jcorbin/piece/internal/perr"

// Document owns one original store, one insertions store, and the ordered
// fragment index that composes them into the document's current text.
type Document struct {
	original   IndexedString
	insertions IndexedString
	fragments  *fragmentIndex
}

// New returns an empty Document: a single zero-length Original fragment
// over an empty original store.
func New() *Document {
	return &Document{
		fragments: newFragmentIndex(originalFragment(0)),
	}
}

// From returns a Document whose entire content is s, held in a single
// Original fragment spanning it.
func From(s string) *Document {
	d := &Document{original: IndexedStringFrom(s)}
	d.fragments = newFragmentIndex(originalFragment(d.original.Len()))
	return d
}

// Len returns the document's current rendered length in bytes.
func (d *Document) Len() int {
	key, f := d.fragments.last()
	return key + f.Length
}

// Insert stores text into the insertions store and splices a fragment
// referencing it into the document at byteOffset.
//
// Precondition: byteOffset <= d.Len(). Violating it is a caller bug and
// panics.
func (d *Document) Insert(byteOffset int, text string) {
	perr.Assertf(byteOffset >= 0 && byteOffset <= d.Len(),
		"insert offset %d out of range [0,%d]", byteOffset, d.Len())
	if text == "" {
		return
	}

	insOffset := d.insertions.Len()
	d.insertions.AppendString(text)
	ins := insertionFragment(insOffset, len(text))

	updates := planInsert(d.fragments, byteOffset, ins)
	applyInsert(d.fragments, updates)
}

// Delete removes the document-relative byte range [start, end).
//
// Precondition: start <= end. end is clamped to d.Len() if it exceeds it.
// start > end is a caller bug and panics. A range with start == end is a
// no-op.
func (d *Document) Delete(start, end int) {
	length := d.Len()
	perr.Assertf(start >= 0 && start <= end, "delete range [%d,%d) has start after end", start, end)
	perr.Assertf(start <= length, "delete start %d exceeds length %d", start, length)
	if end > length {
		end = length
	}
	if start == end {
		return
	}

	updates := planDelete(d.fragments, start, end)
	applyDelete(d.fragments, updates)
	if d.fragments.Len() == 0 {
		// everything was deleted: keep the index non-empty with a lone
		// zero-length fragment, as in an empty Document
		d.fragments.set(0, originalFragment(0))
	}
}

// Render returns the document's current content, concatenating every
// fragment's bytes in ascending key order.
func (d *Document) Render() []byte {
	out := make([]byte, 0, d.Len())
	d.fragments.ascendAll(func(_ int, f Fragment) bool {
		out = append(out, f.Slice(d.store(f.Source))...)
		return true
	})
	return out
}

// String is a convenience wrapper over Render.
func (d *Document) String() string { return string(d.Render()) }

func (d *Document) store(tag SourceTag) *IndexedString {
	switch tag {
	case Original:
		return &d.original
	case Insertion:
		return &d.insertions
	default:
		perr.Assertf(false, "invalid source tag %v", tag)
		return nil
	}
}

// LineCount returns the number of lines in the document's current rendered
// view. A trailing line-feed does not introduce an extra empty line; any
// other content following the last line-feed (including none, in an empty
// document) does.
func (d *Document) LineCount() int {
	breaks := d.lineBreaksInView()
	if n := len(breaks); n > 0 && breaks[n-1] == d.Len()-1 {
		return n
	}
	return len(breaks) + 1
}

// LineRange returns the document-relative byte range [start, end) of the
// given zero-based line in the document's current rendered view. end
// excludes the line's trailing line-feed, if any.
func (d *Document) LineRange(line int) (start, end int) {
	breaks := d.lineBreaksInView()
	count := d.LineCount()
	perr.Assertf(line >= 0 && line < count, "line %d out of range [0,%d)", line, count)
	if line == 0 {
		start = 0
	} else {
		start = breaks[line-1] + 1
	}
	if line < len(breaks) {
		end = breaks[line]
	} else {
		end = d.Len()
	}
	return start, end
}

// lineBreaksInView walks the fragment index, translating each fragment's
// store-relative line-break positions into document-relative positions.
// The stores' own line-break indexes are never mutated by deletion; only
// this view-relative projection shrinks.
func (d *Document) lineBreaksInView() []int {
	var positions []int
	docPos := 0
	d.fragments.ascendAll(func(_ int, f Fragment) bool {
		store := d.store(f.Source)
		for _, p := range store.LineBreaks(f.Offset, f.Offset+f.Length) {
			positions = append(positions, docPos+(p-f.Offset))
		}
		docPos += f.Length
		return true
	})
	return positions
}
