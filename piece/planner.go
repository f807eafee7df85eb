package piece

import "github.com/jcorbin/piece/internal/perr"

// OpKind tags the kind of structural change a FragmentUpdate describes.
type OpKind uint8

// The five operation kinds a change plan may carry.
const (
	OpNone OpKind = iota
	OpDelete
	OpTrim
	OpSplit
	OpInsert
)

func (k OpKind) String() string {
	switch k {
	case OpNone:
		return "None"
	case OpDelete:
		return "Delete"
	case OpTrim:
		return "Trim"
	case OpSplit:
		return "Split"
	case OpInsert:
		return "Insert"
	default:
		return "Invalid"
	}
}

// Operation is the tagged union of structural changes a planner may emit
// against a single fragment.
type Operation struct {
	Kind OpKind

	// DeleteLen is the byte count removed by an OpDelete. It is redundant
	// with the removed fragment's own length, kept only so the planner's
	// second (shift-accumulating) pass needn't dereference the index.
	DeleteLen int

	// TrimStart/TrimEnd are the byte counts dropped from the left/right of
	// a surviving OpTrim fragment.
	TrimStart, TrimEnd int

	// Stop/Resume are document-absolute byte offsets: an OpSplit fragment
	// keeps [key, Stop) as its left half and [Resume, key+length) as a new
	// right half, dropping [Stop, Resume).
	Stop, Resume int

	// InsertOffset is the intra-fragment byte offset (relative to the
	// update's Key) at which InsertFragment is stitched in by an OpInsert.
	InsertOffset   int
	InsertFragment Fragment
}

// FragmentUpdate is one planned structural change: the fragment currently
// keyed at Key should, after application, end up keyed at MoveTo (when it
// survives), with Operation describing how its bytes change.
type FragmentUpdate struct {
	Key    int
	MoveTo int
	Op     Operation
}

// planDelete computes the ordered change list for deleting the
// document-relative byte range [a, b).
func planDelete(idx *fragmentIndex, a, b int) []FragmentUpdate {
	keys := idx.affected(a)
	updates := make([]FragmentUpdate, 0, len(keys))
	for _, k := range keys {
		frag, ok := idx.get(k)
		perr.Assertf(ok, "fragment index missing affected key %d", k)
		updates = append(updates, FragmentUpdate{Key: k, Op: classifyDelete(k, frag.Length, a, b)})
	}

	deleted := 0
	for i := range updates {
		updates[i].MoveTo = updates[i].Key - deleted
		deleted += removedBytes(updates[i].Op)
	}
	return updates
}

// classifyDelete classifies how a single fragment [k, k+length) is affected
// by a deletion range [a, b): untouched, fully covered, trimmed from one
// side, or split by an interior deletion.
func classifyDelete(k, length, a, b int) Operation {
	fStart, fEnd := k, k+length
	switch {
	case a <= fStart && b >= fEnd: // D covers F
		return Operation{Kind: OpDelete, DeleteLen: length}
	case a > fStart && b < fEnd: // D strictly interior to F
		return Operation{Kind: OpSplit, Stop: a, Resume: b}
	case a > fStart && a < fEnd: // D begins strictly inside F
		return Operation{Kind: OpTrim, TrimStart: 0, TrimEnd: fEnd - a}
	case b > fStart && b < fEnd: // D ends strictly inside F
		return Operation{Kind: OpTrim, TrimStart: b - fStart, TrimEnd: 0}
	default: // untouched, but follows the affected start
		return Operation{Kind: OpNone}
	}
}

// removedBytes returns the number of document bytes an operation removes,
// used by planDelete's shift-accumulating second pass.
func removedBytes(op Operation) int {
	switch op.Kind {
	case OpDelete:
		return op.DeleteLen
	case OpTrim:
		return op.TrimStart + op.TrimEnd
	case OpSplit:
		return op.Resume - op.Stop
	default:
		return 0
	}
}

// planInsert computes the ordered change list for inserting fragment ins at
// document-relative byte s.
func planInsert(idx *fragmentIndex, s int, ins Fragment) []FragmentUpdate {
	keys := idx.affected(s)
	perr.Assertf(len(keys) > 0, "no affected fragments for insert at %d", s)

	k0 := keys[0]
	updates := make([]FragmentUpdate, 0, len(keys))
	updates = append(updates, FragmentUpdate{
		Key:    k0,
		MoveTo: k0,
		Op:     Operation{Kind: OpInsert, InsertOffset: s - k0, InsertFragment: ins},
	})
	for _, k := range keys[1:] {
		updates = append(updates, FragmentUpdate{
			Key:    k,
			MoveTo: k + ins.Length,
			Op:     Operation{Kind: OpNone},
		})
	}
	return updates
}
