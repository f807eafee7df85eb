package piece

import "github.com/jcorbin/piece/internal/perr"

// applyDelete realises a deletion plan, visiting updates in the list's
// natural ascending-key order: each update either removes its entry or
// rekeys it to a smaller-or-equal key, which never collides with an
// not-yet-visited entry.
func applyDelete(idx *fragmentIndex, updates []FragmentUpdate) {
	for _, u := range updates {
		applyOne(idx, u)
	}
}

// applyInsert realises an insertion plan, visiting updates in descending
// key order. Ascending order would overwrite not-yet-moved fragments,
// since every MoveTo for a fragment trailing the insertion point is
// strictly greater than its current key.
func applyInsert(idx *fragmentIndex, updates []FragmentUpdate) {
	for i := len(updates) - 1; i >= 0; i-- {
		applyOne(idx, updates[i])
	}
}

func applyOne(idx *fragmentIndex, u FragmentUpdate) {
	switch u.Op.Kind {
	case OpNone:
		applyNone(idx, u)
	case OpDelete:
		idx.remove(u.Key)
	case OpTrim:
		applyTrim(idx, u)
	case OpSplit:
		applySplit(idx, u)
	case OpInsert:
		applyInsert1(idx, u)
	default:
		perr.Assertf(false, "unrecognized operation kind %v", u.Op.Kind)
	}
}

func applyNone(idx *fragmentIndex, u FragmentUpdate) {
	if u.MoveTo == u.Key {
		return
	}
	f, ok := idx.get(u.Key)
	perr.Assertf(ok, "missing fragment at key %d for None update", u.Key)
	idx.remove(u.Key)
	idx.set(u.MoveTo, f)
}

func applyTrim(idx *fragmentIndex, u FragmentUpdate) {
	f, ok := idx.get(u.Key)
	perr.Assertf(ok, "missing fragment at key %d for Trim update", u.Key)
	idx.remove(u.Key)
	f = f.resized(f.Offset+u.Op.TrimStart, f.Length-u.Op.TrimStart-u.Op.TrimEnd)
	idx.set(u.MoveTo, f)
}

func applySplit(idx *fragmentIndex, u FragmentUpdate) {
	f, ok := idx.get(u.Key)
	perr.Assertf(ok, "missing fragment at key %d for Split update", u.Key)
	idx.remove(u.Key)

	offsetDiff := u.Op.Resume - u.Key
	right := Fragment{Source: f.Source, Offset: f.Offset + offsetDiff, Length: f.Length - offsetDiff}
	left := f.resized(f.Offset, u.Op.Stop-u.Key)

	idx.set(u.MoveTo, left)
	idx.set(u.MoveTo+left.Length, right)
}

// applyInsert1 stitches a new fragment into the fragment currently keyed at
// u.Key, covering the append, prepend, and interior-split sub-cases.
func applyInsert1(idx *fragmentIndex, u FragmentUpdate) {
	target, ok := idx.get(u.Key)
	perr.Assertf(ok, "missing fragment at key %d for Insert update", u.Key)

	abs := u.Key + u.Op.InsertOffset
	ins := u.Op.InsertFragment

	switch {
	case abs >= u.Key+target.Length: // append: target unchanged (or, if it was
		// zero-length, abs == u.Key and this overwrites it in place -- correct,
		// since a zero-length fragment contributes nothing to the rendered view)
		idx.set(abs, ins)

	case abs == u.Key: // prepend
		idx.remove(u.Key)
		idx.set(abs+ins.Length, target)
		idx.set(abs, ins)

	default: // interior: zero-width split of target, then insert
		idx.remove(u.Key)
		offsetDiff := abs - u.Key
		left := target.resized(target.Offset, offsetDiff)
		right := Fragment{Source: target.Source, Offset: target.Offset + offsetDiff, Length: target.Length - offsetDiff}
		idx.set(u.Key, left)
		idx.set(abs+ins.Length, right)
		idx.set(abs, ins)
	}
}
