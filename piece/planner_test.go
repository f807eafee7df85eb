package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDelete(t *testing.T) {
	for _, tc := range []struct {
		name        string
		k, length   int
		a, b        int
		expect      OpKind
		trimS, trimE int
		stop, resume int
	}{
		{name: "covers exactly", k: 0, length: 5, a: 0, b: 5, expect: OpDelete},
		{name: "covers with margin", k: 2, length: 3, a: 0, b: 10, expect: OpDelete},
		{name: "strictly interior", k: 0, length: 10, a: 2, b: 6, expect: OpSplit, stop: 2, resume: 6},
		{name: "begins inside, ends at/after end", k: 0, length: 10, a: 3, b: 10, expect: OpTrim, trimS: 0, trimE: 7},
		{name: "begins inside, ends after end", k: 0, length: 10, a: 3, b: 20, expect: OpTrim, trimS: 0, trimE: 7},
		{name: "begins at start, ends inside", k: 0, length: 10, a: 0, b: 4, expect: OpTrim, trimS: 4, trimE: 0},
		{name: "begins before start, ends inside", k: 5, length: 10, a: 0, b: 8, expect: OpTrim, trimS: 3, trimE: 0},
		{name: "untouched after", k: 10, length: 5, a: 0, b: 10, expect: OpNone},
	} {
		t.Run(tc.name, func(t *testing.T) {
			op := classifyDelete(tc.k, tc.length, tc.a, tc.b)
			assert.Equal(t, tc.expect, op.Kind)
			switch tc.expect {
			case OpTrim:
				assert.Equal(t, tc.trimS, op.TrimStart)
				assert.Equal(t, tc.trimE, op.TrimEnd)
			case OpSplit:
				assert.Equal(t, tc.stop, op.Stop)
				assert.Equal(t, tc.resume, op.Resume)
			}
		})
	}
}

func TestPlanDelete_MoveToShiftsAccumulate(t *testing.T) {
	idx := newFragmentIndex(originalFragment(0))
	idx.remove(0)
	idx.set(0, originalFragment(8))          // "original"
	idx.set(8, insertionFragment(0, 5))       // " with"
	idx.set(13, insertionFragment(5, 11))     // " insertions"

	updates := planDelete(idx, 7, 19)
	if assert.Len(t, updates, 3) {
		assert.Equal(t, 0, updates[0].Key)
		assert.Equal(t, OpTrim, updates[0].Op.Kind)
		assert.Equal(t, 0, updates[0].MoveTo)

		assert.Equal(t, 8, updates[1].Key)
		assert.Equal(t, OpDelete, updates[1].Op.Kind)

		assert.Equal(t, 13, updates[2].Key)
		assert.Equal(t, OpTrim, updates[2].Op.Kind)
		assert.Equal(t, 7, updates[2].MoveTo)
	}
}

func TestPlanInsert_ShiftsTrailingFragments(t *testing.T) {
	idx := newFragmentIndex(originalFragment(0))
	idx.remove(0)
	idx.set(0, originalFragment(8))
	idx.set(8, insertionFragment(0, 11))

	ins := insertionFragment(100, 4)
	updates := planInsert(idx, 3, ins)
	if assert.Len(t, updates, 2) {
		assert.Equal(t, 0, updates[0].Key)
		assert.Equal(t, 0, updates[0].MoveTo)
		assert.Equal(t, OpInsert, updates[0].Op.Kind)
		assert.Equal(t, 3, updates[0].Op.InsertOffset)

		assert.Equal(t, 8, updates[1].Key)
		assert.Equal(t, 12, updates[1].MoveTo)
		assert.Equal(t, OpNone, updates[1].Op.Kind)
	}
}
