package vector

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
	"github.com/rogpeppe/persistent/revision"
)

// TestVectorHistory is seed scenario 4 from SPEC_FULL.md / spec.md §8.
func TestVectorHistory(t *testing.T) {
	v := New[int]()
	v.Push(1807)
	a := v.Push(2609)
	m := v.Pop()
	b := v.Push(1008)

	qt.Assert(t, qt.DeepEquals(v.GetByRevision(a).snapshot, []int{1807, 2609}))
	qt.Assert(t, qt.DeepEquals(v.GetByRevision(m).snapshot, []int{1807}))
	qt.Assert(t, qt.DeepEquals(v.GetByRevision(b).snapshot, []int{1807, 1008}))
}

func TestPushPopRoundTrip(t *testing.T) {
	v := New[string]()
	v.Push("a")
	v.Push("b")
	v.Push("c")
	qt.Assert(t, qt.Equals(v.Len(), 3))
	qt.Assert(t, qt.Equals(v.At(0), "a"))
	qt.Assert(t, qt.Equals(v.At(2), "c"))

	v.Pop()
	qt.Assert(t, qt.Equals(v.Len(), 2))
	qt.Assert(t, qt.DeepEquals(v.GetByRevision(v.Head()).snapshot, []string{"a", "b"}))
}

func TestModify(t *testing.T) {
	v := New[int]()
	v.Push(1)
	v.Push(2)
	v.Push(3)
	r := v.Modify(1, 99)
	qt.Assert(t, qt.Equals(v.At(1), 99))

	snap := v.GetByRevision(r).snapshot
	if diff := cmp.Diff([]int{1, 99, 3}, snap); diff != "" {
		t.Fatalf("unexpected snapshot (-want +got):\n%s", diff)
	}
}

func TestPopOnEmptyPanics(t *testing.T) {
	v := New[int]()
	defer func() {
		qt.Assert(t, qt.IsNotNil(recover()))
	}()
	v.Pop()
}

func TestAtOutOfRangePanics(t *testing.T) {
	v := New[int]()
	v.Push(1)
	defer func() {
		qt.Assert(t, qt.IsNotNil(recover()))
	}()
	v.At(5)
}

func TestModifyOutOfRangePanics(t *testing.T) {
	v := New[int]()
	v.Push(1)
	defer func() {
		qt.Assert(t, qt.IsNotNil(recover()))
	}()
	v.Modify(5, 0)
}

func TestGetByRevisionPanicsOnUnknownRevision(t *testing.T) {
	v := New[int]()
	defer func() {
		qt.Assert(t, qt.IsNotNil(recover()))
	}()
	v.GetByRevision(revision.Revision(987654321))
}

func TestUndoRedo(t *testing.T) {
	v := New[int]()
	v.Push(10)
	v.Push(20)
	v.Push(30)
	qt.Assert(t, qt.DeepEquals(v.GetByRevision(v.Head()).snapshot, []int{10, 20, 30}))

	v.Undo(2)
	qt.Assert(t, qt.DeepEquals(v.GetByRevision(v.Head()).snapshot, []int{10}))

	v.Redo(2)
	qt.Assert(t, qt.DeepEquals(v.GetByRevision(v.Head()).snapshot, []int{10, 20, 30}))
}

func TestBranchingHandlesAreIndependent(t *testing.T) {
	v := New[int]()
	v.Push(1)
	r0 := v.Push(2)

	h1 := v.GetByRevision(r0)
	h2 := v.GetByRevision(r0)

	h1.Push(3)
	qt.Assert(t, qt.DeepEquals(h2.GetByRevision(h2.Head()).snapshot, []int{1, 2}))
}
