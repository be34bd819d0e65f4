package list

import (
	"slices"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/rogpeppe/persistent/revision"
)

func collect[A any](l *List[A], r revision.Revision) []A {
	return slices.Collect(l.Iter(r))
}

// TestBuildAndBranch is seed scenario 1 from SPEC_FULL.md / spec.md §8.
func TestBuildAndBranch(t *testing.T) {
	l := New[int]()
	l.PushBack(2)
	a := l.PushBack(1)
	l.PushFront(3)
	b := l.PushFront(4)

	qt.Assert(t, qt.DeepEquals(collect(l, a), []int{2, 1}))
	qt.Assert(t, qt.DeepEquals(collect(l, b), []int{4, 3, 2, 1}))
}

// TestUndoRedo is seed scenario 2.
func TestUndoRedo(t *testing.T) {
	l := New[int]()
	l.PushFront(4)
	l.PushFront(3)
	l.PushFront(2)
	a := l.PushFront(1)
	qt.Assert(t, qt.DeepEquals(collect(l, a), []int{1, 2, 3, 4}))

	b := l.Undo(2)
	qt.Assert(t, qt.DeepEquals(collect(l, b), []int{3, 4}))

	c := l.Redo(2)
	qt.Assert(t, qt.DeepEquals(collect(l, c), []int{1, 2, 3, 4}))
}

// TestMutateThroughIterBranching is seed scenario 3.
func TestMutateThroughIterBranching(t *testing.T) {
	l := New[int]()
	l.PushFront(6)
	l.PushFront(5)
	l.PushFront(4)
	a := l.PushFront(3)
	qt.Assert(t, qt.DeepEquals(collect(l, a), []int{3, 4, 5, 6}))

	l.PushFront(2)
	b := l.PushFront(1)
	qt.Assert(t, qt.DeepEquals(collect(l, b), []int{1, 2, 3, 4, 5, 6}))

	for it := l.Mutator(a); !it.Done(); it.Advance() {
		it.SetValue(func(int) int { return 0 })
	}
	c := l.Head()
	qt.Assert(t, qt.DeepEquals(collect(l, c), []int{0, 0, 0, 0}))

	for it := l.Mutator(a); !it.Done(); it.Advance() {
		if it.Value() > 4 {
			it.SetValue(func(int) int { return 0 })
		}
	}
	d := l.Head()
	qt.Assert(t, qt.DeepEquals(collect(l, d), []int{3, 4, 0, 0}))

	// a and b, observed earlier, are unaffected by edits made after
	// they were captured.
	qt.Assert(t, qt.DeepEquals(collect(l, a), []int{3, 4, 5, 6}))
	qt.Assert(t, qt.DeepEquals(collect(l, b), []int{1, 2, 3, 4, 5, 6}))
}

func TestBranchingHandlesAreIndependent(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	r0 := l.PushBack(2)

	h1 := l.GetByRevision(r0)
	h2 := l.GetByRevision(r0)

	h1.PushBack(3)
	qt.Assert(t, qt.DeepEquals(collect(h2, h2.Head()), []int{1, 2}))
}

func TestGetByRevisionPanicsOnUnknownRevision(t *testing.T) {
	l := New[int]()
	defer func() {
		qt.Assert(t, qt.IsNotNil(recover()))
	}()
	l.GetByRevision(revision.Revision(123456789))
}

func TestUsesDebugGeneratorForLegibleRevisions(t *testing.T) {
	l := NewWithGenerator[string](revision.NewDebug())
	r1 := l.PushBack("a")
	r2 := l.PushBack("b")
	qt.Assert(t, qt.Equals(r1, revision.Revision(2)))
	qt.Assert(t, qt.Equals(r2, revision.Revision(3)))
}
