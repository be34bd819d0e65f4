// Package list implements PersistentList (§4.6): a doubly-linked list
// whose front/back pointers and every node's value/prev/next are
// FatFields, so every pushFront/pushBack mints a new revision while
// every prior revision remains iterable exactly as it was.
package list

import (
	"fmt"
	"iter"

	"github.com/rogpeppe/persistent/fatfield"
	"github.com/rogpeppe/persistent/history"
	"github.com/rogpeppe/persistent/revision"
	"github.com/rogpeppe/persistent/revtree"
)

// node is one list cell. Its prev/next links are FatFields, not raw
// pointers, so the list has no reference cycle in Go's object-graph
// terms even though back-edges exist conceptually — see DESIGN.md.
type node[A any] struct {
	value *fatfield.Field[A]
	prev  *fatfield.Field[*node[A]]
	next  *fatfield.Field[*node[A]]
}

// core is the state shared by every handle derived from the same
// list: the revision tree and the two container-level FatFields.
// Go's garbage collector keeps it alive as long as any List points to
// it, so unlike the Rc<RefCell<_>> the design's source reaches for,
// no explicit reference count is needed (§9).
type core[A any] struct {
	tree  *revtree.Tree
	front *fatfield.Field[*node[A]]
	back  *fatfield.Field[*node[A]]
}

// List is a handle onto a persistent doubly-linked list: shared
// versioning state plus this handle's own undo/redo cursor.
type List[A any] struct {
	core   *core[A]
	cursor *history.Cursor
}

// New returns an empty list at a fresh root revision, using the
// default LCG revision generator.
func New[A any]() *List[A] {
	return NewWithGenerator[A](revision.NewLCG())
}

// NewWithGenerator is like New but lets the caller supply the
// revision generator — e.g. revision.NewDebug() for legible revision
// ids in tests, the same role watcher.WithUpdater plays for swapping
// in a non-default policy at construction time.
func NewWithGenerator[A any](gen revision.Generator) *List[A] {
	tree := revtree.New(gen)
	c := &core[A]{
		tree:  tree,
		front: fatfield.New[*node[A]](tree),
		back:  fatfield.New[*node[A]](tree),
	}
	c.front.Insert(tree.Root(), nil)
	c.back.Insert(tree.Root(), nil)
	return &List[A]{core: c, cursor: history.New(tree.Root())}
}

// Head returns the revision this handle currently shows.
func (l *List[A]) Head() revision.Revision {
	return l.cursor.Head()
}

// CurrentRevision implements revision.Persistent.
func (l *List[A]) CurrentRevision() revision.Revision {
	return l.Head()
}

func (l *List[A]) newNode(r revision.Revision, v A, prev, next *node[A]) *node[A] {
	n := &node[A]{
		value: fatfield.New[A](l.core.tree),
		prev:  fatfield.New[*node[A]](l.core.tree),
		next:  fatfield.New[*node[A]](l.core.tree),
	}
	n.value.Insert(r, v)
	n.prev.Insert(r, prev)
	n.next.Insert(r, next)
	return n
}

// PushFront inserts v at the front of the list and returns the newly
// minted revision.
func (l *List[A]) PushFront(v A) revision.Revision {
	h := l.Head()
	r := l.core.tree.Fork(h)

	front, _ := l.core.front.Get(h)
	var n *node[A]
	if front == nil {
		n = l.newNode(r, v, nil, nil)
		l.core.back.Insert(r, n)
	} else {
		n = l.newNode(r, v, nil, front)
		front.prev.Insert(r, n)
	}
	l.core.front.Insert(r, n)
	l.cursor.RecordMutation(r)
	return r
}

// PushBack inserts v at the back of the list and returns the newly
// minted revision.
func (l *List[A]) PushBack(v A) revision.Revision {
	h := l.Head()
	r := l.core.tree.Fork(h)

	back, _ := l.core.back.Get(h)
	var n *node[A]
	if back == nil {
		n = l.newNode(r, v, nil, nil)
		l.core.front.Insert(r, n)
	} else {
		n = l.newNode(r, v, back, nil)
		back.next.Insert(r, n)
	}
	l.core.back.Insert(r, n)
	l.cursor.RecordMutation(r)
	return r
}

// Iter returns an iterator over the list's values at revision r, from
// front to back, exactly as that revision's shape was at the time it
// was produced.
func (l *List[A]) Iter(r revision.Revision) iter.Seq[A] {
	return func(yield func(A) bool) {
		cur, _ := l.core.front.Get(r)
		for cur != nil {
			v, ok := cur.value.Get(r)
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
			cur, _ = cur.next.Get(r)
		}
	}
}

// GetByRevision returns a new handle pinned to r: history = [r], with
// no undo/redo siblings, sharing this list's versioned state. It
// panics if r is not a revision this list's tree has produced.
func (l *List[A]) GetByRevision(r revision.Revision) *List[A] {
	if !l.core.tree.Known(r) {
		panic(fmt.Sprintf("list: unknown revision %v", r))
	}
	return &List[A]{core: l.core, cursor: history.New(r)}
}

// Undo moves this handle's cursor back n steps and returns the new
// head. It panics if that would run past the start of this handle's
// own history.
func (l *List[A]) Undo(n int) revision.Revision {
	return l.cursor.Undo(n)
}

// Redo moves this handle's cursor forward n steps and returns the new
// head. It panics if that would run past the end of this handle's own
// history.
func (l *List[A]) Redo(n int) revision.Revision {
	return l.cursor.Redo(n)
}

// MapIter walks a list at a fixed starting revision, letting the
// caller rewrite values in place. Each call to SetValue mints a new
// revision and records it on the owning List's undo/redo history, so
// a single pass that edits several nodes produces a chain of
// revisions — see §4.6 and SPEC_FULL.md's seed scenario 3.
type MapIter[A any] struct {
	l   *List[A]
	rev revision.Revision
	cur *node[A]
}

// Mutator returns a MapIter starting at revision r. r need not be
// this handle's current head — iterating and editing an older
// revision is exactly how seed scenario 3 branches two independent
// edits off the same ancestor.
func (l *List[A]) Mutator(r revision.Revision) *MapIter[A] {
	cur, _ := l.core.front.Get(r)
	return &MapIter[A]{l: l, rev: r, cur: cur}
}

// Done reports whether the iterator has run past the back of the
// list.
func (it *MapIter[A]) Done() bool {
	return it.cur == nil
}

// Value returns the value at the iterator's current node, as seen
// from the iterator's current revision.
func (it *MapIter[A]) Value() A {
	v, _ := it.cur.value.Get(it.rev)
	return v
}

// SetValue replaces the current node's value with f(Value()), forking
// a new revision off the iterator's current revision and recording it
// on the owning list's history. Subsequent calls on this iterator
// (including Value and the next SetValue) observe the new revision.
func (it *MapIter[A]) SetValue(f func(A) A) revision.Revision {
	r := it.l.core.tree.Fork(it.rev)
	it.cur.value.Insert(r, f(it.Value()))
	it.l.cursor.RecordMutation(r)
	it.rev = r
	return r
}

// Advance moves the iterator to the next node, as seen from the
// iterator's current revision.
func (it *MapIter[A]) Advance() {
	it.cur, _ = it.cur.next.Get(it.rev)
}
