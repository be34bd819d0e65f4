// Package revtree implements the revision tree: the forest of
// Revisions that every FatField read and every container mutation is
// anchored to.
//
// A Tree is grown only by Fork, never shrunk (§3 and §4.2 of the
// design this module implements); it is shared by reference among
// every handle derived from the same container, and among every
// FatField the container declares.
package revtree

import (
	"fmt"

	"github.com/rogpeppe/persistent/revision"
)

// Tree is a rooted forest over Revisions: a parent-of mapping plus the
// distinguished root that every revision eventually traces back to.
type Tree struct {
	gen    revision.Generator
	root   revision.Revision
	parent map[revision.Revision]revision.Revision

	// history is the global chronological allocation order: every
	// revision this Tree has ever minted, root first. It is distinct
	// from any one handle's undo/redo history.Cursor — several
	// containers' handles can share a Tree and each has its own
	// cursor over a subset of this sequence.
	history []revision.Revision
}

// New returns a Tree with a freshly minted root revision, using gen to
// allocate it and every subsequent Fork.
func New(gen revision.Generator) *Tree {
	root := gen.Next()
	return &Tree{
		gen:     gen,
		root:    root,
		parent:  make(map[revision.Revision]revision.Revision),
		history: []revision.Revision{root},
	}
}

// Root returns the distinguished root revision.
func (t *Tree) Root() revision.Revision {
	return t.root
}

// IsRoot reports whether r is this tree's root.
func (t *Tree) IsRoot(r revision.Revision) bool {
	return r == t.root
}

// Known reports whether r is the root or a revision this tree has
// forked.
func (t *Tree) Known(r revision.Revision) bool {
	if t.IsRoot(r) {
		return true
	}
	_, ok := t.parent[r]
	return ok
}

// Parent returns the revision r was forked from. It panics if r is
// unknown or is the root (the root has no parent) — violating this
// precondition is a programmer error, per §7 of the design.
func (t *Tree) Parent(r revision.Revision) revision.Revision {
	p, ok := t.parent[r]
	if !ok {
		panic(fmt.Sprintf("revtree: parent of unknown or root revision %v", r))
	}
	return p
}

// Ancestors returns [r, parent(r), …, root], in that order. It panics
// if r is not the root and not a known revision.
func (t *Tree) Ancestors(r revision.Revision) []revision.Revision {
	if !t.Known(r) {
		panic(fmt.Sprintf("revtree: ancestors of unknown revision %v", r))
	}
	b := []revision.Revision{r}
	c := r
	for !t.IsRoot(c) {
		c = t.parent[c]
		b = append(b, c)
	}
	return b
}

// Fork allocates a fresh revision whose parent is p, appends it to the
// global history, and returns it. It panics if p is neither the root
// nor a previously forked revision.
func (t *Tree) Fork(p revision.Revision) revision.Revision {
	if !t.Known(p) {
		panic(fmt.Sprintf("revtree: fork from unknown parent revision %v", p))
	}
	c := t.gen.Next()
	t.parent[c] = p
	t.history = append(t.history, c)
	return c
}

// History returns the global chronological allocation order: every
// revision this tree has ever produced, root first. The returned
// slice must not be mutated by the caller.
func (t *Tree) History() []revision.Revision {
	return t.history
}

// Revision returns the i'th revision ever allocated by this tree
// (0 is the root). It panics if i is out of range.
func (t *Tree) Revision(i int) revision.Revision {
	return t.history[i]
}

// LastIndex returns the index of the most recently allocated
// revision in History.
func (t *Tree) LastIndex() int {
	return len(t.history) - 1
}
