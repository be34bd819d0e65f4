// Package fatfield implements the per-mutable-slot versioned store
// described in §4.3 of the design: a mapping from Revision to value
// that, given any revision, returns the value assigned along the
// nearest ancestor in the owning revtree.Tree.
//
// A Field is the unit of sharing between handles: two handles onto
// the same container share the same *Field instances, which is what
// lets an older handle keep reading its own view after a newer handle
// mutates (the newer handle writes under a new revision; the old
// revision's lookup chain is untouched).
package fatfield

import (
	"github.com/rogpeppe/persistent/revision"
	"github.com/rogpeppe/persistent/revtree"
)

// Field is a per-slot versioned store of values of type A.
type Field[A any] struct {
	tree   *revtree.Tree
	values map[revision.Revision]A
}

// New returns an empty Field anchored to tree. Multiple Fields may
// share one Tree; each resolves independently (see
// fatfield_test.go's TestMultipleFields, ported from the Rust
// multiple_fat_fields test).
func New[A any](tree *revtree.Tree) *Field[A] {
	return &Field[A]{
		tree:   tree,
		values: make(map[revision.Revision]A),
	}
}

// Insert unconditionally assigns v at revision r, overwriting any
// prior value recorded at that exact revision. Normal use writes each
// revision at most once per field; repeated inserts are allowed but
// not relied on anywhere in this module.
func (f *Field[A]) Insert(r revision.Revision, v A) {
	f.values[r] = v
}

// Get returns the value recorded at the nearest ancestor of r
// (inclusive of r itself), walking up the owning tree. The second
// result is false if no ancestor of r has ever been written.
func (f *Field[A]) Get(r revision.Revision) (A, bool) {
	for _, c := range f.tree.Ancestors(r) {
		if v, ok := f.values[c]; ok {
			return v, true
		}
	}
	var zero A
	return zero, false
}
