// Package ordmap implements PersistentMap (§4.7): an ordered map keyed
// by K, backed by treap.Node. Unlike list and vector, a map revision
// indexes a whole treap root snapshot rather than individual FatFields
// — because the treap is already purely functional, no ancestor walk
// is needed to read it back.
package ordmap

import (
	"fmt"
	"iter"

	"github.com/rogpeppe/persistent/history"
	"github.com/rogpeppe/persistent/revision"
	"github.com/rogpeppe/persistent/revtree"
	"github.com/rogpeppe/persistent/treap"
)

// core is the state shared by every handle derived from the same map.
type core[K, V any] struct {
	tree       *revtree.Tree
	priorities revision.Generator
	cmp        func(K, K) int
	roots      map[revision.Revision]*treap.Node[K, V]
}

// Map is a handle onto a persistent ordered map: shared versioning
// state, this handle's own undo/redo cursor, and a cached root so that
// reads at the handle's current head go straight to the treap without
// a lookup in the per-revision root index.
type Map[K, V any] struct {
	core   *core[K, V]
	cursor *history.Cursor
	root   *treap.Node[K, V]
}

// New returns an empty map ordered by cmp, using the default LCG
// generator for both revisions and treap priorities.
func New[K, V any](cmp func(K, K) int) *Map[K, V] {
	return NewWithGenerators[K, V](cmp, revision.NewLCG(), revision.NewLCG())
}

// NewWithGenerators is like New but lets the caller supply distinct
// generators for revision ids and treap priorities — the design
// (§4.7) keeps these as two separate RevisionIds-style sequences.
func NewWithGenerators[K, V any](cmp func(K, K) int, revGen, priorityGen revision.Generator) *Map[K, V] {
	tree := revtree.New(revGen)
	c := &core[K, V]{
		tree:       tree,
		priorities: priorityGen,
		cmp:        cmp,
		roots:      map[revision.Revision]*treap.Node[K, V]{tree.Root(): nil},
	}
	return &Map[K, V]{core: c, cursor: history.New(tree.Root()), root: nil}
}

// Head returns the revision this handle currently shows.
func (m *Map[K, V]) Head() revision.Revision {
	return m.cursor.Head()
}

// CurrentRevision implements revision.Persistent.
func (m *Map[K, V]) CurrentRevision() revision.Revision {
	return m.Head()
}

// Insert binds key to value, discarding any prior binding, and
// returns the newly minted revision.
func (m *Map[K, V]) Insert(key K, value V) revision.Revision {
	h := m.Head()
	r := m.core.tree.Fork(h)
	newRoot := treap.Insert(m.root, key, value, int64(m.core.priorities.Next()), m.core.cmp)
	m.core.roots[r] = newRoot
	m.root = newRoot
	m.cursor.RecordMutation(r)
	return r
}

// Remove unbinds key, if present, and returns the newly minted
// revision.
func (m *Map[K, V]) Remove(key K) revision.Revision {
	h := m.Head()
	r := m.core.tree.Fork(h)
	newRoot := treap.Erase(m.root, key, m.core.cmp)
	m.core.roots[r] = newRoot
	m.root = newRoot
	m.cursor.RecordMutation(r)
	return r
}

// ContainsKey reports whether key is bound at this handle's current
// head.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return treap.Contains(m.root, key, m.core.cmp)
}

// Get returns the value bound to key at this handle's current head.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return treap.Get(m.root, key, m.core.cmp)
}

// Iter returns an iterator over (key, value) pairs at this handle's
// current head, in ascending key order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return treap.All(m.root)
}

// GetByRevision returns a new handle pinned to r: history = [r], with
// no undo/redo siblings, sharing this map's versioned state. It
// panics if r is not a revision this map's tree has produced.
func (m *Map[K, V]) GetByRevision(r revision.Revision) *Map[K, V] {
	root, ok := m.core.roots[r]
	if !ok {
		panic(fmt.Sprintf("ordmap: unknown revision %v", r))
	}
	return &Map[K, V]{core: m.core, cursor: history.New(r), root: root}
}

// Undo moves this handle's cursor back n steps, refreshes its cached
// root, and returns the new head.
func (m *Map[K, V]) Undo(n int) revision.Revision {
	r := m.cursor.Undo(n)
	m.root = m.core.roots[r]
	return r
}

// Redo moves this handle's cursor forward n steps, refreshes its
// cached root, and returns the new head.
func (m *Map[K, V]) Redo(n int) revision.Revision {
	r := m.cursor.Redo(n)
	m.root = m.core.roots[r]
	return r
}
