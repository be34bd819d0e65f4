// Package revision defines the identifier type shared by every
// persistent container in this module, along with the generators that
// mint it.
//
// A Revision identifies one snapshot of a container's state. Revisions
// are opaque: compare them only for equality, never for ordering —
// nothing guarantees that a later revision has a numerically larger
// id (the default generator is an LCG, not a counter).
package revision

// Revision is an opaque snapshot identifier. The zero Revision is not
// special; every container allocates its own root revision from a
// Generator at construction time.
type Revision int64

// Generator mints Revisions. Next must never return the same value
// twice over the generator's lifetime (the library relies on this for
// uniqueness, not on any particular distribution or ordering).
type Generator interface {
	Next() Revision
}

// lcgA, lcgC and lcgM are the parameters of the default generator, a
// 32-bit linear congruential sequence with period 2^31. Values taken
// from the Wikipedia article on linear congruential generators.
const (
	lcgA = 1103515245
	lcgC = 12345
	lcgM = 1 << 31
)

// LCG is the default Revision generator: a linear congruential
// sequence seeded at 1807. It is deterministic (useful for
// reproducing a sequence of revisions across runs) but not suitable
// as a cryptographic or even statistically strong source — it exists
// only to produce values that are vanishingly unlikely to collide
// within one process's lifetime.
type LCG struct {
	x int64
}

// NewLCG returns an LCG generator seeded at 1807, the seed used
// throughout this module's tests and the original source it was
// ported from.
func NewLCG() *LCG {
	return &LCG{x: 1807}
}

// Next returns the next value in the sequence.
func (g *LCG) Next() Revision {
	g.x = (lcgA*g.x + lcgC) % lcgM
	return Revision(g.x)
}

// Debug is a Generator producing 1, 2, 3, … — handy in tests where
// predictable revision ids make failure messages legible.
type Debug struct {
	x int64
}

// NewDebug returns a Debug generator whose first Next() call returns 1.
func NewDebug() *Debug {
	return &Debug{}
}

// Next returns the next value in the sequence.
func (g *Debug) Next() Revision {
	g.x++
	return Revision(g.x)
}

// Persistent is implemented by a container handle that can materialize
// the state as of any revision it knows about, plus report the
// revision it currently shows at its head.
//
// This mirrors the Persistent<T>/Recall/FullyPersistent trait split in
// the Rust source this module was ported from (inner/persistent.rs):
// keeping the capability as a small interface lets generic test
// helpers exercise any of PersistentList, PersistentMap or
// PersistentVector without depending on their concrete element types.
type Persistent[T any] interface {
	GetByRevision(r Revision) T
	CurrentRevision() Revision
}

// Recall is implemented by a container handle that supports linear
// undo/redo over the history it produced.
type Recall interface {
	Undo(n int) Revision
	Redo(n int) Revision
}

// FullyPersistent combines Persistent and Recall, matching the Rust
// source's FullyPersistent<T> marker trait.
type FullyPersistent[T any] interface {
	Persistent[T]
	Recall
}
