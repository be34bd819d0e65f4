// Package history implements the linear undo/redo cursor shared by
// every container handle (§4.5 of the design).
//
// A Cursor owns a subsequence of the revisions its container's
// revtree.Tree has produced, plus a position (HeadIndex) within that
// subsequence. Mutating the container past the current head truncates
// any redo-able suffix first, exactly like an editor's undo buffer.
package history

import (
	"fmt"

	"github.com/rogpeppe/persistent/revision"
)

// Cursor is a per-handle undo/redo history over revisions.
type Cursor struct {
	history []revision.Revision
	head    int
}

// New returns a Cursor opened at r: history = [r], HeadIndex() == 0.
// This is also what a fresh getByRevision(r) handle gets, per §4.5 —
// "parallel exploration of alternative histories" starts a brand new
// cursor with no siblings.
func New(r revision.Revision) *Cursor {
	return &Cursor{history: []revision.Revision{r}}
}

// Head returns the revision currently at the cursor's position.
func (c *Cursor) Head() revision.Revision {
	return c.history[c.head]
}

// HeadIndex returns the cursor's position within its history.
func (c *Cursor) HeadIndex() int {
	return c.head
}

// Len returns the number of revisions currently in the cursor's
// history.
func (c *Cursor) Len() int {
	return len(c.history)
}

// Revisions returns the cursor's full history, in order. The returned
// slice must not be mutated by the caller.
func (c *Cursor) Revisions() []revision.Revision {
	return c.history
}

// Undo moves the cursor back n steps and returns the new head. It
// panics if n exceeds HeadIndex.
func (c *Cursor) Undo(n int) revision.Revision {
	if n < 0 || n > c.head {
		panic(fmt.Sprintf("history: undo(%d): head index is only %d", n, c.head))
	}
	c.head -= n
	return c.Head()
}

// Redo moves the cursor forward n steps and returns the new head. It
// panics if that would run past the end of the history.
//
// This strictly advances — see §9's note that some source variants
// define redo as a copy-pasted call to undo(1); that bug is not
// reproduced here, and cursor_test.go has a regression test for it.
func (c *Cursor) Redo(n int) revision.Revision {
	if n < 0 || c.head+n >= len(c.history) {
		panic(fmt.Sprintf("history: redo(%d): only %d revisions ahead of head", n, len(c.history)-1-c.head))
	}
	c.head += n
	return c.Head()
}

// RecordMutation truncates any redo-able suffix past the current
// head, appends r, and advances the head to point at it. Every
// container mutation must call this exactly once so that undo/redo
// stays consistent — §9 notes a source variant that forgot to do so
// during list iteration, losing the ability to undo an in-place edit.
func (c *Cursor) RecordMutation(r revision.Revision) {
	c.history = append(c.history[:c.head+1], r)
	c.head = len(c.history) - 1
}
