// Package orderedmerge merges ordered iter.Seq sequences, panicking if
// either input isn't itself strictly increasing.
//
// It is adapted from github.com/rogpeppe/generic's merge package
// (merge/merge.go): same merge loop built on iter.Pull, narrowed down
// from k sequences to the two-sequence case this module needs. treap's tests
// use it to check the split/merge round-trip property from §8 of the
// design — split(root, k) partitions a treap into two disjoint
// ordered key sequences, and merging them back with this package must
// reproduce the original key order.
package orderedmerge

import (
	"cmp"
	"fmt"
	"iter"
)

// Merge merges two strictly increasing sequences of ordered values
// into one increasing sequence; a value present in both inputs is
// yielded twice. It panics if either input sequence is found out of
// order while being consumed.
func Merge[T cmp.Ordered](it0, it1 iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		next0, stop0 := iter.Pull(it0)
		defer stop0()
		next1, stop1 := iter.Pull(it1)
		defer stop1()

		var x0, x1 T
		has0, has1 := false, false
		first0, first1 := true, true

		for {
			if !has0 && next0 != nil {
				if n0, ok := next0(); ok {
					if !first0 && cmp.Compare(x0, n0) >= 0 {
						panic(fmt.Errorf("orderedmerge: out of order item in first sequence (%v >= %v)", x0, n0))
					}
					x0, has0, first0 = n0, true, false
				} else {
					next0 = nil
				}
			}
			if !has1 && next1 != nil {
				if n1, ok := next1(); ok {
					if !first1 && cmp.Compare(x1, n1) >= 0 {
						panic(fmt.Errorf("orderedmerge: out of order item in second sequence (%v >= %v)", x1, n1))
					}
					x1, has1, first1 = n1, true, false
				} else {
					next1 = nil
				}
			}
			switch {
			case has0 && has1:
				switch {
				case cmp.Compare(x0, x1) < 0:
					if !yield(x0) {
						return
					}
					has0 = false
				default:
					if !yield(x1) {
						return
					}
					has1 = false
				}
			case has0:
				if !yield(x0) {
					return
				}
				has0 = false
			case has1:
				if !yield(x1) {
					return
				}
				has1 = false
			default:
				return
			}
		}
	}
}
