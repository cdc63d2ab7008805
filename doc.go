/*
Package treeset implements an ordered-set data type backed by an unbalanced
binary search tree.

A Set stores unique values and hands them back in the order fixed by its
comparison policy, which is part of the set's type:

    s := treeset.NewOrdered(5, 3, 8)
    s.Add(1)
    fmt.Println(s)   // prints [1,3,5,8]

Two values are considered the same whenever neither orders before the other,
so the policy alone decides uniqueness. The tree is intentionally left
unbalanced; lookups and mutations are O(depth), which degrades to O(n) for
adversarial insertion orders. Sets are not safe for concurrent use, and
mutating a set invalidates iterators derived from it.
*/
package treeset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treeset'.
func tracer() tracing.Trace {
	return tracing.Select("treeset")
}
