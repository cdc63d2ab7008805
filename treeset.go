package treeset

import (
	"fmt"
	"strings"
)

// Set is an ordered set of unique values, backed by an unbalanced binary
// search tree. The ordering policy O is a type parameter, so sets with
// different policies are distinct types. The zero value is an empty set,
// ready for use:
//
//     var s treeset.Set[int, treeset.Ascending[int]]
//     s.Add(42)
//
// Values are unique up to the policy: if neither of two values orders before
// the other, they count as the same value.
type Set[T any, O Order[T]] struct {
	root *node[T]
	size int
	cmp  O
}

// New returns a set holding the given values. Duplicates among the values
// are absorbed silently, per Add's contract.
func New[T any, O Order[T]](values ...T) *Set[T, O] {
	s := &Set[T, O]{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Len returns the number of values in the set. O(1).
func (s *Set[T, O]) Len() int { return s.size }

// Add inserts value into the set, returning true on success. If an
// equivalent value is already present, Add returns false and the set is
// left unchanged.
func (s *Set[T, O]) Add(value T) bool {
	if s.root == nil {
		s.root = &node[T]{value: value}
		s.size = 1
		return true
	}
	n := s.root
	for {
		if s.cmp.Less(value, n.value) {
			if n.left == nil {
				n.left = &node[T]{value: value}
				s.size++
				return true
			}
			n = n.left
		} else if s.cmp.Less(n.value, value) {
			if n.right == nil {
				n.right = &node[T]{value: value}
				s.size++
				return true
			}
			n = n.right
		} else {
			tracer().Debugf("add %v: equivalent value present", value)
			return false
		}
	}
}

// Contains reports whether an equivalent value is present in the set.
func (s *Set[T, O]) Contains(value T) bool {
	for n := s.root; n != nil; {
		switch {
		case s.cmp.Less(value, n.value):
			n = n.left
		case s.cmp.Less(n.value, value):
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Del removes value from the set, returning false if no equivalent value is
// present. The removed node's two subtrees are rejoined with merge and the
// result takes the node's place, so the search-tree invariant survives
// without any rebalancing.
func (s *Set[T, O]) Del(value T) bool {
	var parent *node[T]
	for n := s.root; n != nil; {
		if s.cmp.Less(value, n.value) {
			parent, n = n, n.left
		} else if s.cmp.Less(n.value, value) {
			parent, n = n, n.right
		} else {
			joined := merge(n.left, n.right)
			if parent == nil {
				s.root = joined
			} else {
				parent.replaceChild(n, joined)
			}
			s.size--
			tracer().Debugf("del %v: size now %d", value, s.size)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the set. The copy shares no nodes with s;
// mutating either afterwards is invisible to the other.
func (s *Set[T, O]) Clone() *Set[T, O] {
	return &Set[T, O]{root: s.root.clone(), size: s.size}
}

// CopyFrom replaces the contents of s with a deep copy of other.
// s.CopyFrom(s) is a no-op.
func (s *Set[T, O]) CopyFrom(other *Set[T, O]) {
	if s == other {
		return
	}
	s.root = other.root.clone()
	s.size = other.size
}

// MoveFrom transfers the contents of other into s, leaving other empty.
// No nodes are copied. s.MoveFrom(s) is a no-op.
func (s *Set[T, O]) MoveFrom(other *Set[T, O]) {
	if s == other {
		return
	}
	s.root, s.size = other.root, other.size
	other.root, other.size = nil, 0
}

// Equal reports whether s and other hold equivalent values in the same
// order, position by position. Tree shape plays no role.
func (s *Set[T, O]) Equal(other *Set[T, O]) bool {
	if s.size != other.size {
		return false
	}
	it, ot := s.Begin(), other.Begin()
	for !it.Done() {
		a, _ := it.Value()
		b, _ := ot.Value()
		if s.cmp.Less(a, b) || s.cmp.Less(b, a) {
			return false
		}
		it.Next()
		ot.Next()
	}
	return true
}

// Each calls f for every value in comparator order, stopping early when f
// returns false.
func (s *Set[T, O]) Each(f func(T) bool) {
	for it := s.Begin(); !it.Done(); it.Next() {
		v, _ := it.Value()
		if !f(v) {
			return
		}
	}
}

// Values returns the values of the set in comparator order.
func (s *Set[T, O]) Values() []T {
	vals := make([]T, 0, s.size)
	s.Each(func(v T) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}

// String renders the set as "[v1,v2,...,vn]" in comparator order, with no
// whitespace. An empty set renders as "[]".
func (s *Set[T, O]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	s.Each(func(v T) bool {
		if !first {
			b.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
		return true
	})
	b.WriteByte(']')
	return b.String()
}
