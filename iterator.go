package treeset

// Iterator is an in-order cursor over a Set. It references the set's nodes
// without owning any of them, holding only the stack of ancestors still to
// be visited. The zero value is the terminal ("end") iterator.
//
// An iterator is built for one traversal: mutating the set invalidates any
// iterator derived from it, without detection. Copies of an iterator share
// traversal state; advance only one of them.
type Iterator[T any] struct {
	stack []*node[T]
	cur   *node[T]
}

// Begin returns an iterator positioned at the first value under the set's
// ordering. For an empty set, Begin equals End.
func (s *Set[T, O]) Begin() Iterator[T] {
	var it Iterator[T]
	it.descendLeft(s.root)
	return it
}

// End returns the terminal iterator.
func (s *Set[T, O]) End() Iterator[T] {
	return Iterator[T]{}
}

// descendLeft pushes every node on the path to the leftmost descendant of n
// onto the stack, then pops the top as the new current node. With a nil n
// and an empty stack the iterator becomes terminal.
func (it *Iterator[T]) descendLeft(n *node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
	if top := len(it.stack) - 1; top >= 0 {
		it.cur = it.stack[top]
		it.stack = it.stack[:top]
	} else {
		it.cur = nil
	}
}

// Next advances the iterator to the next value in order. Advancing a
// terminal iterator is a no-op.
func (it *Iterator[T]) Next() {
	if it.cur == nil {
		return
	}
	it.descendLeft(it.cur.right)
}

// Done reports whether the iterator is past the last value.
func (it Iterator[T]) Done() bool { return it.cur == nil }

// Value returns the value under the cursor, by copy. A terminal iterator
// yields the zero value of T and ok=false.
func (it Iterator[T]) Value() (v T, ok bool) {
	if it.cur == nil {
		return v, false
	}
	return it.cur.value, true
}

// Equal reports whether two iterators reference the identical node, or are
// both terminal. Equivalent values held at distinct nodes do not make
// iterators equal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.cur == other.cur
}
