package treeset

// consistent validates the search-tree invariant and the cached size. It is
// diagnostic only: no public operation calls it or depends on its result;
// the tests run it after mutations. Violations are reported through the
// package tracer, and the check keeps going after the first finding so a
// single run surfaces every broken node.
func (s *Set[T, O]) consistent() bool {
	count := 0
	ok := s.bracket(s.root, nil, nil, &count)
	if count != s.size {
		tracer().Errorf("tree holds %d nodes, cached size is %d", count, s.size)
		ok = false
	}
	return ok
}

// bracket checks that every value in the subtree rooted at n lies strictly
// between lo and hi under the set's ordering; a nil bound is open. The
// bounds tighten to n's value on the way down, which catches misplaced
// values arbitrarily deep below the node they conflict with.
func (s *Set[T, O]) bracket(n *node[T], lo, hi *T, count *int) bool {
	if n == nil {
		return true
	}
	*count++
	ok := true
	if lo != nil && !s.cmp.Less(*lo, n.value) {
		tracer().Errorf("node %v at or below lower bound %v", n.value, *lo)
		ok = false
	}
	if hi != nil && !s.cmp.Less(n.value, *hi) {
		tracer().Errorf("node %v at or above upper bound %v", n.value, *hi)
		ok = false
	}
	v := n.value
	okLeft := s.bracket(n.left, lo, &v, count)
	okRight := s.bracket(n.right, &v, hi, count)
	return ok && okLeft && okRight
}
