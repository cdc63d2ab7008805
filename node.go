package treeset

// node is the internal tree representation of a Set. A node's value is set
// once at creation and never rewritten; all restructuring happens by
// relinking child pointers.
type node[T any] struct {
	value       T
	left, right *node[T]
}

// replaceChild relinks whichever child slot of n holds old to repl instead.
func (n *node[T]) replaceChild(old, repl *node[T]) {
	if n.left == old {
		n.left = repl
	} else {
		n.right = repl
	}
}

// merge joins two subtrees into one, assuming every value in small orders
// strictly before every value in big. If either side is nil the other is
// returned as-is. Otherwise small becomes the left child of big's leftmost
// node, so big keeps its internal shape and only its left spine grows.
func merge[T any](small, big *node[T]) *node[T] {
	if small == nil {
		return big
	}
	if big == nil {
		return small
	}
	n := big
	for n.left != nil {
		n = n.left
	}
	n.left = small
	return big
}

// clone deep-copies the subtree rooted at n. The copy shares no nodes with
// the original. Iterative with an explicit work stack, so chain-shaped
// trees cannot exhaust the call stack.
func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	cp := &node[T]{value: n.value}
	srcs := []*node[T]{n}  // parallel work stacks: srcs[i] is the original
	dsts := []*node[T]{cp} // of the already-created copy dsts[i]
	for len(srcs) > 0 {
		src, dst := srcs[len(srcs)-1], dsts[len(dsts)-1]
		srcs, dsts = srcs[:len(srcs)-1], dsts[:len(dsts)-1]
		if l := src.left; l != nil {
			dst.left = &node[T]{value: l.value}
			srcs = append(srcs, l)
			dsts = append(dsts, dst.left)
		}
		if r := src.right; r != nil {
			dst.right = &node[T]{value: r.value}
			srcs = append(srcs, r)
			dsts = append(dsts, dst.right)
		}
	}
	return cp
}
