package treeset

// The set-algebra operations are derived: they are built entirely from
// ordered iteration plus Add and Contains, and never touch nodes directly.
// All three return a new set and leave both operands unchanged.

// Plus computes the set-union of s and other.
func (s *Set[T, O]) Plus(other *Set[T, O]) *Set[T, O] {
	union := &Set[T, O]{}
	s.Each(func(v T) bool {
		union.Add(v)
		return true
	})
	other.Each(func(v T) bool {
		union.Add(v)
		return true
	})
	return union
}

// Intersect computes the set-intersection of s and other: exactly the
// values contained in both.
func (s *Set[T, O]) Intersect(other *Set[T, O]) *Set[T, O] {
	isect := &Set[T, O]{}
	s.Each(func(v T) bool {
		if other.Contains(v) {
			isect.Add(v)
		}
		return true
	})
	return isect
}

// Minus computes the set-difference: the values of s not contained in
// other.
func (s *Set[T, O]) Minus(other *Set[T, O]) *Set[T, O] {
	diff := &Set[T, O]{}
	s.Each(func(v T) bool {
		if !other.Contains(v) {
			diff.Add(v)
		}
		return true
	})
	return diff
}
