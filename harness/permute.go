package harness

// ForEachPermutation calls f once for every permutation of values, starting
// with the order given. The slice passed to f is reused between calls and
// must not be retained or modified by f. Heap's algorithm, iterative.
func ForEachPermutation[T any](values []T, f func([]T)) {
	perm := make([]T, len(values))
	copy(perm, values)
	n := len(perm)
	f(perm)
	if n < 2 {
		return
	}
	c := make([]int, n)
	for i := 0; i < n; {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			f(perm)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}
