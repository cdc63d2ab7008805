package treeset

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treeset/harness"
)

// The brute-force suites below mirror cmd/treeset-check with bounded sizes:
// every insertion ordering, and for add/del every deletion ordering on top.

func TestAddDelAllOrders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treeset")
	defer teardown()
	//
	values := []int{0, 1, 2, 3}
	harness.ForEachPermutation(values, func(addOrder []int) {
		add := append([]int(nil), addOrder...) // outlives the inner driver
		harness.ForEachPermutation(values, func(delOrder []int) {
			s := NewOrdered[int]()
			for _, v := range add {
				if !s.Add(v) {
					t.Fatalf("add of %d failed for order %v", v, add)
				}
			}
			if s.Len() != len(values) {
				t.Fatalf("expected length %d after adds %v, have %d", len(values), add, s.Len())
			}
			for _, v := range values {
				if !s.Contains(v) {
					t.Fatalf("expected %d present after adds %v, isn't", v, add)
				}
			}
			if !s.consistent() {
				t.Fatalf("inconsistent tree after adds %v:%s", add, printSet(s))
			}
			for _, v := range delOrder {
				if !s.Del(v) {
					t.Fatalf("del of %d failed, add order %v, del order %v", v, add, delOrder)
				}
				if !s.consistent() {
					t.Fatalf("inconsistent tree after deleting %d (adds %v, dels %v):%s",
						v, add, delOrder, printSet(s))
				}
			}
			if s.Len() != 0 {
				t.Fatalf("expected empty set after dels %v, length is %d", delOrder, s.Len())
			}
			for _, v := range values {
				if s.Contains(v) {
					t.Fatalf("expected %d gone after dels %v, isn't", v, delOrder)
				}
			}
		})
	})
}

func TestIterationOrderIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treeset")
	defer teardown()
	//
	values := []int{0, 1, 2, 3, 4}
	want := "[0,1,2,3,4]"
	harness.ForEachPermutation(values, func(order []int) {
		s := NewOrdered(order...)
		if got := s.String(); got != want {
			t.Fatalf("insertion order %v: expected %s, got %s", order, want, got)
		}
	})
}

func TestIterationOrderIndependentDescending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treeset")
	defer teardown()
	//
	values := []int{0, 1, 2, 3, 4}
	want := "[4,3,2,1,0]"
	harness.ForEachPermutation(values, func(order []int) {
		s := NewReversed(order...)
		if got := s.String(); got != want {
			t.Fatalf("insertion order %v: expected %s, got %s", order, want, got)
		}
	})
}

func TestEqualityAllOrders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treeset")
	defer teardown()
	//
	values := []int{0, 1, 2, 3}
	ref := NewOrdered(values...)
	smaller := NewOrdered(values[:len(values)-1]...)
	harness.ForEachPermutation(values, func(order []int) {
		s := NewOrdered(order...)
		if !s.Equal(ref) || !ref.Equal(s) {
			t.Fatalf("insertion order %v: expected set to equal reference, doesn't", order)
		}
		if s.Equal(smaller) || smaller.Equal(s) {
			t.Fatalf("insertion order %v: expected set to differ from smaller set, doesn't", order)
		}
	})
}

func TestStringsAllOrders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treeset")
	defer teardown()
	//
	values := []string{"AA", "BBB", "CCCC", "DDDDD"}
	want := "[AA,BBB,CCCC,DDDDD]"
	harness.ForEachPermutation(values, func(order []string) {
		s := NewOrdered(order...)
		if got := s.String(); got != want {
			t.Fatalf("insertion order %v: expected %s, got %s", order, want, got)
		}
	})
}

// Interleaved deletes: after removing every second value (in every insertion
// order), the remainder must iterate strictly monotonically.
func TestInvariantAfterInterleavedDeletes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treeset")
	defer teardown()
	//
	values := []int{0, 1, 2, 3, 4}
	harness.ForEachPermutation(values, func(order []int) {
		s := NewOrdered(order...)
		for _, v := range order {
			if v%2 == 1 {
				s.Del(v)
			}
		}
		if !s.consistent() {
			t.Fatalf("inconsistent tree for insertion order %v:%s", order, printSet(s))
		}
		got := s.Values()
		for i := 1; i < len(got); i++ {
			if got[i-1] >= got[i] {
				t.Fatalf("insertion order %v: traversal not strictly increasing: %v", order, got)
			}
		}
		if want := "[0,2,4]"; s.String() != want {
			t.Fatalf("insertion order %v: expected %s, got %s", order, want, s.String())
		}
	})
}

func TestPermutationDriverCoversAllOrders(t *testing.T) {
	seen := map[string]bool{}
	harness.ForEachPermutation([]string{"a", "b", "c", "d"}, func(p []string) {
		seen[strings.Join(p, "")] = true
	})
	if len(seen) != 24 {
		t.Errorf("expected 24 distinct permutations of 4 values, saw %d", len(seen))
	}
}
