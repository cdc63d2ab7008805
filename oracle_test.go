package treeset

import (
	"math/rand"
	"testing"

	gods "github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// A long random add/del/contains sequence, cross-checked step by step
// against gods' red-black-tree set.
func TestOracleRandomOps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treeset")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(177))
	s := NewOrdered[int]()
	oracle := gods.NewWithIntComparator()
	for i := 0; i < 5000; i++ {
		v := rng.Intn(200)
		switch rng.Intn(3) {
		case 0:
			require.Equal(t, !oracle.Contains(v), s.Add(v), "add of %d at step %d", v, i)
			oracle.Add(v)
		case 1:
			require.Equal(t, oracle.Contains(v), s.Del(v), "del of %d at step %d", v, i)
			oracle.Remove(v)
		default:
			require.Equal(t, oracle.Contains(v), s.Contains(v), "contains %d at step %d", v, i)
		}
	}
	require.Equal(t, oracle.Size(), s.Len())
	require.True(t, s.consistent(), "tree inconsistent after random ops")
	vals := s.Values()
	require.Len(t, vals, oracle.Size())
	for i, v := range oracle.Values() {
		require.Equal(t, v.(int), vals[i], "traversal mismatch at position %d", i)
	}
}

func TestOracleCloneUnaffectedByRandomOps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treeset")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(42))
	s := NewOrdered[int]()
	for i := 0; i < 100; i++ {
		s.Add(rng.Intn(500))
	}
	snapshot := s.Clone()
	want := snapshot.Values()
	for i := 0; i < 1000; i++ {
		v := rng.Intn(500)
		if rng.Intn(2) == 0 {
			s.Add(v)
		} else {
			s.Del(v)
		}
	}
	require.Equal(t, want, snapshot.Values(), "clone changed while original was mutated")
	require.True(t, snapshot.consistent())
}
