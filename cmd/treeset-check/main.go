/*
Command treeset-check brute-forces the treeset invariants: for small value
sets it exercises every insertion ordering crossed with every deletion
ordering, plus iteration, equality and formatting over all orderings — for
int and string elements under both ordering policies. Outcomes are tallied
by the harness package and reported per suite; the exit code is nonzero if
any check failed.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/treeset"
	"github.com/npillmayer/treeset/harness"
	"github.com/pterm/pterm"
)

func main() {
	maxSize := flag.Int("max", 5, "largest value-set size to brute-force (3..6)")
	quiet := flag.Bool("quiet", false, "report only failing suites and the summary")
	flag.Parse()
	if *maxSize < 3 {
		*maxSize = 3
	}
	if *maxSize > 6 {
		*maxSize = 6
	}

	pterm.Info.Println("Checking the treeset package.")
	ctx := harness.New(func(out harness.Outcome) {
		switch {
		case !out.OK():
			pterm.Error.Println(out.String())
		case !*quiet:
			pterm.Info.Println(out.String())
		}
	})

	for n := 3; n <= *maxSize; n++ {
		ints := intValues(n)
		strs := stringValues(n)
		suites[int, treeset.Ascending[int]](ctx, "int", "ascending", ints)
		suites[int, treeset.Descending[int]](ctx, "int", "descending", ints)
		suites[string, treeset.Ascending[string]](ctx, "string", "ascending", strs)
		suites[string, treeset.Descending[string]](ctx, "string", "descending", strs)
	}

	passed, failed := ctx.Totals()
	if failed > 0 {
		pterm.Error.Println(fmt.Sprintf("%d of %d checks failed", failed, passed+failed))
		os.Exit(1)
	}
	pterm.Success.Println(fmt.Sprintf("all %d checks passed", passed))
}

// suites runs the four brute-force suites for one element type and policy.
func suites[T comparable, O treeset.Order[T]](ctx *harness.Context, kind, policy string, values []T) {
	n := len(values)
	ctx.Desc("Add/delete all sequences (%d %s values, %s)", n, kind, policy)
	checkAddDel[T, O](ctx, values)
	ctx.Result()

	ctx.Desc("Add/iterate over all sequences (%d %s values, %s)", n, kind, policy)
	checkIter[T, O](ctx, values)
	ctx.Result()

	ctx.Desc("Equal/unequal over all sequences (%d %s values, %s)", n, kind, policy)
	checkEqual[T, O](ctx, values)
	ctx.Result()

	ctx.Desc("Format over all sequences (%d %s values, %s)", n, kind, policy)
	checkFormat[T, O](ctx, values)
	ctx.Result()
}

// checkAddDel adds the values in every order and, for each, deletes them in
// every order, verifying size and membership at both ends.
func checkAddDel[T comparable, O treeset.Order[T]](ctx *harness.Context, values []T) {
	harness.ForEachPermutation(values, func(addOrder []T) {
		add := append([]T(nil), addOrder...) // outlives the inner driver
		harness.ForEachPermutation(values, func(delOrder []T) {
			s := treeset.New[T, O]()
			for _, v := range add {
				ctx.Check(s.Add(v))
			}
			ctx.Check(s.Len() == len(add))
			for _, v := range values {
				ctx.Check(s.Contains(v))
			}
			for _, v := range delOrder {
				ctx.Check(s.Del(v))
			}
			ctx.Check(s.Len() == 0)
			for _, v := range values {
				ctx.Check(!s.Contains(v))
			}
		})
	})
}

// checkIter verifies that iteration yields the same sequence no matter the
// insertion order.
func checkIter[T comparable, O treeset.Order[T]](ctx *harness.Context, values []T) {
	want := treeset.New[T, O](values...).Values()
	harness.ForEachPermutation(values, func(order []T) {
		got := treeset.New[T, O](order...).Values()
		ok := len(got) == len(want)
		for i := 0; ok && i < len(want); i++ {
			ok = got[i] == want[i]
		}
		ctx.Check(ok)
	})
}

// checkEqual verifies order-independence of set equality, and that a
// strictly smaller set never compares equal.
func checkEqual[T comparable, O treeset.Order[T]](ctx *harness.Context, values []T) {
	ref := treeset.New[T, O](values...)
	smaller := treeset.New[T, O](values[:len(values)-1]...)
	harness.ForEachPermutation(values, func(order []T) {
		s := treeset.New[T, O](order...)
		ctx.Check(s.Equal(ref))
		ctx.Check(ref.Equal(s))
		ctx.Check(!s.Equal(smaller))
		ctx.Check(!smaller.Equal(s))
	})
}

// checkFormat verifies that every insertion order formats identically.
func checkFormat[T comparable, O treeset.Order[T]](ctx *harness.Context, values []T) {
	want := treeset.New[T, O](values...).String()
	harness.ForEachPermutation(values, func(order []T) {
		ctx.Check(treeset.New[T, O](order...).String() == want)
	})
}

func intValues(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return v
}

// stringValues returns ["AA", "BBB", "CCCC", ...] of length n.
func stringValues(n int) []string {
	v := make([]string, n)
	for i := range v {
		v[i] = strings.Repeat(string(rune('A'+i)), 2+i)
	}
	return v
}
