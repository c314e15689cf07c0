/*
Package sort provides an in-place introspective sort over a key slice and up
to two companion slices.

The key slice drives the sort order; the companion slices carry no ordering
semantics of their own and are permuted element-for-element in lock-step with
the keys, so that every (key, value, weight) triple present in the input is
present in the output. The sort is not stable.

The algorithm is a hybrid: quicksort partitioning with median-of-three pivot
selection, insertion sort for small sub-ranges, and a heapsort fallback when
a recursion depth budget is exhausted. The fallback bounds the worst case at
O(n log n) comparisons and swaps even for adversarial inputs, using O(log n)
bookkeeping and O(1) scratch per swap.

To sort a sub-range of larger backing slices, pass sub-slices: for example
SortPairsFunc(keys[lo:hi], values[lo:hi], less) leaves elements outside
[lo, hi) untouched.
*/
package sort

import (
	"golang.org/x/exp/constraints"

	"github.com/exascience/numkit/internal/check"
)

/*
A Less function reports whether a should sort before b. It must describe a
consistent total order and be free of side effects for the duration of one
sort call; the sort only ever branches on its result, never indexes with it.
*/
type Less[K any] func(a, b K) bool

/*
NaturalOrder returns the Less function for a type's natural ascending order.
The convenience entry points below select it once per call, so the hot loop
carries no custom-versus-natural branch.
*/
func NaturalOrder[K constraints.Ordered]() Less[K] {
	return func(a, b K) bool { return a < b }
}

/*
Sort sorts keys in ascending natural order.
*/
func Sort[K constraints.Ordered](keys []K) {
	SortFunc(keys, NaturalOrder[K]())
}

/*
SortFunc sorts keys in ascending order as determined by less.
*/
func SortFunc[K any](keys []K, less Less[K]) {
	s := spans[K, struct{}, struct{}]{keys: keys, less: less}
	s.sort()
}

/*
SortPairs sorts keys in ascending natural order and permutes values in
lock-step with the keys.

SortPairs panics before mutating anything if len(values) != len(keys).
*/
func SortPairs[K constraints.Ordered, V any](keys []K, values []V) {
	SortPairsFunc(keys, values, NaturalOrder[K]())
}

/*
SortPairsFunc sorts keys in ascending order as determined by less and
permutes values in lock-step with the keys.

SortPairsFunc panics before mutating anything if len(values) != len(keys).
*/
func SortPairsFunc[K, V any](keys []K, values []V, less Less[K]) {
	check.SameLen("values", len(keys), len(values))
	s := spans[K, V, struct{}]{keys: keys, values: values, less: less}
	s.sort()
}

/*
SortTriples sorts keys in ascending natural order and permutes values and
weights in lock-step with the keys. Either companion may be nil, in which
case only the present companions are permuted.

SortTriples panics before mutating anything if a non-nil companion's length
differs from len(keys).
*/
func SortTriples[K constraints.Ordered, V, W any](keys []K, values []V, weights []W) {
	SortTriplesFunc(keys, values, weights, NaturalOrder[K]())
}

/*
SortTriplesFunc sorts keys in ascending order as determined by less and
permutes values and weights in lock-step with the keys. Either companion may
be nil, in which case only the present companions are permuted.

SortTriplesFunc panics before mutating anything if a non-nil companion's
length differs from len(keys).
*/
func SortTriplesFunc[K, V, W any](keys []K, values []V, weights []W, less Less[K]) {
	if values != nil {
		check.SameLen("values", len(keys), len(values))
	}
	if weights != nil {
		check.SameLen("weights", len(keys), len(weights))
	}
	s := spans[K, V, W]{keys: keys, values: values, weights: weights, less: less}
	s.sort()
}

/*
IsSorted determines whether keys are in ascending natural order.
*/
func IsSorted[K constraints.Ordered](keys []K) bool {
	return IsSortedFunc(keys, NaturalOrder[K]())
}

/*
IsSortedFunc determines whether keys are in ascending order as determined by
less.
*/
func IsSortedFunc[K any](keys []K, less Less[K]) bool {
	for i := len(keys) - 1; i > 0; i-- {
		if less(keys[i], keys[i-1]) {
			return false
		}
	}
	return true
}

// Stats accumulates counters from an instrumented comparator.
type Stats struct {
	// Comparisons is the number of times the wrapped Less function has
	// been invoked.
	Comparisons uint64
}

/*
CountingLess wraps less so that every invocation is counted in the returned
Stats. It exists so that callers can verify comparison budgets; the wrapper
adds one counter increment per comparison and nothing else.
*/
func CountingLess[K any](less Less[K]) (Less[K], *Stats) {
	st := new(Stats)
	return func(a, b K) bool {
		st.Comparisons++
		return less(a, b)
	}, st
}
