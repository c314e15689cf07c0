package sort

import "math/bits"

const (
	// Sub-ranges at or below this length are finished by insertion sort.
	insertionThreshold = 16

	// The recursion depth budget is depthMultiplier * bits.Len(n)
	// partitioning levels before the heapsort fallback takes over.
	depthMultiplier = 2
)

// spans bundles the key slice, the optional companion slices, and the
// comparator chosen at call setup. A nil companion is simply skipped by the
// lock-step move operations; the keys-only and one-companion entry points
// instantiate the unused slots with struct{}.
type spans[K, V, W any] struct {
	keys    []K
	values  []V
	weights []W
	less    Less[K]
}

func (s *spans[K, V, W]) swap(i, j int) {
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
	if s.values != nil {
		s.values[i], s.values[j] = s.values[j], s.values[i]
	}
	if s.weights != nil {
		s.weights[i], s.weights[j] = s.weights[j], s.weights[i]
	}
}

func (s *spans[K, V, W]) sort() {
	n := len(s.keys)
	if n < 2 {
		return
	}
	s.introSort(0, n, depthMultiplier*bits.Len(uint(n)))
}

// introSort dispatches on the sub-range [lo, hi): insertion sort below the
// threshold, heapsort when the depth budget is exhausted, and otherwise one
// partitioning pass followed by recursing into the smaller side. Iterating
// on the larger side instead of recursing keeps the call stack at O(log n)
// regardless of partition quality.
func (s *spans[K, V, W]) introSort(lo, hi, depth int) {
	for hi-lo > insertionThreshold {
		if depth == 0 {
			s.heapSort(lo, hi)
			return
		}
		depth--
		p := s.partition(lo, hi)
		if p-lo < hi-(p+1) {
			s.introSort(lo, p, depth)
			lo = p + 1
		} else {
			s.introSort(p+1, hi, depth)
			hi = p
		}
	}
	if hi-lo > 1 {
		s.insertionSort(lo, hi)
	}
}

// medianOfThree moves the median of keys[a], keys[b], keys[c] into keys[a],
// with companions following each swap.
func (s *spans[K, V, W]) medianOfThree(a, b, c int) {
	m0 := b
	m1 := a
	m2 := c
	if s.less(s.keys[m1], s.keys[m0]) {
		s.swap(m1, m0)
	}
	if s.less(s.keys[m2], s.keys[m1]) {
		s.swap(m2, m1)
		if s.less(s.keys[m1], s.keys[m0]) {
			s.swap(m1, m0)
		}
	}
	// now keys[m0] <= keys[m1] <= keys[m2]
}

// partition performs one Hoare-style pass over [lo, hi). The median of the
// first, middle, and last elements becomes the pivot and is parked at lo;
// the two pointers then walk towards each other, swapping misplaced
// elements across all present slices. On return the pivot sits at the
// returned index p, with [lo, p) <= pivot and [p, hi) >= pivot. Keys equal
// to the pivot may end up on either side; the depth budget, not partition
// quality, bounds the duplicate-heavy worst case.
func (s *spans[K, V, W]) partition(lo, hi int) int {
	mid := lo + (hi-lo)/2
	s.medianOfThree(lo, mid, hi-1)
	i, j := lo, hi
outer:
	for {
		for {
			j--
			if !s.less(s.keys[lo], s.keys[j]) {
				break
			}
		}
		for {
			if i == j {
				break outer
			}
			i++
			if !s.less(s.keys[i], s.keys[lo]) {
				break
			}
		}
		if i == j {
			break outer
		}
		s.swap(i, j)
	}
	s.swap(lo, j)
	return j
}
