package sort

// siftDown restores the max-heap property for the heap rooted at root,
// where the heap occupies keys[first : first+hi] and indices are relative
// to first. Companions follow every heap swap.
func (s *spans[K, V, W]) siftDown(root, hi, first int) {
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && s.less(s.keys[first+child], s.keys[first+child+1]) {
			child++
		}
		if !s.less(s.keys[first+root], s.keys[first+child]) {
			return
		}
		s.swap(first+root, first+child)
		root = child
	}
}

// heapSort sorts [lo, hi) in O(m log m) worst case with O(1) extra space.
// It is the fallback that caps the overall sort at O(n log n) when
// partitioning has gone too deep.
func (s *spans[K, V, W]) heapSort(lo, hi int) {
	first := lo
	n := hi - lo

	// Build the max-heap from the last parent down.
	for i := n/2 - 1; i >= 0; i-- {
		s.siftDown(i, n, first)
	}

	// Repeatedly move the maximum to the end of the shrinking range.
	for i := n - 1; i >= 1; i-- {
		s.swap(first, first+i)
		s.siftDown(0, i, first)
	}
}
