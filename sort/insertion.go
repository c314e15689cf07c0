package sort

// insertionSort sorts [lo, hi) in place. Each key shift is mirrored on the
// present companions, with one temporary slot per slice for the element
// being inserted.
func (s *spans[K, V, W]) insertionSort(lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		key := s.keys[i]
		var value V
		var weight W
		if s.values != nil {
			value = s.values[i]
		}
		if s.weights != nil {
			weight = s.weights[i]
		}
		j := i
		for j > lo && s.less(key, s.keys[j-1]) {
			s.keys[j] = s.keys[j-1]
			if s.values != nil {
				s.values[j] = s.values[j-1]
			}
			if s.weights != nil {
				s.weights[j] = s.weights[j-1]
			}
			j--
		}
		if j == i {
			continue
		}
		s.keys[j] = key
		if s.values != nil {
			s.values[j] = value
		}
		if s.weights != nil {
			s.weights[j] = weight
		}
	}
}
