package check

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// SameLen verifies that a companion slice has the same length as the slice
// it accompanies. It panics before the caller has mutated anything.
func SameLen(what string, n, m int) {
	if n != m {
		panic(fmt.Sprintf("invalid %v length: %v != %v", what, m, n))
	}
}

// NonEmpty verifies that a slice has at least one element.
func NonEmpty(what string, n int) {
	if n == 0 {
		panic(fmt.Sprintf("empty %v", what))
	}
}

// Interval verifies that lo <= hi.
func Interval[T constraints.Ordered](what string, lo, hi T) {
	if hi < lo {
		panic(fmt.Sprintf("invalid %v interval: %v:%v", what, lo, hi))
	}
}
