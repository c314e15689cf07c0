/*
Package span provides single-pass reductions over numeric slices.

Every reduction has a generic scalar implementation and, for []float64
arguments, a fast path that delegates to the accelerated kernels of
gonum.org/v1/gonum/floats. The fast path is selected by a dynamic type test
at the call boundary, never inside the loop.
*/
package span

import (
	"gonum.org/v1/gonum/floats"

	"github.com/exascience/numkit"
	"github.com/exascience/numkit/internal/check"
)

/*
Clamp limits every element of s to the interval [lo, hi] in place. It
panics if hi < lo.
*/
func Clamp[T numkit.Real](s []T, lo, hi T) {
	check.Interval("clamp", lo, hi)
	for i, v := range s {
		switch {
		case v < lo:
			s[i] = lo
		case v > hi:
			s[i] = hi
		}
	}
}

/*
Min returns the smallest element of s. It panics if s is empty.
*/
func Min[T numkit.Real](s []T) T {
	check.NonEmpty("span", len(s))
	if f, ok := any(s).([]float64); ok {
		return any(floats.Min(f)).(T)
	}
	min := s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

/*
Max returns the largest element of s. It panics if s is empty.
*/
func Max[T numkit.Real](s []T) T {
	check.NonEmpty("span", len(s))
	if f, ok := any(s).([]float64); ok {
		return any(floats.Max(f)).(T)
	}
	max := s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

/*
Sum returns the sum of the elements of s. An empty span sums to zero.
*/
func Sum[T numkit.Real](s []T) T {
	if f, ok := any(s).([]float64); ok {
		return any(floats.Sum(f)).(T)
	}
	var sum T
	for _, v := range s {
		sum += v
	}
	return sum
}

/*
SumSqDelta returns the sum of squared differences between a and b,
sum((a[i]-b[i])^2). It panics if the spans differ in length.
*/
func SumSqDelta[T numkit.Real](a, b []T) T {
	check.SameLen("span", len(a), len(b))
	if fa, ok := any(a).([]float64); ok {
		d := floats.Distance(fa, any(b).([]float64), 2)
		return any(d * d).(T)
	}
	var sum T
	for i, v := range a {
		d := v - b[i]
		sum += d * d
	}
	return sum
}
