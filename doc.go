// Package numkit provides low-level numeric and randomness primitives:
// pseudo-random number generators, statistical distribution samplers,
// vectorized span reductions, and in-place sorting of parallel slices.
//
// Numkit provides the following subpackages:
//
// numkit/sort provides an introspective sort over a key slice and up to two
// companion slices that are permuted in lock-step with the keys.
//
// numkit/rand provides deterministic pseudo-random sources (xorshift,
// xoshiro256**) and distribution samplers built on top of them. The sources
// implement golang.org/x/exp/rand.Source, so they can also drive the
// distribution types of gonum.org/v1/gonum.
//
// numkit/span provides single-pass reductions over numeric slices, with an
// accelerated path for float64 spans.
//
// All primitives are synchronous and single-threaded: they never block,
// never spawn goroutines, and mutate only the slices the caller passes in.
package numkit
