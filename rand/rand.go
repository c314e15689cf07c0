/*
Package rand provides deterministic pseudo-random sources and distribution
samplers.

The sources are small bit-manipulation state machines with a narrow
contract: Uint64 produces the next value, Seed reinitialises the state. They
implement golang.org/x/exp/rand.Source, so they can drive the distribution
types of gonum.org/v1/gonum/stat/distuv as well as the samplers in this
package.

None of the types in this package are safe for concurrent use. Create one
source per goroutine, using distinct seeds or Jump to decorrelate streams.
*/
package rand

import "math"

// Source is the contract shared by the generators in this package. It is
// satisfied by *XorShift64 and *Xoshiro256 and is structurally identical to
// golang.org/x/exp/rand.Source.
type Source interface {
	Uint64() uint64
	Seed(seed uint64)
}

// splitmix64 advances a SplitMix64 state and returns the next output. It is
// used to expand seeds into well-mixed generator state, so that nearby
// seeds yield uncorrelated streams.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

/*
XorShift64 is Marsaglia's 64-bit xorshift generator. It is the smallest and
fastest source in this package, with a period of 2^64-1; prefer Xoshiro256
when statistical quality matters more than state size.

The zero value is not a valid generator; use NewXorShift64 or Seed.
*/
type XorShift64 struct {
	state uint64
}

// NewXorShift64 returns a generator seeded with seed.
func NewXorShift64(seed uint64) *XorShift64 {
	x := new(XorShift64)
	x.Seed(seed)
	return x
}

// Seed reinitialises the generator state from seed. The all-zero state is a
// fixed point of the xorshift transition, so a zero seed is expanded
// through SplitMix64 like any other and can never produce it.
func (x *XorShift64) Seed(seed uint64) {
	x.state = splitmix64(&seed)
	if x.state == 0 {
		x.state = 0x9e3779b97f4a7c15
	}
}

// Uint64 returns the next value in the stream.
func (x *XorShift64) Uint64() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

/*
Xoshiro256 is the xoshiro256** generator of Blackman and Vigna, with 256
bits of state and a period of 2^256-1. It is the recommended general-purpose
source in this package.

The zero value is not a valid generator; use NewXoshiro256 or Seed.
*/
type Xoshiro256 struct {
	state [4]uint64
}

// NewXoshiro256 returns a generator seeded with seed.
func NewXoshiro256(seed uint64) *Xoshiro256 {
	x := new(Xoshiro256)
	x.Seed(seed)
	return x
}

// Seed reinitialises the generator state by expanding seed through
// SplitMix64, per the generator authors' recommendation.
func (x *Xoshiro256) Seed(seed uint64) {
	for i := range x.state {
		x.state[i] = splitmix64(&seed)
	}
}

// Uint64 returns the next value in the stream.
func (x *Xoshiro256) Uint64() uint64 {
	s := &x.state
	result := rotl(s[1]*5, 7) * 9
	t := s[1] << 17
	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = rotl(s[3], 45)
	return result
}

// jumpPoly is the canonical xoshiro256 jump polynomial; applying it
// advances the stream by 2^128 steps.
var jumpPoly = [4]uint64{
	0x180ec6d33cfd0aba,
	0xd5a61266f0c9392c,
	0xa9582618e03fc9aa,
	0x39abdc4529b1661c,
}

/*
Jump advances the generator by 2^128 steps, equivalent to 2^128 calls of
Uint64. Jump can be used to generate 2^128 non-overlapping subsequences from
a single seed, one per logical stream.
*/
func (x *Xoshiro256) Jump() {
	var s0, s1, s2, s3 uint64
	for _, p := range jumpPoly {
		for b := 0; b < 64; b++ {
			if p&(1<<uint(b)) != 0 {
				s0 ^= x.state[0]
				s1 ^= x.state[1]
				s2 ^= x.state[2]
				s3 ^= x.state[3]
			}
			x.Uint64()
		}
	}
	x.state = [4]uint64{s0, s1, s2, s3}
}

func rotl(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

/*
Float64 draws a uniform float64 in [0, 1) from src, using the top 53 bits of
one output so that every representable value is equally likely.
*/
func Float64(src Source) float64 {
	return float64(src.Uint64()>>11) / (1 << 53)
}

/*
Uint64n draws a uniform value in [0, n) from src, using rejection to remove
the modulo bias. Uint64n panics if n is 0.
*/
func Uint64n(src Source, n uint64) uint64 {
	if n == 0 {
		panic("invalid bound: 0")
	}
	// Reject draws from the tail that would wrap unevenly.
	limit := math.MaxUint64 - math.MaxUint64%n
	for {
		v := src.Uint64()
		if v < limit {
			return v % n
		}
	}
}
