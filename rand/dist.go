package rand

import (
	"math"

	"github.com/exascience/numkit/internal/check"
)

/*
Normal samples from the normal (Gaussian) distribution with mean Mu and
standard deviation Sigma, using the Box-Muller transform over the injected
source. Box-Muller produces deviates in pairs; Sample hands out the cached
second deviate before consuming new uniforms.
*/
type Normal struct {
	Mu    float64
	Sigma float64

	src    Source
	spare  float64
	cached bool
}

// NewNormal returns a sampler for N(mu, sigma^2) drawing from src. It
// panics if sigma is negative.
func NewNormal(src Source, mu, sigma float64) *Normal {
	check.Interval("sigma", 0, sigma)
	return &Normal{Mu: mu, Sigma: sigma, src: src}
}

// Sample returns one normal deviate.
func (n *Normal) Sample() float64 {
	if n.cached {
		n.cached = false
		return n.Mu + n.Sigma*n.spare
	}
	u1 := Float64(n.src)
	for u1 == 0 {
		// log(0) is -Inf; redraw the open endpoint.
		u1 = Float64(n.src)
	}
	u2 := Float64(n.src)
	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	n.spare = r * math.Sin(theta)
	n.cached = true
	return n.Mu + n.Sigma*r*math.Cos(theta)
}

/*
Uniform samples from the continuous uniform distribution on [Min, Max).
*/
type Uniform struct {
	Min float64
	Max float64

	src Source
}

// NewUniform returns a sampler for the uniform distribution on [min, max)
// drawing from src. It panics if max < min.
func NewUniform(src Source, min, max float64) *Uniform {
	check.Interval("uniform", min, max)
	return &Uniform{Min: min, Max: max, src: src}
}

// Sample returns one uniform deviate.
func (u *Uniform) Sample() float64 {
	return u.Min + (u.Max-u.Min)*Float64(u.src)
}
