package span

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exascience/numkit/rand"
)

func randomFloats(seed uint64, n int) []float64 {
	src := rand.NewXoshiro256(seed)
	s := make([]float64, n)
	for i := range s {
		s[i] = rand.Float64(src)*200 - 100
	}
	return s
}

// toFloat32 converts a span so the generic fallback is exercised.
func toFloat32(s []float64) []float32 {
	out := make([]float32, len(s))
	for i, v := range s {
		out[i] = float32(v)
	}
	return out
}

func TestClamp(t *testing.T) {
	t.Run("Floats", func(t *testing.T) {
		s := []float64{-3, -1, 0, 1, 3}
		Clamp(s, -1, 1)
		require.Equal(t, []float64{-1, -1, 0, 1, 1}, s)
	})

	t.Run("Ints", func(t *testing.T) {
		s := []int{5, 10, 15, 20}
		Clamp(s, 8, 16)
		require.Equal(t, []int{8, 10, 15, 16}, s)
	})

	t.Run("EmptyIsNoop", func(t *testing.T) {
		require.NotPanics(t, func() { Clamp([]float64{}, 0, 1) })
	})

	t.Run("InvalidIntervalPanics", func(t *testing.T) {
		require.Panics(t, func() { Clamp([]float64{1}, 2, 1) })
	})
}

func TestMinMax(t *testing.T) {
	t.Run("Float64FastPath", func(t *testing.T) {
		s := []float64{3.5, -2.25, 7.75, 0}
		require.Equal(t, -2.25, Min(s))
		require.Equal(t, 7.75, Max(s))
	})

	t.Run("GenericFallback", func(t *testing.T) {
		require.Equal(t, int32(-9), Min([]int32{4, -9, 0, 12}))
		require.Equal(t, int32(12), Max([]int32{4, -9, 0, 12}))
	})

	t.Run("FastPathAgreesWithFallback", func(t *testing.T) {
		f64 := randomFloats(1, 10000)
		f32 := toFloat32(f64)
		require.InDelta(t, Min(f64), float64(Min(f32)), 1e-4)
		require.InDelta(t, Max(f64), float64(Max(f32)), 1e-4)
	})

	t.Run("EmptyPanics", func(t *testing.T) {
		require.Panics(t, func() { Min([]float64{}) })
		require.Panics(t, func() { Max([]float64{}) })
	})
}

func TestSum(t *testing.T) {
	require.Equal(t, 10.0, Sum([]float64{1, 2, 3, 4}))
	require.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	require.Equal(t, 0.0, Sum([]float64{}))
}

func TestSumSqDelta(t *testing.T) {
	t.Run("Float64FastPath", func(t *testing.T) {
		a := []float64{1, 2, 3}
		b := []float64{1, 4, 0}
		require.InDelta(t, 13.0, SumSqDelta(a, b), 1e-12)
	})

	t.Run("GenericFallback", func(t *testing.T) {
		a := []int{1, 2, 3}
		b := []int{1, 4, 0}
		require.Equal(t, 13, SumSqDelta(a, b))
	})

	t.Run("FastPathAgreesWithFallback", func(t *testing.T) {
		a := randomFloats(2, 5000)
		b := randomFloats(3, 5000)
		var want float64
		for i := range a {
			d := a[i] - b[i]
			want += d * d
		}
		require.InDelta(t, want, SumSqDelta(a, b), want*1e-9)
	})

	t.Run("Identical", func(t *testing.T) {
		a := randomFloats(4, 100)
		require.Equal(t, 0.0, SumSqDelta(a, a))
	})

	t.Run("LengthMismatchPanics", func(t *testing.T) {
		require.Panics(t, func() { SumSqDelta([]float64{1, 2}, []float64{1}) })
	})
}

func BenchmarkReductions(b *testing.B) {
	s := randomFloats(1, 1_000_000)
	other := randomFloats(2, 1_000_000)
	var sink float64

	b.Run("Sum", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink += Sum(s)
		}
	})

	b.Run("SumSqDelta", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink += SumSqDelta(s, other)
		}
	})

	_ = sink
}
