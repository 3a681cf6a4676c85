package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeNoiseless(t *testing.T) {
	fn := func(x float64) float64 { return 3*x - 1 }

	ds, err := Synthesize(fn, 11, WithRange(0, 10))
	require.NoError(t, err)
	require.Equal(t, 11, ds.Len())
	assert.False(t, ds.HasErrors())

	// Even grid across the range, exact function values.
	assert.InDelta(t, 0.0, ds.X[0], 1e-12)
	assert.InDelta(t, 10.0, ds.X[10], 1e-12)
	for i := range ds.X {
		assert.InDelta(t, float64(i), ds.X[i], 1e-12)
		assert.InDelta(t, fn(ds.X[i]), ds.Y[i], 1e-12)
	}
}

func TestSynthesizeNoisy(t *testing.T) {
	fn := func(x float64) float64 { return math.Sin(x) }

	ds, err := Synthesize(fn, 200, WithRange(0, 2*math.Pi), WithNoise(0.1), WithSeed(7))
	require.NoError(t, err)

	// Noise sigma is recorded as the per-point uncertainty.
	require.True(t, ds.HasErrors())
	assert.Equal(t, 0.1, ds.YErr[0])

	// Observations deviate from the truth, but not wildly: every residual
	// within 6 sigma is a safe bound for 200 Gaussian draws.
	deviated := false
	for i := range ds.X {
		r := ds.Y[i] - fn(ds.X[i])
		if r != 0 {
			deviated = true
		}
		assert.Less(t, math.Abs(r), 0.6)
	}
	assert.True(t, deviated)
}

func TestSynthesizeReproducible(t *testing.T) {
	fn := math.Exp

	a, err := Synthesize(fn, 50, WithNoise(0.2), WithSeed(42))
	require.NoError(t, err)
	b, err := Synthesize(fn, 50, WithNoise(0.2), WithSeed(42))
	require.NoError(t, err)
	c, err := Synthesize(fn, 50, WithNoise(0.2), WithSeed(43))
	require.NoError(t, err)

	assert.Equal(t, a.Y, b.Y)
	assert.NotEqual(t, a.Y, c.Y)
}

func TestSynthesizeJitter(t *testing.T) {
	fn := func(x float64) float64 { return x }

	ds, err := Synthesize(fn, 20, WithRange(0, 1), WithJitter(), WithSeed(3))
	require.NoError(t, err)

	// Endpoints stay fixed, interior points move off the even grid.
	assert.InDelta(t, 0.0, ds.X[0], 1e-12)
	assert.InDelta(t, 1.0, ds.X[19], 1e-12)

	step := 1.0 / 19
	offGrid := 0
	for i := 1; i < 19; i++ {
		if math.Abs(ds.X[i]-float64(i)*step) > 1e-9 {
			offGrid++
		}
	}
	assert.Greater(t, offGrid, 0)
}

func TestSynthesizeValidation(t *testing.T) {
	fn := func(x float64) float64 { return x }

	_, err := Synthesize(nil, 10)
	require.Error(t, err)

	_, err = Synthesize(fn, 1)
	require.Error(t, err)

	_, err = Synthesize(fn, 10, WithRange(1, 1))
	require.Error(t, err)

	_, err = Synthesize(fn, 10, WithNoise(-0.5))
	require.Error(t, err)
}
