package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curvefit-go/curvefit/dataset"
	"github.com/curvefit-go/curvefit/model"
)

func TestCompare(t *testing.T) {
	ds, err := dataset.Synthesize(func(x float64) float64 { return 1 + 2*x }, 200,
		dataset.WithRange(0, 10), dataset.WithNoise(0.3), dataset.WithSeed(5))
	require.NoError(t, err)

	cmp, err := Compare(ds, []model.Type{model.TypeLinear, model.TypePolynomial})
	require.NoError(t, err)

	require.Len(t, cmp.All, 2)
	assert.Same(t, cmp.All[0], cmp.Best)

	// Results are ranked by distance of the reduced chi-squared from 1.
	for i := 1; i < len(cmp.All); i++ {
		prev := math.Abs(cmp.All[i-1].ReducedChiSquared - 1)
		cur := math.Abs(cmp.All[i].ReducedChiSquared - 1)
		assert.LessOrEqual(t, prev, cur)
	}

	// Both families describe a line here, so the best fit must be
	// consistent with the stated noise.
	assert.Greater(t, cmp.Best.ReducedChiSquared, 0.5)
	assert.Less(t, cmp.Best.ReducedChiSquared, 1.5)
}

func TestCompareAllFamiliesByDefault(t *testing.T) {
	truth := func(x float64) float64 {
		return 3 * math.Exp(-(x-2)*(x-2)/(2*0.8*0.8))
	}
	ds, err := dataset.Synthesize(truth, 150,
		dataset.WithRange(-1, 5), dataset.WithNoise(0.05), dataset.WithSeed(9))
	require.NoError(t, err)

	cmp, err := Compare(ds, nil)
	require.NoError(t, err)

	// Every family that converged is present, and the Gaussian should win
	// on its own data.
	assert.NotEmpty(t, cmp.All)
	assert.Equal(t, model.TypeGaussian, cmp.Best.Model.Type())
}

func TestCompareSkipsFailingFamilies(t *testing.T) {
	// Three samples: enough for a line (2 free parameters), not for the
	// three-parameter Gaussian.
	ds, err := dataset.New([]float64{0, 1, 2}, []float64{1, 3, 5})
	require.NoError(t, err)

	cmp, err := Compare(ds, []model.Type{model.TypeLinear, model.TypeGaussian})
	require.NoError(t, err)
	require.Len(t, cmp.All, 1)
	assert.Equal(t, model.TypeLinear, cmp.Best.Model.Type())
}

func TestCompareAllFail(t *testing.T) {
	ds, err := dataset.New([]float64{0, 1, 2}, []float64{1, 3, 5})
	require.NoError(t, err)

	_, err = Compare(ds, []model.Type{model.TypeGaussian, model.TypeSine})
	require.ErrorContains(t, err, "no model family could be fitted")
}

func TestComparisonString(t *testing.T) {
	empty := &Comparison{}
	assert.Equal(t, "Comparison{Best: nil}", empty.String())

	ds, err := dataset.Synthesize(func(x float64) float64 { return x }, 20, dataset.WithRange(0, 1))
	require.NoError(t, err)

	cmp, err := Compare(ds, []model.Type{model.TypeLinear})
	require.NoError(t, err)
	assert.Contains(t, cmp.String(), "TotalModels: 1")
}
