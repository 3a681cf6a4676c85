package curvefit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curvefit-go/curvefit"
	"github.com/curvefit-go/curvefit/dataset"
	"github.com/curvefit-go/curvefit/model"
)

func TestFitFacade(t *testing.T) {
	ds, err := dataset.Synthesize(func(x float64) float64 { return 4 - x }, 30, dataset.WithRange(0, 10))
	require.NoError(t, err)

	result, err := curvefit.Fit(ds, model.TypeLinear)
	require.NoError(t, err)

	params := result.Model.Params()
	assert.InDelta(t, 4.0, params[0], 1e-8)
	assert.InDelta(t, -1.0, params[1], 1e-8)
}

func TestCompareFacade(t *testing.T) {
	truth := func(x float64) float64 {
		return math.Exp(-(x * x) / 2)
	}
	ds, err := dataset.Synthesize(truth, 100,
		dataset.WithRange(-4, 4), dataset.WithNoise(0.02), dataset.WithSeed(2))
	require.NoError(t, err)

	cmp, err := curvefit.Compare(ds, []model.Type{model.TypeGaussian, model.TypeLinear})
	require.NoError(t, err)
	assert.Equal(t, model.TypeGaussian, cmp.Best.Model.Type())
}

func TestReducedChiSquaredFacade(t *testing.T) {
	got := curvefit.ReducedChiSquared(
		[]float64{2, 2, 2}, []float64{1, 1, 1}, []float64{1, 1, 1}, 1)
	assert.InDelta(t, 1.5, got, 1e-12)
}
