package fit

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"

	"github.com/curvefit-go/curvefit/dataset"
	"github.com/curvefit-go/curvefit/gof"
	"github.com/curvefit-go/curvefit/model"
)

// nelderMead minimizes the weighted chi-squared objective with the downhill
// simplex. Derivative-free, so it works for any model family, at the cost of
// slower convergence than Levenberg-Marquardt near the optimum.
func nelderMead(ds *dataset.Dataset, t model.Type, init []float64, cfg *Config) (model.Model, error) {
	scratch, err := model.New(t, init)
	if err != nil {
		return nil, err
	}

	sigma := ds.Sigmas()
	problem := optimize.Problem{
		Func: func(params []float64) float64 {
			_ = scratch.SetParams(params)

			return gof.ChiSquared(model.EvalAll(scratch, ds.X), ds.Y, sigma)
		},
	}

	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.Tolerance,
			Iterations: cfg.MaxIterations,
		},
	}

	result, err := optimize.Minimize(problem, init, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("nelder-mead on %s model: %w", t, err)
	}

	return model.New(t, result.X)
}
