package fit

import (
	"fmt"

	"github.com/maorshutman/lm"

	"github.com/curvefit-go/curvefit/dataset"
	"github.com/curvefit-go/curvefit/model"
)

// levenbergMarquardt fits a nonlinear model by damped least squares on the
// error-normalized residuals, with a numeric Jacobian.
func levenbergMarquardt(ds *dataset.Dataset, t model.Type, init []float64, cfg *Config) (model.Model, error) {
	scratch, err := model.New(t, init)
	if err != nil {
		return nil, err
	}

	sigma := ds.Sigmas()
	residuals := func(dst, params []float64) {
		// The parameter length is fixed by the problem dimension, so
		// SetParams cannot fail here.
		_ = scratch.SetParams(params)
		for i, xi := range ds.X {
			dst[i] = (scratch.Eval(xi) - ds.Y[i]) / sigma[i]
		}
	}

	jac := lm.NumJac{Func: residuals}
	problem := lm.LMProblem{
		Dim:        len(init),
		Size:       ds.Len(),
		Func:       residuals,
		Jac:        jac.Jac,
		InitParams: init,
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	results, err := lm.LM(problem, &lm.Settings{
		Iterations:   cfg.MaxIterations,
		ObjectiveTol: cfg.Tolerance,
	})
	if err != nil {
		return nil, fmt.Errorf("levenberg-marquardt on %s model: %w", t, err)
	}

	return model.New(t, results.X)
}
