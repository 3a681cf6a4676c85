package fit

import (
	"errors"
	"fmt"

	"github.com/curvefit-go/curvefit/dataset"
	"github.com/curvefit-go/curvefit/gof"
	"github.com/curvefit-go/curvefit/internal/options"
	"github.com/curvefit-go/curvefit/model"
)

// Method identifies a fitting strategy.
type Method int

const (
	// MethodAuto picks the default strategy for the model family: linear
	// least squares for lines and polynomials, Levenberg-Marquardt for
	// Gaussian and sine models.
	MethodAuto Method = iota
	// MethodLinearLS is weighted linear least squares via QR factorization.
	// Only valid for models linear in their parameters.
	MethodLinearLS
	// MethodLevenbergMarquardt is damped nonlinear least squares.
	MethodLevenbergMarquardt
	// MethodNelderMead minimizes the chi-squared objective with the
	// derivative-free downhill simplex.
	MethodNelderMead
)

// String returns the string representation of the fitting method.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodLinearLS:
		return "linear-least-squares"
	case MethodLevenbergMarquardt:
		return "levenberg-marquardt"
	case MethodNelderMead:
		return "nelder-mead"
	default:
		return "unknown"
	}
}

// Config holds configuration for a fit.
type Config struct {
	// Method selects the fitting strategy. MethodAuto resolves per family.
	Method Method
	// Degree is the polynomial degree for TypePolynomial fits.
	Degree int
	// InitialParams overrides the data-derived starting point for the
	// nonlinear strategies.
	InitialParams []float64
	// MaxIterations bounds the optimizer iterations.
	MaxIterations int
	// Tolerance is the objective convergence tolerance.
	Tolerance float64
}

func defaultConfig() Config {
	return Config{
		Method:        MethodAuto,
		Degree:        2,
		MaxIterations: 200,
		Tolerance:     1e-10,
	}
}

// Option is a functional option for Fit and Compare.
type Option = options.Option[*Config]

// WithMethod selects the fitting strategy.
func WithMethod(m Method) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Method = m
	})
}

// WithDegree sets the polynomial degree. Ignored by other model families.
func WithDegree(degree int) Option {
	return func(cfg *Config) error {
		if degree < 1 {
			return fmt.Errorf("polynomial degree must be at least 1, got %d", degree)
		}
		cfg.Degree = degree

		return nil
	}
}

// WithInitialParams sets the starting parameters for the nonlinear
// strategies. The length must match the model's parameter count.
func WithInitialParams(params ...float64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.InitialParams = make([]float64, len(params))
		copy(cfg.InitialParams, params)
	})
}

// WithMaxIterations bounds the optimizer iterations.
func WithMaxIterations(n int) Option {
	return func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("max iterations must be positive, got %d", n)
		}
		cfg.MaxIterations = n

		return nil
	}
}

// WithTolerance sets the objective convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(cfg *Config) error {
		if tol <= 0 {
			return fmt.Errorf("tolerance must be positive, got %v", tol)
		}
		cfg.Tolerance = tol

		return nil
	}
}

// Result is the outcome of fitting one model family to a dataset.
type Result struct {
	// Model is the fitted model with its estimated parameters.
	Model model.Model
	// Method is the strategy that produced the fit.
	Method Method
	// Curve holds the fitted model evaluated at every dataset x.
	Curve []float64
	// ChiSquared is the sum of squared error-normalized residuals.
	ChiSquared float64
	// ReducedChiSquared is ChiSquared divided by the degrees of freedom.
	// Values near 1 indicate a fit consistent with the uncertainties.
	ReducedChiSquared float64
	// RSquared is the coefficient of determination.
	RSquared float64
	// RMSE is the root mean square error of the fit.
	RMSE float64
	// DOF is the degrees of freedom, sample count minus free parameters.
	DOF int
}

// String returns a one-line summary of the fit.
func (r *Result) String() string {
	return fmt.Sprintf("Fit{%s, method: %s, chi2/dof: %.4f, R²: %.4f}",
		r.Model.Formula(), r.Method, r.ReducedChiSquared, r.RSquared)
}

// Fit estimates the parameters of the given model family from the dataset.
//
// The dataset must contain strictly more samples than the family has free
// parameters, so the degrees of freedom stay positive; otherwise an error is
// returned before any statistic is computed. When the dataset carries no
// error bars, unit uncertainties are substituted and the chi-squared reduces
// to a plain sum of squared residuals.
func Fit(ds *dataset.Dataset, modelType model.Type, opts ...Option) (*Result, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, errors.New("fit requires a non-empty dataset")
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	nFree, err := numFreeParams(modelType, cfg.Degree)
	if err != nil {
		return nil, err
	}
	if ds.Len() <= nFree {
		return nil, fmt.Errorf("insufficient data: %d samples for %d free parameters of the %s model",
			ds.Len(), nFree, modelType)
	}

	method := cfg.Method
	if method == MethodAuto {
		method = defaultMethod(modelType)
	}

	var fitted model.Model
	switch method {
	case MethodLinearLS:
		if modelType != model.TypeLinear && modelType != model.TypePolynomial {
			return nil, fmt.Errorf("linear least squares cannot fit the %s model; use levenberg-marquardt or nelder-mead", modelType)
		}
		fitted, err = linearLeastSquares(ds, modelType, cfg.Degree)
	case MethodLevenbergMarquardt:
		var init []float64
		if init, err = startingParams(ds, modelType, &cfg, nFree); err == nil {
			fitted, err = levenbergMarquardt(ds, modelType, init, &cfg)
		}
	case MethodNelderMead:
		var init []float64
		if init, err = startingParams(ds, modelType, &cfg, nFree); err == nil {
			fitted, err = nelderMead(ds, modelType, init, &cfg)
		}
	default:
		return nil, fmt.Errorf("unknown fitting method: %d", method)
	}
	if err != nil {
		return nil, err
	}

	return summarize(ds, fitted, method), nil
}

// defaultMethod resolves MethodAuto for a model family.
func defaultMethod(t model.Type) Method {
	switch t {
	case model.TypeLinear, model.TypePolynomial:
		return MethodLinearLS
	default:
		return MethodLevenbergMarquardt
	}
}

// numFreeParams returns the free parameter count of a family.
func numFreeParams(t model.Type, degree int) (int, error) {
	switch t {
	case model.TypeLinear:
		return 2, nil
	case model.TypePolynomial:
		return degree + 1, nil
	case model.TypeGaussian, model.TypeSine:
		return 3, nil
	default:
		return 0, fmt.Errorf("unknown model type: %d", t)
	}
}

// startingParams returns the user-provided starting point when set, or the
// data-derived heuristic otherwise.
func startingParams(ds *dataset.Dataset, t model.Type, cfg *Config, nFree int) ([]float64, error) {
	if cfg.InitialParams != nil {
		if len(cfg.InitialParams) != nFree {
			return nil, fmt.Errorf("initial parameters: %s model expects %d values, got %d",
				t, nFree, len(cfg.InitialParams))
		}

		return cfg.InitialParams, nil
	}

	return initialGuess(ds, t, nFree), nil
}

// summarize evaluates the fitted curve and computes the fit statistics.
func summarize(ds *dataset.Dataset, m model.Model, method Method) *Result {
	curve := model.EvalAll(m, ds.X)
	sigma := ds.Sigmas()
	nFree := m.NumParams()

	return &Result{
		Model:             m,
		Method:            method,
		Curve:             curve,
		ChiSquared:        gof.ChiSquared(curve, ds.Y, sigma),
		ReducedChiSquared: gof.ReducedChiSquared(curve, ds.Y, sigma, nFree),
		RSquared:          gof.RSquared(ds.Y, curve),
		RMSE:              gof.RMSE(ds.Y, curve),
		DOF:               ds.Len() - nFree,
	}
}
