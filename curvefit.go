// Package curvefit fits closed-form parametric models to noisy
// one-dimensional data and compares fit quality via reduced chi-squared.
//
// The module covers the standard teaching workflow for parametric fitting:
// build or load a dataset, pick a model family (line, polynomial, Gaussian
// peak, sinusoid), pick a fitting strategy (weighted linear least squares,
// Levenberg-Marquardt, Nelder-Mead simplex), fit, and judge the result.
// Every optimizer and linear-algebra routine is delegated to existing
// libraries; the module owns the model definitions, the glue, and the
// goodness-of-fit statistics.
//
// # Packages
//
//   - dataset: samples with optional per-point uncertainties, synthetic data
//     generation, CSV loading, and a compact binary codec with compression.
//   - model: the parametric model families and their evaluation.
//   - fit: the fitting strategies, result statistics, and family comparison.
//   - gof: goodness-of-fit statistics (chi-squared, reduced chi-squared, R²,
//     RMSE) usable on their own.
//   - compress: payload codecs backing the dataset binary format.
//
// # Basic usage
//
// Generate noisy samples of a known function and fit them back:
//
//	truth := func(x float64) float64 { return 2*math.Sin(1.5*x) }
//	ds, _ := dataset.Synthesize(truth, 200,
//	    dataset.WithRange(0, 4*math.Pi),
//	    dataset.WithNoise(0.1),
//	)
//
//	result, err := curvefit.Fit(ds, model.TypeSine)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Model.Formula())
//	fmt.Printf("reduced chi-squared: %.3f\n", result.ReducedChiSquared)
//
// A reduced chi-squared near 1 means the model describes the data within its
// stated uncertainties; much larger values mean a poor model or
// underestimated errors, much smaller values mean overfitting or
// overestimated errors.
package curvefit

import (
	"github.com/curvefit-go/curvefit/dataset"
	"github.com/curvefit-go/curvefit/fit"
	"github.com/curvefit-go/curvefit/gof"
	"github.com/curvefit-go/curvefit/model"
)

// Fit estimates the parameters of the given model family from the dataset.
// See the fit package for strategy selection and options.
func Fit(ds *dataset.Dataset, modelType model.Type, opts ...fit.Option) (*fit.Result, error) {
	return fit.Fit(ds, modelType, opts...)
}

// Compare fits several model families to the dataset and ranks them by how
// close their reduced chi-squared lands to 1. A nil types slice compares
// every supported family.
func Compare(ds *dataset.Dataset, types []model.Type, opts ...fit.Option) (*fit.Comparison, error) {
	return fit.Compare(ds, types, opts...)
}

// ReducedChiSquared returns the chi-squared per degree of freedom for a
// fitted curve. See gof.ReducedChiSquared for the preconditions and the
// behavior of the degenerate zero-degrees-of-freedom case.
func ReducedChiSquared(predicted, observed, sigma []float64, nFree int) float64 {
	return gof.ReducedChiSquared(predicted, observed, sigma, nFree)
}
