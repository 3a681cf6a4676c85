// Package fit estimates the parameters of closed-form models from noisy
// one-dimensional data and reports goodness-of-fit statistics.
//
// All numerical heavy lifting is delegated to existing optimization
// libraries. The package owns only the glue: building weighted design
// matrices and residual functions from a dataset, choosing starting
// parameters, and summarizing the outcome.
//
// # Fitting strategies
//
//   - Weighted linear least squares (gonum/mat QR factorization) for models
//     linear in their parameters: lines and polynomials.
//   - Levenberg-Marquardt (maorshutman/lm) for nonlinear models: Gaussian
//     peaks and sinusoids. The default for those families.
//   - Nelder-Mead simplex (gonum/optimize), a derivative-free alternative for
//     any family, selected with WithMethod(MethodNelderMead).
//
// # Basic usage
//
// Fit a line to data with per-point uncertainties:
//
//	ds, _ := dataset.New(x, y, dataset.WithErrors(yerr))
//	result, err := fit.Fit(ds, model.TypeLinear)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Model.Formula())
//	fmt.Printf("reduced chi-squared: %.3f\n", result.ReducedChiSquared)
//
// # Comparing model families
//
// Compare fits several families and ranks them by how close the reduced
// chi-squared lands to 1, the value expected when the model matches the data
// within its stated uncertainties:
//
//	cmp, err := fit.Compare(ds, nil) // nil means every family
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range cmp.All {
//	    fmt.Println(r)
//	}
//	fmt.Println("best:", cmp.Best.Model.Formula())
//
// # Starting parameters
//
// Nonlinear strategies need a starting point. By default it is derived from
// the data (peak position and width for Gaussians, range and zero crossings
// for sinusoids); WithInitialParams overrides the heuristic when the caller
// knows better.
package fit
