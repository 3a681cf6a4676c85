// Package gof provides goodness-of-fit statistics for fitted curves.
//
// The functions operate on plain float64 slices so they can be used with any
// model evaluation, not only the fitters in this module. All of them expect
// the input slices to be length-aligned; this precondition is owned by the
// caller (the fit package validates it before fitting).
//
// The central statistic is the reduced chi-squared,
//
//	chi2_red = (1 / (N - nFree)) * sum(((predicted - observed) / sigma)^2)
//
// where N is the sample count and nFree the number of free model parameters.
// Values near 1 indicate a fit consistent with the stated uncertainties,
// values much larger than 1 indicate a poor fit or underestimated errors, and
// values much smaller than 1 indicate overfitting or overestimated errors.
package gof

import "math"

// ChiSquared returns the sum of squared, error-normalized residuals:
//
//	sum(((predicted[i] - observed[i]) / sigma[i])^2)
//
// sigma holds the per-point uncertainty of each observation and must contain
// no zeros; a zero sigma propagates Inf through the sum per IEEE-754.
func ChiSquared(predicted, observed, sigma []float64) float64 {
	sum := 0.0
	for i := range observed {
		r := (predicted[i] - observed[i]) / sigma[i]
		sum += r * r
	}

	return sum
}

// ReducedChiSquared returns the chi-squared statistic divided by the degrees
// of freedom, N - nFree.
//
// The caller must ensure N > nFree. When N == nFree the division by zero
// follows IEEE-754 semantics: +Inf for a nonzero residual sum, NaN when the
// residual sum is also zero. This mirrors the behavior of the statistic as
// commonly defined rather than turning the degenerate case into an error.
func ReducedChiSquared(predicted, observed, sigma []float64, nFree int) float64 {
	dof := float64(len(observed) - nFree)

	return ChiSquared(predicted, observed, sigma) / dof
}

// RSquared returns the coefficient of determination:
//
//	R² = 1 - (SS_res / SS_tot)
//
// where SS_res is the residual sum of squares and SS_tot the total sum of
// squares around the mean of the observations. Returns 0 for empty input or
// when the observations have zero variance.
func RSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := Mean(observed)
	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// RMSE returns the root mean square error between observed and predicted
// values. Returns 0 for empty input.
func RMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

// Mean returns the arithmetic mean of values, or 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
