package fit

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/curvefit-go/curvefit/dataset"
	"github.com/curvefit-go/curvefit/gof"
	"github.com/curvefit-go/curvefit/model"
)

// initialGuess derives starting parameters for the nonlinear strategies from
// the data itself: a cheap closed-form estimate that lands near enough for
// the optimizer to refine, the same seed-then-refine pattern used for every
// family here.
func initialGuess(ds *dataset.Dataset, t model.Type, nFree int) []float64 {
	switch t {
	case model.TypeLinear:
		a, b := simpleRegression(ds.X, ds.Y)
		return []float64{a, b}
	case model.TypePolynomial:
		guess := make([]float64, nFree)
		guess[0] = gof.Mean(ds.Y)
		return guess
	case model.TypeGaussian:
		return gaussianGuess(ds)
	case model.TypeSine:
		return sineGuess(ds)
	default:
		return make([]float64, nFree)
	}
}

// simpleRegression returns the intercept and slope of the unweighted
// least-squares line through the points.
func simpleRegression(x, y []float64) (a, b float64) {
	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
	}

	meanX := sumX / n
	meanY := sumY / n
	denom := sumX2 - n*meanX*meanX
	if denom == 0 {
		return meanY, 0
	}
	b = (sumXY - n*meanX*meanY) / denom
	a = meanY - b*meanX

	return a, b
}

// gaussianGuess estimates [amplitude, mean, stddev] from the peak position
// and the second moment of the baseline-subtracted observations.
func gaussianGuess(ds *dataset.Dataset) []float64 {
	ymax := floats.Max(ds.Y)
	ymin := floats.Min(ds.Y)
	mu := ds.X[floats.MaxIdx(ds.Y)]

	amp := ymax
	if amp == 0 {
		amp = 1
	}

	// Second moment with the baseline removed, falling back to a quarter of
	// the x range when the data is flat or the moment degenerates.
	var wsum, msum float64
	for i := range ds.X {
		w := ds.Y[i] - ymin
		wsum += w
		msum += w * (ds.X[i] - mu) * (ds.X[i] - mu)
	}

	stddev := 0.0
	if wsum > 0 {
		stddev = math.Sqrt(msum / wsum)
	}
	if stddev <= 0 || math.IsNaN(stddev) || math.IsInf(stddev, 0) {
		stddev = (floats.Max(ds.X) - floats.Min(ds.X)) / 4
	}
	if stddev == 0 {
		stddev = 1
	}

	return []float64{amp, mu, stddev}
}

// sineGuess estimates [amplitude, frequency, phase] from the observation
// range and the zero crossings of the mean-centered signal. A full period
// crosses the mean twice, so with crossings c over x range L the angular
// frequency is about pi*c/L.
func sineGuess(ds *dataset.Dataset) []float64 {
	ymax := floats.Max(ds.Y)
	ymin := floats.Min(ds.Y)

	amp := (ymax - ymin) / 2
	if amp == 0 {
		amp = 1
	}

	mean := gof.Mean(ds.Y)
	crossings := 0
	for i := 1; i < len(ds.Y); i++ {
		if (ds.Y[i-1]-mean)*(ds.Y[i]-mean) < 0 {
			crossings++
		}
	}

	xrange := floats.Max(ds.X) - floats.Min(ds.X)
	freq := 2 * math.Pi
	if xrange > 0 {
		if crossings > 0 {
			freq = math.Pi * float64(crossings) / xrange
		} else {
			freq = 2 * math.Pi / xrange
		}
	}

	return []float64{amp, freq, 0}
}
