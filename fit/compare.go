package fit

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/curvefit-go/curvefit/dataset"
	"github.com/curvefit-go/curvefit/model"
)

// Comparison ranks fits of several model families against one dataset.
type Comparison struct {
	// Best is the fit whose reduced chi-squared lands closest to 1.
	Best *Result
	// All holds every successful fit, best first.
	All []*Result
}

// String returns a one-line summary of the comparison.
func (c *Comparison) String() string {
	if c.Best == nil {
		return "Comparison{Best: nil}"
	}

	return fmt.Sprintf("Comparison{Best: %s, TotalModels: %d}", c.Best, len(c.All))
}

// Compare fits each of the given model families to the dataset and ranks the
// outcomes by |reduced chi-squared - 1|, since values near 1 indicate a fit
// consistent with the stated uncertainties. A nil or empty types slice
// compares every supported family.
//
// Families that fail to fit (insufficient samples for the parameter count,
// optimizer failure) are skipped; an error is returned only when no family
// fits at all.
func Compare(ds *dataset.Dataset, types []model.Type, opts ...Option) (*Comparison, error) {
	if len(types) == 0 {
		types = model.AllTypes()
	}

	all := make([]*Result, 0, len(types))
	var failures []error
	for _, t := range types {
		result, err := Fit(ds, t, opts...)
		if err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", t, err))
			continue
		}
		all = append(all, result)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no model family could be fitted: %w", errors.Join(failures...))
	}

	slices.SortFunc(all, func(a, b *Result) int {
		da := chiDistance(a.ReducedChiSquared)
		db := chiDistance(b.ReducedChiSquared)
		if da < db {
			return -1
		}
		if da > db {
			return 1
		}

		return 0
	})

	return &Comparison{Best: all[0], All: all}, nil
}

// chiDistance measures how far a reduced chi-squared is from the ideal value
// of 1. NaN sorts last.
func chiDistance(chi2red float64) float64 {
	if math.IsNaN(chi2red) {
		return math.Inf(1)
	}

	return math.Abs(chi2red - 1)
}
