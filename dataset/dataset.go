// Package dataset holds one-dimensional samples with optional per-point
// uncertainties, the input shape every fitter in this module consumes.
//
// A dataset is three aligned columns: the independent variable X, the
// observations Y, and the optional uncertainties YErr (error bars). Length
// alignment between the columns is the one invariant the package enforces.
//
// Datasets can be synthesized from a closed-form function (see Synthesize),
// loaded from CSV catalog extracts (see LoadCSV), and persisted in a compact
// binary format with optional compression (see Encode and Decode).
package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/curvefit-go/curvefit/internal/options"
)

// ErrLengthMismatch indicates that the dataset columns have different lengths.
var ErrLengthMismatch = errors.New("dataset columns have mismatched lengths")

// Dataset is a set of 1-D samples with optional per-point uncertainties.
//
// YErr is either nil (no uncertainty information) or exactly as long as X and
// Y. The fitters substitute unit errors when YErr is nil, which turns the
// weighted chi-squared into a plain sum of squared residuals.
type Dataset struct {
	X    []float64
	Y    []float64
	YErr []float64
}

// Option is a functional option for constructing a Dataset.
type Option = options.Option[*Dataset]

// WithErrors attaches per-point uncertainties. The length is validated
// against the sample columns by New.
func WithErrors(yerr []float64) Option {
	return options.NoError(func(ds *Dataset) {
		ds.YErr = make([]float64, len(yerr))
		copy(ds.YErr, yerr)
	})
}

// WithConstantError attaches the same uncertainty to every point.
func WithConstantError(sigma float64) Option {
	return func(ds *Dataset) error {
		if sigma <= 0 {
			return fmt.Errorf("constant error must be positive, got %v", sigma)
		}
		ds.YErr = make([]float64, len(ds.X))
		for i := range ds.YErr {
			ds.YErr[i] = sigma
		}

		return nil
	}
}

// New creates a dataset from aligned x and y columns. The input slices are
// copied, so the caller may reuse them.
func New(x, y []float64, opts ...Option) (*Dataset, error) {
	if len(x) == 0 {
		return nil, errors.New("dataset requires at least one sample")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x values vs %d y values", ErrLengthMismatch, len(x), len(y))
	}

	ds := &Dataset{
		X: make([]float64, len(x)),
		Y: make([]float64, len(y)),
	}
	copy(ds.X, x)
	copy(ds.Y, y)

	if err := options.Apply(ds, opts...); err != nil {
		return nil, err
	}

	if ds.YErr != nil && len(ds.YErr) != len(ds.X) {
		return nil, fmt.Errorf("%w: %d samples vs %d error values", ErrLengthMismatch, len(ds.X), len(ds.YErr))
	}

	return ds, nil
}

// Len returns the number of samples.
func (ds *Dataset) Len() int {
	return len(ds.X)
}

// HasErrors reports whether the dataset carries per-point uncertainties.
func (ds *Dataset) HasErrors() bool {
	return ds.YErr != nil
}

// Sigmas returns the per-point uncertainties, substituting unit errors when
// the dataset carries none.
func (ds *Dataset) Sigmas() []float64 {
	if ds.HasErrors() {
		return ds.YErr
	}

	ones := make([]float64, ds.Len())
	for i := range ones {
		ones[i] = 1
	}

	return ones
}

// Fingerprint returns the xxHash64 of the sample columns. Two datasets with
// identical columns (including the presence and values of YErr) share a
// fingerprint, which makes it usable as a cache key for fit results.
func (ds *Dataset) Fingerprint() uint64 {
	d := xxhash.New()

	var buf [8]byte
	writeColumn := func(tag byte, col []float64) {
		buf[0] = tag
		_, _ = d.Write(buf[:1])
		for _, v := range col {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	writeColumn('x', ds.X)
	writeColumn('y', ds.Y)
	if ds.HasErrors() {
		writeColumn('e', ds.YErr)
	}

	return d.Sum64()
}
