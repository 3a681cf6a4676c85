// Package model defines the closed-form parametric model families that can be
// fitted to one-dimensional data: a straight line, a polynomial of arbitrary
// degree, a Gaussian peak, and a sinusoid.
//
// A Model bundles a family with a concrete parameter vector. Fitters mutate
// the parameters through SetParams while searching, and return the fitted
// model to the caller for evaluation and reporting.
package model

import (
	"fmt"
	"strings"
)

// Type identifies a parametric model family.
type Type int

const (
	// TypeLinear represents the straight line y = a + b*x.
	TypeLinear Type = iota
	// TypePolynomial represents y = c0 + c1*x + c2*x² + ... of arbitrary degree.
	TypePolynomial
	// TypeGaussian represents the Gaussian peak y = A * exp(-(x-μ)² / (2σ²)).
	TypeGaussian
	// TypeSine represents the sinusoid y = A * sin(ω*x + φ).
	TypeSine
)

// typeNames maps Type to their string representations.
var typeNames = map[Type]string{
	TypeLinear:     "linear",
	TypePolynomial: "polynomial",
	TypeGaussian:   "gaussian",
	TypeSine:       "sine",
}

// String returns the string representation of the model type.
func (t Type) String() string {
	if name, exists := typeNames[t]; exists {
		return name
	}

	return "unknown"
}

// typeFromName maps string names to Type.
var typeFromName = map[string]Type{
	"linear":     TypeLinear,
	"polynomial": TypePolynomial,
	"gaussian":   TypeGaussian,
	"sine":       TypeSine,
}

// TypeFromString returns the Type for a given string name.
// Returns Type(-1) for unknown names.
func TypeFromString(name string) Type {
	if t, exists := typeFromName[strings.ToLower(name)]; exists {
		return t
	}

	return Type(-1)
}

// AllTypes returns every supported model family in declaration order.
func AllTypes() []Type {
	return []Type{TypeLinear, TypePolynomial, TypeGaussian, TypeSine}
}

// Model is a parametric function of one variable with a mutable parameter
// vector.
type Model interface {
	// Eval evaluates the model at x with the current parameters.
	Eval(x float64) float64
	// Type returns the model family.
	Type() Type
	// Params returns a copy of the current parameter vector.
	Params() []float64
	// SetParams replaces the parameter vector. The length must match
	// NumParams; otherwise an error is returned and the model is unchanged.
	SetParams(params []float64) error
	// NumParams returns the number of free parameters of the family.
	NumParams() int
	// Formula returns a human-readable formula with the current parameters
	// substituted in.
	Formula() string
}

// New creates a model of the given family from a parameter vector.
//
// For TypePolynomial the length of params determines the degree (len-1), so a
// quadratic takes three coefficients. All other families have a fixed arity.
func New(t Type, params []float64) (Model, error) {
	var m Model
	switch t {
	case TypeLinear:
		m = NewLinear(0, 0)
	case TypePolynomial:
		if len(params) == 0 {
			return nil, fmt.Errorf("polynomial model requires at least one coefficient")
		}
		m = NewPolynomial(make([]float64, len(params))...)
	case TypeGaussian:
		m = NewGaussian(0, 0, 1)
	case TypeSine:
		m = NewSine(0, 1, 0)
	default:
		return nil, fmt.Errorf("unknown model type: %d", t)
	}

	if err := m.SetParams(params); err != nil {
		return nil, err
	}

	return m, nil
}

// EvalAll evaluates m at every point in xs and returns the resulting curve.
func EvalAll(m Model, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = m.Eval(x)
	}

	return ys
}

// arityError reports a parameter count mismatch for SetParams.
func arityError(t Type, want, got int) error {
	return fmt.Errorf("%s model expects %d parameters, got %d", t, want, got)
}
