package model

import (
	"fmt"
	"math"
	"strings"
)

// Linear implements the straight line y = a + b*x.
type Linear struct {
	a, b float64
}

var _ Model = (*Linear)(nil)

// NewLinear creates a line with intercept a and slope b.
func NewLinear(a, b float64) *Linear {
	return &Linear{a: a, b: b}
}

// Eval evaluates the line at x.
func (m *Linear) Eval(x float64) float64 {
	return m.a + m.b*x
}

// Type returns TypeLinear.
func (m *Linear) Type() Type { return TypeLinear }

// Params returns [intercept, slope].
func (m *Linear) Params() []float64 {
	return []float64{m.a, m.b}
}

// SetParams sets [intercept, slope].
func (m *Linear) SetParams(params []float64) error {
	if len(params) != 2 {
		return arityError(TypeLinear, 2, len(params))
	}
	m.a, m.b = params[0], params[1]

	return nil
}

// NumParams returns 2.
func (m *Linear) NumParams() int { return 2 }

// Formula returns the line with its parameters substituted in.
func (m *Linear) Formula() string {
	return fmt.Sprintf("y = %.4g + %.4g*x", m.a, m.b)
}

// Polynomial implements y = c0 + c1*x + c2*x² + ... The degree is fixed at
// construction by the number of coefficients (degree = len(coeffs) - 1).
type Polynomial struct {
	coeffs []float64
}

var _ Model = (*Polynomial)(nil)

// NewPolynomial creates a polynomial from its coefficients in ascending
// power order. At least one coefficient is required; a single coefficient is
// the constant function.
func NewPolynomial(coeffs ...float64) *Polynomial {
	cs := make([]float64, len(coeffs))
	copy(cs, coeffs)

	return &Polynomial{coeffs: cs}
}

// Eval evaluates the polynomial at x using Horner's scheme.
func (m *Polynomial) Eval(x float64) float64 {
	y := 0.0
	for i := len(m.coeffs) - 1; i >= 0; i-- {
		y = y*x + m.coeffs[i]
	}

	return y
}

// Type returns TypePolynomial.
func (m *Polynomial) Type() Type { return TypePolynomial }

// Degree returns the polynomial degree (number of coefficients minus one).
func (m *Polynomial) Degree() int { return len(m.coeffs) - 1 }

// Params returns the coefficients in ascending power order.
func (m *Polynomial) Params() []float64 {
	cs := make([]float64, len(m.coeffs))
	copy(cs, m.coeffs)

	return cs
}

// SetParams replaces the coefficients. The degree cannot change after
// construction, so the length must match the existing coefficient count.
func (m *Polynomial) SetParams(params []float64) error {
	if len(params) != len(m.coeffs) {
		return arityError(TypePolynomial, len(m.coeffs), len(params))
	}
	copy(m.coeffs, params)

	return nil
}

// NumParams returns the coefficient count (degree + 1).
func (m *Polynomial) NumParams() int { return len(m.coeffs) }

// Formula returns the polynomial with its coefficients substituted in.
func (m *Polynomial) Formula() string {
	var sb strings.Builder
	sb.WriteString("y = ")
	for i, c := range m.coeffs {
		if i > 0 {
			sb.WriteString(" + ")
		}
		switch i {
		case 0:
			fmt.Fprintf(&sb, "%.4g", c)
		case 1:
			fmt.Fprintf(&sb, "%.4g*x", c)
		default:
			fmt.Fprintf(&sb, "%.4g*x^%d", c, i)
		}
	}

	return sb.String()
}

// Gaussian implements the Gaussian peak y = A * exp(-(x-μ)² / (2σ²)) with
// amplitude A, mean μ and standard deviation σ.
//
// σ = 0 is not rejected; evaluation then follows IEEE-754 (the exponent
// becomes -Inf away from the mean and NaN at it).
type Gaussian struct {
	amp, mean, stddev float64
}

var _ Model = (*Gaussian)(nil)

// NewGaussian creates a Gaussian peak with amplitude amp, center mean and
// width stddev.
func NewGaussian(amp, mean, stddev float64) *Gaussian {
	return &Gaussian{amp: amp, mean: mean, stddev: stddev}
}

// Eval evaluates the Gaussian at x.
func (m *Gaussian) Eval(x float64) float64 {
	d := x - m.mean

	return m.amp * math.Exp(-d*d/(2*m.stddev*m.stddev))
}

// Type returns TypeGaussian.
func (m *Gaussian) Type() Type { return TypeGaussian }

// Params returns [amplitude, mean, stddev].
func (m *Gaussian) Params() []float64 {
	return []float64{m.amp, m.mean, m.stddev}
}

// SetParams sets [amplitude, mean, stddev].
func (m *Gaussian) SetParams(params []float64) error {
	if len(params) != 3 {
		return arityError(TypeGaussian, 3, len(params))
	}
	m.amp, m.mean, m.stddev = params[0], params[1], params[2]

	return nil
}

// NumParams returns 3.
func (m *Gaussian) NumParams() int { return 3 }

// Formula returns the Gaussian with its parameters substituted in.
func (m *Gaussian) Formula() string {
	return fmt.Sprintf("y = %.4g * exp(-(x - %.4g)^2 / (2 * %.4g^2))", m.amp, m.mean, m.stddev)
}

// Sine implements the sinusoid y = A * sin(ω*x + φ) with amplitude A,
// angular frequency ω and phase φ.
type Sine struct {
	amp, freq, phase float64
}

var _ Model = (*Sine)(nil)

// NewSine creates a sinusoid with amplitude amp, angular frequency freq and
// phase offset phase.
func NewSine(amp, freq, phase float64) *Sine {
	return &Sine{amp: amp, freq: freq, phase: phase}
}

// Eval evaluates the sinusoid at x.
func (m *Sine) Eval(x float64) float64 {
	return m.amp * math.Sin(m.freq*x+m.phase)
}

// Type returns TypeSine.
func (m *Sine) Type() Type { return TypeSine }

// Params returns [amplitude, frequency, phase].
func (m *Sine) Params() []float64 {
	return []float64{m.amp, m.freq, m.phase}
}

// SetParams sets [amplitude, frequency, phase].
func (m *Sine) SetParams(params []float64) error {
	if len(params) != 3 {
		return arityError(TypeSine, 3, len(params))
	}
	m.amp, m.freq, m.phase = params[0], params[1], params[2]

	return nil
}

// NumParams returns 3.
func (m *Sine) NumParams() int { return 3 }

// Formula returns the sinusoid with its parameters substituted in.
func (m *Sine) Formula() string {
	return fmt.Sprintf("y = %.4g * sin(%.4g*x + %.4g)", m.amp, m.freq, m.phase)
}
