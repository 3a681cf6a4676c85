package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fitConfig struct {
	MaxIterations int
	Tolerance     float64
}

func withMaxIterations(n int) Option[*fitConfig] {
	return func(cfg *fitConfig) error {
		if n <= 0 {
			return errors.New("max iterations must be positive")
		}
		cfg.MaxIterations = n

		return nil
	}
}

func withTolerance(tol float64) Option[*fitConfig] {
	return NoError(func(cfg *fitConfig) {
		cfg.Tolerance = tol
	})
}

func TestApply(t *testing.T) {
	cfg := &fitConfig{MaxIterations: 100, Tolerance: 1e-8}

	err := Apply(cfg, withMaxIterations(500), withTolerance(1e-12))
	require.NoError(t, err)
	require.Equal(t, 500, cfg.MaxIterations)
	require.Equal(t, 1e-12, cfg.Tolerance)
}

func TestApplyStopsOnError(t *testing.T) {
	cfg := &fitConfig{MaxIterations: 100}

	err := Apply(cfg, withMaxIterations(-1), withTolerance(1e-12))
	require.Error(t, err)
	// The failing option must not partially apply, and later options must not run.
	require.Equal(t, 100, cfg.MaxIterations)
	require.Equal(t, 0.0, cfg.Tolerance)
}

func TestApplyNoOptions(t *testing.T) {
	cfg := &fitConfig{}
	require.NoError(t, Apply(cfg))
}
