package dataset

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/curvefit-go/curvefit/internal/options"
)

// SynthConfig holds configuration for synthetic dataset generation.
type SynthConfig struct {
	// X0 and X1 bound the sampling interval (inclusive).
	X0, X1 float64
	// NoiseSigma is the standard deviation of the Gaussian noise added to
	// each observation. Zero produces noiseless data.
	NoiseSigma float64
	// Jitter perturbs the evenly spaced x positions by up to half a step.
	Jitter bool
	// Seed seeds the noise generator so runs are reproducible.
	Seed uint64
}

func defaultSynthConfig() SynthConfig {
	return SynthConfig{X0: 0, X1: 1, NoiseSigma: 0, Seed: 1}
}

// SynthOption is a functional option for Synthesize.
type SynthOption = options.Option[*SynthConfig]

// WithRange sets the sampling interval [x0, x1].
func WithRange(x0, x1 float64) SynthOption {
	return func(cfg *SynthConfig) error {
		if x1 <= x0 {
			return fmt.Errorf("invalid sampling range [%v, %v]", x0, x1)
		}
		cfg.X0, cfg.X1 = x0, x1

		return nil
	}
}

// WithNoise sets the Gaussian noise standard deviation. The same value is
// recorded as the per-point uncertainty of the generated dataset.
func WithNoise(sigma float64) SynthOption {
	return func(cfg *SynthConfig) error {
		if sigma < 0 {
			return fmt.Errorf("noise sigma must be non-negative, got %v", sigma)
		}
		cfg.NoiseSigma = sigma

		return nil
	}
}

// WithSeed seeds the random number generator used for noise and jitter.
func WithSeed(seed uint64) SynthOption {
	return options.NoError(func(cfg *SynthConfig) {
		cfg.Seed = seed
	})
}

// WithJitter perturbs the sample positions instead of using an even grid.
func WithJitter() SynthOption {
	return options.NoError(func(cfg *SynthConfig) {
		cfg.Jitter = true
	})
}

// Synthesize samples fn at n points across the configured range and adds
// Gaussian noise to the observations.
//
// When noise is enabled the generated dataset carries the noise sigma as its
// per-point uncertainty, so fitting it back yields a reduced chi-squared near
// one by construction. With the same seed the output is reproducible.
func Synthesize(fn func(float64) float64, n int, opts ...SynthOption) (*Dataset, error) {
	if fn == nil {
		return nil, fmt.Errorf("synthesize requires a function")
	}
	if n < 2 {
		return nil, fmt.Errorf("synthesize requires at least 2 points, got %d", n)
	}

	cfg := defaultSynthConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	noise := distuv.Normal{Mu: 0, Sigma: cfg.NoiseSigma, Src: rng}

	step := (cfg.X1 - cfg.X0) / float64(n-1)
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range n {
		xi := cfg.X0 + float64(i)*step
		if cfg.Jitter && i > 0 && i < n-1 {
			xi += (rng.Float64() - 0.5) * step
		}
		x[i] = xi
		y[i] = fn(xi)
		if cfg.NoiseSigma > 0 {
			y[i] += noise.Rand()
		}
	}

	if cfg.NoiseSigma > 0 {
		return New(x, y, WithConstantError(cfg.NoiseSigma))
	}

	return New(x, y)
}
