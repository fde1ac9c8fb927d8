package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/descent/internal/backend/cpu"
	"github.com/born-ml/descent/internal/errs"
)

// LabelMode selects how synthetic labels are drawn from the true logits.
type LabelMode int

const (
	// BernoulliLabels draws y ~ Bernoulli(σ(x·w)). The classes overlap, so
	// the maximum-likelihood estimate is finite.
	BernoulliLabels LabelMode = iota
	// SeparableLabels sets y = 1 exactly when x·w > 0. The data is linearly
	// separable and the unregularized likelihood has no finite maximizer.
	SeparableLabels
)

// SyntheticConfig describes a generated logistic-regression problem.
type SyntheticConfig struct {
	Rows     int       // Number of examples
	Features int       // Feature dimension
	Seed     uint64    // Seed for the PCG generator
	Weights  []float64 // True weights; drawn from N(0, 1) when nil
	Scale    float64   // Feature standard deviation (default: 1)
	Labels   LabelMode // Label generation mode (default: BernoulliLabels)
}

// Synthetic generates a dataset with Gaussian features and labels produced
// by a logistic model with known weights. It returns the dataset and the
// true weights.
//
// The same config always yields the same data.
func Synthetic(cfg SyntheticConfig) (*Dataset, []float64, error) {
	if cfg.Rows <= 0 || cfg.Features <= 0 {
		return nil, nil, errs.Config("synthetic", "rows %d and features %d must be positive", cfg.Rows, cfg.Features)
	}
	if cfg.Weights != nil && len(cfg.Weights) != cfg.Features {
		return nil, nil, errs.Dimension("synthetic", "weights", len(cfg.Weights), cfg.Features)
	}
	if cfg.Scale == 0 {
		cfg.Scale = 1
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+1))

	weights := make([]float64, cfg.Features)
	if cfg.Weights != nil {
		copy(weights, cfg.Weights)
	} else {
		for j := range weights {
			weights[j] = rng.NormFloat64()
		}
	}

	features := mat.NewDense(cfg.Rows, cfg.Features, nil)
	labels := make([]float64, cfg.Rows)
	for i := range cfg.Rows {
		row := features.RawRowView(i)
		for j := range row {
			row[j] = cfg.Scale * rng.NormFloat64()
		}

		logit := floats.Dot(row, weights)
		switch cfg.Labels {
		case SeparableLabels:
			if logit > 0 {
				labels[i] = 1
			}
		default:
			if rng.Float64() < cpu.Sigmoid(logit) {
				labels[i] = 1
			}
		}
	}

	d, err := New(features, labels)
	if err != nil {
		return nil, nil, err
	}
	return d, weights, nil
}
