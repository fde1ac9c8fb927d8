package gradient_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/errs"
	"github.com/born-ml/descent/internal/gradient"
	"github.com/born-ml/descent/internal/logreg"
)

func batch(t *testing.T) dataset.Batch {
	t.Helper()
	d, _, err := dataset.Synthetic(dataset.SyntheticConfig{
		Rows: 100, Features: 4, Seed: 11, Weights: []float64{1, -1, 0.5, 0.8},
	})
	require.NoError(t, err)
	return d.Batch()
}

func oracles() []gradient.Oracle {
	var m logreg.Model
	return []gradient.Oracle{
		gradient.Analytic{Objective: m},
		gradient.Autodiff{Model: m},
		gradient.FiniteDifference{Objective: m},
	}
}

func TestOracles_Agree(t *testing.T) {
	b := batch(t)
	points := [][]float64{
		{0, 0, 0, 0},
		{1, -1, 0.5, 0.8},
		{-3, 2, 0.25, -1.5},
	}

	for _, w := range points {
		all := oracles()
		report, err := gradient.Compare(w, b, all[0], all[1:]...)
		require.NoError(t, err)
		require.Len(t, report, 3)

		assert.Equal(t, "analytic", report[0].Oracle)
		assert.Zero(t, report[0].MaxAbsDiff)
		assert.Less(t, report[1].MaxAbsDiff, 1e-5, "autodiff at %v", w)
		assert.Less(t, report[2].MaxAbsDiff, 1e-5, "finite difference at %v", w)
	}
}

func TestOracles_FreshSlices(t *testing.T) {
	b := batch(t)
	w := []float64{0.1, 0.2, 0.3, 0.4}

	for _, o := range oracles() {
		g1, err := o.Gradient(w, b)
		require.NoError(t, err)
		g2, err := o.Gradient(w, b)
		require.NoError(t, err)

		require.Len(t, g1, 4)
		g1[0] = 1e9
		assert.NotEqual(t, g1[0], g2[0], o.Name())
		assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, w, "%s must not modify w", o.Name())
	}
}

func TestOracles_PropagateErrors(t *testing.T) {
	b := batch(t)

	for _, o := range oracles() {
		_, err := o.Gradient([]float64{1, 2}, b)
		assert.True(t, errors.Is(err, errs.ErrInvalidDimension), "%s: %v", o.Name(), err)
	}
}

func TestCompare_ReferenceError(t *testing.T) {
	all := oracles()
	_, err := gradient.Compare([]float64{1}, batch(t), all[0], all[1:]...)
	assert.True(t, errors.Is(err, errs.ErrInvalidDimension))
}
