package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/descent/internal/errs"
)

func TestHelpers_WrapKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
		msg  string
	}{
		{"dimension", errs.Dimension("gradient", "weights", 3, 4), errs.ErrInvalidDimension,
			"gradient: invalid dimension: weights is 3, want 4"},
		{"input", errs.Input("loss", "label %v at row %d", 2.0, 7), errs.ErrInvalidInput,
			"loss: invalid input: label 2 at row 7"},
		{"config", errs.Config("sgd", "learning rate %v must be positive", 0.0), errs.ErrInvalidConfig,
			"sgd: invalid config: learning rate 0 must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.kind))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestKinds_Distinct(t *testing.T) {
	err := errs.Dimension("op", "x", 1, 2)
	assert.False(t, errors.Is(err, errs.ErrInvalidInput))
	assert.False(t, errors.Is(err, errs.ErrInvalidConfig))
	assert.False(t, errors.Is(err, errs.ErrEmptyEpoch))
}
