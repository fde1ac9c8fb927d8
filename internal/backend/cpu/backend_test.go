package cpu_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/descent/internal/backend/cpu"
	"github.com/born-ml/descent/internal/tensor"
)

func mustColumn(t *testing.T, data ...float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.Column(data)
	require.NoError(t, err)
	return raw
}

func TestCPUBackend_ElementWise(t *testing.T) {
	backend := cpu.New()
	a := mustColumn(t, 1, 2, 3)
	b := mustColumn(t, 4, 5, 6)

	assert.Equal(t, []float64{5, 7, 9}, backend.Add(a, b).Data())
	assert.Equal(t, []float64{-3, -3, -3}, backend.Sub(a, b).Data())
	assert.Equal(t, []float64{4, 10, 18}, backend.Mul(a, b).Data())
	assert.Equal(t, []float64{0.25, 0.4, 0.5}, backend.Div(a, b).Data())

	// Inputs are never modified.
	assert.Equal(t, []float64{1, 2, 3}, a.Data())
}

func TestCPUBackend_ScalarBroadcast(t *testing.T) {
	backend := cpu.New()
	a := mustColumn(t, 1, 2, 3)
	two := tensor.Scalar(2)

	assert.Equal(t, []float64{2, 4, 6}, backend.Mul(a, two).Data())
	assert.Equal(t, []float64{1, 0, -1}, backend.Sub(two, a).Data())
	assert.Equal(t, tensor.Shape{3, 1}, backend.Add(two, a).Shape())
}

func TestCPUBackend_ShapeMismatchPanics(t *testing.T) {
	backend := cpu.New()
	assert.Panics(t, func() {
		backend.Add(mustColumn(t, 1, 2), mustColumn(t, 1, 2, 3))
	})
	assert.Panics(t, func() {
		backend.MatMul(mustColumn(t, 1, 2), mustColumn(t, 1, 2))
	})
}

func TestCPUBackend_MatMulTranspose(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
	require.NoError(t, err)
	w := mustColumn(t, 1, -1)

	out := backend.MatMul(x, w)
	assert.Equal(t, tensor.Shape{3, 1}, out.Shape())
	assert.Equal(t, []float64{-1, -1, -1}, out.Data())

	xT := backend.Transpose(x)
	assert.Equal(t, tensor.Shape{2, 3}, xT.Shape())
	assert.Equal(t, []float64{1, 3, 5, 2, 4, 6}, xT.Data())
}

func TestCPUBackend_Math(t *testing.T) {
	backend := cpu.New()
	x := mustColumn(t, -1, 0, 2)

	exp := backend.Exp(x).Data()
	assert.InDelta(t, math.Exp(-1), exp[0], 1e-12)
	assert.InDelta(t, 1.0, exp[1], 1e-12)

	assert.InDelta(t, math.Log(2), backend.Log(mustColumn(t, 2)).Item(), 1e-12)
	assert.InDelta(t, math.Tanh(2), backend.Tanh(x).Data()[2], 1e-12)

	sig := backend.Sigmoid(x).Data()
	assert.InDelta(t, 1/(1+math.Exp(1)), sig[0], 1e-12)
	assert.InDelta(t, 0.5, sig[1], 1e-12)
}

func TestLogAddExp_Stable(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 0, math.Log(2)},
		{1000, 0, 1000},
		{0, -1000, 0},
		{-1000, -1000, -1000 + math.Log(2)},
		{2, 3, math.Log(math.Exp(2) + math.Exp(3))},
	}

	for _, tt := range tests {
		got := cpu.LogAddExp(tt.a, tt.b)
		assert.False(t, math.IsInf(got, 0) || math.IsNaN(got))
		assert.InDelta(t, tt.want, got, 1e-9)
	}
}

func TestCPUBackend_Reductions(t *testing.T) {
	backend := cpu.New()
	x := mustColumn(t, 1, 2, 3, 6)

	assert.Equal(t, 12.0, backend.Sum(x).Item())
	assert.Equal(t, 3.0, backend.Mean(x).Item())
	assert.Equal(t, []float64{2, 4, 6, 12}, backend.MulScalar(x, 2).Data())
	assert.Equal(t, []float64{2, 3, 4, 7}, backend.AddScalar(x, 1).Data())
}
