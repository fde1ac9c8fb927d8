package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/descent/internal/autodiff"
	"github.com/born-ml/descent/internal/backend/cpu"
	"github.com/born-ml/descent/internal/tensor"
)

func TestBackward_Square(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, err := tensor.Column([]float64{3})
	require.NoError(t, err)
	y := backend.Mul(x, x)

	grads := autodiff.Backward(y, backend)
	assert.InDelta(t, 6.0, grads[x].Item(), 1e-12)
}

func TestBackward_ReusedInputAccumulates(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	// y = x³ - 2x² + x, dy/dx = 3x² - 4x + 1
	x, err := tensor.Column([]float64{2})
	require.NoError(t, err)
	x2 := backend.Mul(x, x)
	x3 := backend.Mul(x2, x)
	y := backend.Add(backend.Sub(x3, backend.MulScalar(x2, 2)), x)

	grads := autodiff.Backward(y, backend)
	assert.InDelta(t, 5.0, grads[x].Item(), 1e-12)
}

func TestBackward_ScalarBroadcast(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, err := tensor.Column([]float64{1, 2, 3})
	require.NoError(t, err)
	s := tensor.Scalar(4)

	// y = Σ(x * s): dy/dx = s, dy/ds = Σx
	y := backend.Sum(backend.Mul(x, s))

	grads := autodiff.Backward(y, backend)
	assert.Equal(t, []float64{4, 4, 4}, grads[x].Data())
	assert.InDelta(t, 6.0, grads[s].Item(), 1e-12)
}

func TestBackward_MatMul(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
	require.NoError(t, err)
	w, err := tensor.Column([]float64{0.5, -1})
	require.NoError(t, err)

	// y = mean(A @ w): dy/dw = column means of A
	y := backend.Mean(backend.MatMul(a, w))

	grads := autodiff.Backward(y, backend)
	assert.InDeltaSlice(t, []float64{3, 4}, grads[w].Data(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.5 / 3, -1.0 / 3, 0.5 / 3, -1.0 / 3, 0.5 / 3, -1.0 / 3},
		grads[a].Data(), 1e-12)
}

func TestBackward_NonScalarPanics(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, err := tensor.Column([]float64{1, 2})
	require.NoError(t, err)
	y := backend.Mul(x, x)

	assert.Panics(t, func() { autodiff.Backward(y, backend) })
}

func TestBackward_EmptyTapePanics(t *testing.T) {
	backend := autodiff.New(cpu.New())
	assert.Panics(t, func() { autodiff.Backward(tensor.Scalar(1), backend) })
}

func TestTape_RecordingToggle(t *testing.T) {
	backend := autodiff.New(cpu.New())
	x := tensor.Scalar(2)

	backend.Mul(x, x)
	assert.Equal(t, 0, backend.Tape().NumOps())

	backend.Tape().StartRecording()
	backend.Mul(x, x)
	assert.Equal(t, 1, backend.Tape().NumOps())

	backend.Tape().StopRecording()
	backend.Mul(x, x)
	assert.Equal(t, 1, backend.Tape().NumOps())

	backend.Tape().Clear()
	assert.Equal(t, 0, backend.Tape().NumOps())
	assert.Equal(t, "Autodiff(CPU)", backend.Name())
}

func TestGrad_ConstantFunction(t *testing.T) {
	f := func(_ tensor.Backend, _ *tensor.RawTensor) (*tensor.RawTensor, error) {
		return tensor.Scalar(7), nil
	}

	value, grad, err := autodiff.Grad(cpu.New(), f, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 7.0, value)
	assert.Equal(t, []float64{0, 0}, grad)
}

func TestGrad_RejectsNonScalar(t *testing.T) {
	f := func(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
		return b.Mul(x, x), nil
	}

	_, _, err := autodiff.Grad(cpu.New(), f, []float64{1, 2})
	assert.Error(t, err)
}
