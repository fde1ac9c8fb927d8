package dataset_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/errs"
)

func TestSynthetic_Deterministic(t *testing.T) {
	cfg := dataset.SyntheticConfig{Rows: 50, Features: 3, Seed: 7}

	a, wa, err := dataset.Synthetic(cfg)
	require.NoError(t, err)
	b, wb, err := dataset.Synthetic(cfg)
	require.NoError(t, err)

	assert.Equal(t, wa, wb)
	assert.True(t, mat.Equal(a.Features, b.Features))
	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, 50, a.Rows())
	assert.Equal(t, 3, a.Dim())

	for _, y := range a.Labels {
		assert.Contains(t, []float64{0, 1}, y)
	}
}

func TestSynthetic_Separable(t *testing.T) {
	w := []float64{1, -2}
	d, got, err := dataset.Synthetic(dataset.SyntheticConfig{
		Rows: 40, Features: 2, Seed: 1, Weights: w, Labels: dataset.SeparableLabels,
	})
	require.NoError(t, err)
	assert.Equal(t, w, got)

	for i := range d.Rows() {
		logit := mat.Dot(d.Features.RowView(i), mat.NewVecDense(2, w))
		assert.Equal(t, logit > 0, d.Labels[i] == 1)
	}
}

func TestSynthetic_InvalidConfig(t *testing.T) {
	_, _, err := dataset.Synthetic(dataset.SyntheticConfig{Rows: 0, Features: 2})
	assert.True(t, errors.Is(err, errs.ErrInvalidConfig))

	_, _, err = dataset.Synthetic(dataset.SyntheticConfig{Rows: 5, Features: 2, Weights: []float64{1}})
	assert.True(t, errors.Is(err, errs.ErrInvalidDimension))
}

func TestSplit(t *testing.T) {
	d, _, err := dataset.Synthetic(dataset.SyntheticConfig{Rows: 100, Features: 2, Seed: 3})
	require.NoError(t, err)

	train, test, err := d.Split(0.2, 42)
	require.NoError(t, err)
	assert.Equal(t, 80, train.Rows())
	assert.Equal(t, 20, test.Rows())
	assert.Equal(t, 2, train.Dim())

	train2, test2, err := d.Split(0.2, 42)
	require.NoError(t, err)
	assert.True(t, mat.Equal(train.Features, train2.Features))
	assert.Equal(t, test.Labels, test2.Labels)

	// Every original row ends up in exactly one side.
	sum := func(x *mat.Dense) float64 { return mat.Sum(x) }
	assert.InDelta(t, sum(d.Features), sum(train.Features)+sum(test.Features), 1e-9)
}

func TestSplit_InvalidFraction(t *testing.T) {
	d, _, err := dataset.Synthetic(dataset.SyntheticConfig{Rows: 10, Features: 2, Seed: 3})
	require.NoError(t, err)

	for _, f := range []float64{-0.1, 1, 1.5, math.NaN()} {
		_, _, err := d.Split(f, 1)
		assert.True(t, errors.Is(err, errs.ErrInvalidConfig), "fraction %v", f)
	}
}

func TestSplit_ZeroTest(t *testing.T) {
	d, _, err := dataset.Synthetic(dataset.SyntheticConfig{Rows: 10, Features: 2, Seed: 3})
	require.NoError(t, err)

	train, test, err := d.Split(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, train.Rows())
	assert.Equal(t, 0, test.Rows())
}

func TestStandardize(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 5,
		2, 5,
		3, 5,
		4, 5,
	})
	d, err := dataset.New(x, []float64{0, 1, 0, 1})
	require.NoError(t, err)

	mean, std := d.Standardize()
	assert.Equal(t, []float64{2.5, 5}, mean)
	assert.InDelta(t, math.Sqrt(5.0/3.0), std[0], 1e-12)
	assert.Equal(t, 0.0, std[1])

	col := mat.Col(nil, 0, d.Features)
	assert.InDelta(t, 0, col[0]+col[1]+col[2]+col[3], 1e-12)
	assert.Equal(t, []float64{0, 0, 0, 0}, mat.Col(nil, 1, d.Features))
}

func TestNew_RejectsBadLabels(t *testing.T) {
	x := mat.NewDense(2, 1, []float64{1, 2})

	_, err := dataset.New(x, []float64{0, 2})
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))

	_, err = dataset.New(x, []float64{0})
	assert.True(t, errors.Is(err, errs.ErrInvalidDimension))
}

func TestSynthetic_RejectsNonFiniteScale(t *testing.T) {
	_, _, err := dataset.Synthetic(dataset.SyntheticConfig{Rows: 5, Features: 2, Seed: 1, Scale: math.Inf(1)})
	assert.True(t, errors.Is(err, errs.ErrInvalidInput), err)
}

func TestNew_RejectsNonFiniteFeatures(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		x := mat.NewDense(2, 2, []float64{1, 2, v, 4})
		_, err := dataset.New(x, []float64{0, 1})
		assert.True(t, errors.Is(err, errs.ErrInvalidInput), "value %v: %v", v, err)
	}

	// Values outside a view are not inspected.
	full := mat.NewDense(2, 3, []float64{1, 2, math.NaN(), 3, 4, math.Inf(1)})
	view := full.Slice(0, 2, 0, 2).(*mat.Dense)
	_, err := dataset.New(view, []float64{0, 1})
	assert.NoError(t, err)
}

func TestReadCSV(t *testing.T) {
	input := `x1,x2,label
0.5,1.5,1
-1,2,0
3,0.25,1
`
	d, err := dataset.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, d.Rows())
	assert.Equal(t, 2, d.Dim())
	assert.Equal(t, []float64{1, 0, 1}, d.Labels)
	assert.Equal(t, 0.25, d.Features.At(2, 1))
}

func TestReadCSV_NoHeader(t *testing.T) {
	d, err := dataset.ReadCSV(strings.NewReader("1,2,0\n3,4,1\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := dataset.ReadCSV(strings.NewReader("a,b\n"))
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))

	_, err = dataset.ReadCSV(strings.NewReader("1,2,0.5\n"))
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))

	_, err = dataset.ReadCSV(strings.NewReader("1,2,1\n2,x,0\n"))
	assert.Error(t, err)

	_, err = dataset.ReadCSV(strings.NewReader("1,2,1\n2,NaN,0\n"))
	assert.True(t, errors.Is(err, errs.ErrInvalidInput), err)

	_, err = dataset.ReadCSV(strings.NewReader("1,2,1\n-Inf,3,0\n"))
	assert.True(t, errors.Is(err, errs.ErrInvalidInput), err)
}
