// Package dataset supplies feature/label data and slices it into minibatches.
//
// Dataset is the in-memory provider (synthetic generation, CSV loading,
// train/test split). BatchStream partitions a dataset into a fixed,
// replayable sequence of batches for the training loop.
package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/descent/internal/errs"
)

// Dataset holds a feature matrix and binary labels.
type Dataset struct {
	Features *mat.Dense // [rows, dim]
	Labels   []float64  // [rows], values in {0, 1}
}

// New validates and wraps features and labels.
func New(features *mat.Dense, labels []float64) (*Dataset, error) {
	if features == nil {
		return nil, errs.Input("dataset", "features are nil")
	}
	rows, _ := features.Dims()
	if rows != len(labels) {
		return nil, errs.Dimension("dataset", "label count", len(labels), rows)
	}
	if err := CheckFeatures("dataset", features); err != nil {
		return nil, err
	}
	if err := CheckLabels("dataset", labels); err != nil {
		return nil, err
	}
	return &Dataset{Features: features, Labels: labels}, nil
}

// Rows returns the number of examples.
func (d *Dataset) Rows() int {
	return len(d.Labels)
}

// Dim returns the feature dimension.
func (d *Dataset) Dim() int {
	_, c := d.Features.Dims()
	return c
}

// Batch returns the whole dataset as a single batch.
func (d *Dataset) Batch() Batch {
	return Batch{Features: d.Features, Labels: d.Labels}
}

// Split splits the dataset into train and test sets.
//
// Rows are permuted with a PCG source seeded by seed, so the split is
// reproducible. testFraction must be in [0, 1); the test set gets
// floor(rows*testFraction) rows.
func (d *Dataset) Split(testFraction float64, seed uint64) (train, test *Dataset, err error) {
	if testFraction < 0 || testFraction >= 1 || math.IsNaN(testFraction) {
		return nil, nil, errs.Config("split", "test fraction %v must be in [0, 1)", testFraction)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	perm := rng.Perm(d.Rows())
	nTest := int(float64(d.Rows()) * testFraction)
	if d.Rows()-nTest == 0 {
		return nil, nil, errs.Config("split", "test fraction %v leaves no training rows", testFraction)
	}

	test = d.subset(perm[:nTest])
	train = d.subset(perm[nTest:])
	return train, test, nil
}

// subset copies the given rows into a new dataset.
func (d *Dataset) subset(rows []int) *Dataset {
	if len(rows) == 0 {
		return &Dataset{Features: &mat.Dense{}, Labels: []float64{}}
	}
	features := mat.NewDense(len(rows), d.Dim(), nil)
	labels := make([]float64, len(rows))
	for i, r := range rows {
		features.SetRow(i, d.Features.RawRowView(r))
		labels[i] = d.Labels[r]
	}
	return &Dataset{Features: features, Labels: labels}
}

// Standardize scales every feature column to zero mean and unit variance
// in place and returns the column means and sample standard deviations.
// Constant columns are centered only.
func (d *Dataset) Standardize() (mean, std []float64) {
	rows, cols := d.Features.Dims()
	mean = make([]float64, cols)
	std = make([]float64, cols)
	col := make([]float64, rows)

	for j := range cols {
		mat.Col(col, j, d.Features)
		mean[j], std[j] = stat.MeanStdDev(col, nil)
		scale := 1.0
		if std[j] > 0 && !math.IsNaN(std[j]) {
			scale = 1 / std[j]
		}
		for i := range rows {
			d.Features.Set(i, j, (col[i]-mean[j])*scale)
		}
	}
	return mean, std
}

// CheckFeatures verifies that every feature value is finite.
func CheckFeatures(op string, features *mat.Dense) error {
	if features == nil || features.IsEmpty() {
		return nil
	}
	raw := features.RawMatrix()
	for i := range raw.Rows {
		for j, v := range raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errs.Input(op, "feature (%d, %d) is %v", i, j, v)
			}
		}
	}
	return nil
}

// CheckLabels verifies that every label is exactly 0 or 1.
func CheckLabels(op string, labels []float64) error {
	for i, y := range labels {
		if y != 0 && y != 1 {
			return errs.Input(op, "label %d is %v, want 0 or 1", i, y)
		}
	}
	return nil
}
