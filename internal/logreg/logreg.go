// Package logreg implements the binary logistic-regression objective.
//
// The model has no bias term; prepend a constant feature column for one.
// Probabilities use the tanh form of the sigmoid and the loss uses the
// log-sum-exp form, so neither overflows for large logits.
package logreg

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/descent/internal/backend/cpu"
	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/errs"
)

// Model is the logistic-regression objective. The zero value is ready to use.
//
// Mathematical Formulation:
//
//	a       = X·w
//	p(y=1)  = σ(a) = 0.5·(tanh(a/2) + 1)
//	L(w)    = -mean(y·log p1 + (1-y)·log p0)
//	log p1  = -logsumexp(0, -a)
//	log p0  = -logsumexp(0,  a)
//
// Gradient:
//
//	∇L(w) = (1/N)·Xᵀ(σ(Xw) - y)
type Model struct{}

// PredictLogit returns X·w.
func (Model) PredictLogit(w []float64, x *mat.Dense) ([]float64, error) {
	if err := checkWeights("predict logit", w, x); err != nil {
		return nil, err
	}
	return logits(w, x), nil
}

// PredictProbability returns σ(X·w) for every row of X.
func (m Model) PredictProbability(w []float64, x *mat.Dense) ([]float64, error) {
	a, err := m.PredictLogit(w, x)
	if err != nil {
		return nil, err
	}
	for i, v := range a {
		a[i] = cpu.Sigmoid(v)
	}
	return a, nil
}

// NegativeLogLikelihood returns the mean negative log-likelihood of batch
// under weights w.
//
// The result is finite for any finite logits, including |a| in the
// thousands where exp(a) overflows.
//
// Errors:
//   - ErrInvalidDimension: len(w) differs from the batch feature dimension
//   - ErrInvalidInput: empty batch, non-finite weights, labels outside {0, 1}
func (Model) NegativeLogLikelihood(w []float64, batch dataset.Batch) (float64, error) {
	if err := check("negative log-likelihood", w, batch); err != nil {
		return 0, err
	}

	var total float64
	for i, a := range logits(w, batch.Features) {
		logP1 := -cpu.LogAddExp(0, -a)
		logP0 := -cpu.LogAddExp(0, a)
		y := batch.Labels[i]
		total += y*logP1 + (1-y)*logP0
	}
	return -total / float64(batch.Rows()), nil
}

// NaiveNegativeLogLikelihood evaluates the loss as
// -mean(y·log σ(a) + (1-y)·log(1-σ(a))).
//
// It agrees with NegativeLogLikelihood for moderate logits and degrades to
// ±Inf or NaN once σ(a) rounds to 0 or 1.
func (Model) NaiveNegativeLogLikelihood(w []float64, batch dataset.Batch) (float64, error) {
	if err := check("naive negative log-likelihood", w, batch); err != nil {
		return 0, err
	}

	var total float64
	for i, a := range logits(w, batch.Features) {
		p := cpu.Sigmoid(a)
		y := batch.Labels[i]
		total += y*math.Log(p) + (1-y)*math.Log(1-p)
	}
	return -total / float64(batch.Rows()), nil
}

// Gradient returns ∇L(w) = (1/N)·Xᵀ(σ(Xw) - y).
func (Model) Gradient(w []float64, batch dataset.Batch) ([]float64, error) {
	if err := check("gradient", w, batch); err != nil {
		return nil, err
	}

	residual := logits(w, batch.Features)
	for i, a := range residual {
		residual[i] = cpu.Sigmoid(a) - batch.Labels[i]
	}

	grad := mat.NewVecDense(len(w), nil)
	grad.MulVec(batch.Features.T(), mat.NewVecDense(len(residual), residual))
	out := grad.RawVector().Data
	floats.Scale(1/float64(batch.Rows()), out)
	return out, nil
}

// Loss is NegativeLogLikelihood under the name the training loop expects.
func (m Model) Loss(w []float64, batch dataset.Batch) (float64, error) {
	return m.NegativeLogLikelihood(w, batch)
}

// Predict classifies every row of X: 1 where σ(X·w) >= threshold, else 0.
func (m Model) Predict(w []float64, x *mat.Dense, threshold float64) ([]float64, error) {
	p, err := m.PredictProbability(w, x)
	if err != nil {
		return nil, err
	}
	for i, v := range p {
		if v >= threshold {
			p[i] = 1
		} else {
			p[i] = 0
		}
	}
	return p, nil
}

// Accuracy returns the fraction of rows classified correctly at threshold 0.5.
func (m Model) Accuracy(w []float64, x *mat.Dense, labels []float64) (float64, error) {
	pred, err := m.Predict(w, x, 0.5)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(labels) {
		return 0, errs.Dimension("accuracy", "label count", len(labels), len(pred))
	}
	if len(pred) == 0 {
		return 0, errs.Input("accuracy", "no rows")
	}

	correct := 0
	for i := range pred {
		if pred[i] == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(pred)), nil
}

func logits(w []float64, x *mat.Dense) []float64 {
	rows, _ := x.Dims()
	out := mat.NewVecDense(rows, nil)
	out.MulVec(x, mat.NewVecDense(len(w), w))
	return out.RawVector().Data
}

func checkWeights(op string, w []float64, x *mat.Dense) error {
	if x == nil || x.IsEmpty() {
		return errs.Input(op, "empty feature matrix")
	}
	if _, dim := x.Dims(); len(w) != dim {
		return errs.Dimension(op, "weight length", len(w), dim)
	}
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.Input(op, "weight %d is %v", i, v)
		}
	}
	return dataset.CheckFeatures(op, x)
}

func check(op string, w []float64, batch dataset.Batch) error {
	if batch.Rows() == 0 || batch.Features == nil || batch.Features.IsEmpty() {
		return errs.Input(op, "empty batch")
	}
	if r, _ := batch.Features.Dims(); r != batch.Rows() {
		return errs.Dimension(op, "label count", batch.Rows(), r)
	}
	if err := checkWeights(op, w, batch.Features); err != nil {
		return err
	}
	return dataset.CheckLabels(op, batch.Labels)
}
