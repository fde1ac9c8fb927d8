package gradient

import (
	"fmt"

	"github.com/born-ml/descent/internal/dataset"
	"github.com/born-ml/descent/internal/validate"
)

// Comparison is one oracle's gradient measured against a reference.
type Comparison struct {
	Oracle     string
	Gradient   []float64
	MaxAbsDiff float64 // ∞-norm distance to the reference gradient
}

// Compare evaluates reference and every oracle in others at w and reports
// each gradient's ∞-norm distance to the reference. The first entry is the
// reference itself.
func Compare(w []float64, batch dataset.Batch, reference Oracle, others ...Oracle) ([]Comparison, error) {
	ref, err := reference.Gradient(w, batch)
	if err != nil {
		return nil, fmt.Errorf("compare: %s: %w", reference.Name(), err)
	}

	out := []Comparison{{Oracle: reference.Name(), Gradient: ref}}
	for _, o := range others {
		g, err := o.Gradient(w, batch)
		if err != nil {
			return nil, fmt.Errorf("compare: %s: %w", o.Name(), err)
		}
		d, err := validate.MaxAbsDiff(g, ref)
		if err != nil {
			return nil, fmt.Errorf("compare: %s: %w", o.Name(), err)
		}
		out = append(out, Comparison{Oracle: o.Name(), Gradient: g, MaxAbsDiff: d})
	}
	return out, nil
}
