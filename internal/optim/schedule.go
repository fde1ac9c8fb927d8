package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/descent/internal/errs"
)

// Schedule maps the 1-based global iteration to a learning rate.
type Schedule interface {
	Rate(iteration int) float64
}

// Constant is a fixed learning rate.
type Constant float64

// Rate implements Schedule.
func (c Constant) Rate(int) float64 {
	return float64(c)
}

// Validate rejects non-positive or non-finite rates.
func (c Constant) Validate() error {
	return positive("constant schedule", "learning rate", float64(c))
}

// StepDecay multiplies the rate by Factor every Every iterations:
//
//	lr(i) = Initial · Factor^floor((i-1)/Every)
type StepDecay struct {
	Initial float64
	Factor  float64
	Every   int
}

// Rate implements Schedule.
func (s StepDecay) Rate(iteration int) float64 {
	k := max(iteration-1, 0) / s.Every
	return s.Initial * math.Pow(s.Factor, float64(k))
}

// Validate checks Initial > 0, Factor in (0, 1] and Every > 0.
func (s StepDecay) Validate() error {
	if err := positive("step decay", "initial rate", s.Initial); err != nil {
		return err
	}
	if !(s.Factor > 0 && s.Factor <= 1) {
		return errs.Config("step decay", "factor %v must be in (0, 1]", s.Factor)
	}
	if s.Every <= 0 {
		return errs.Config("step decay", "interval %d must be positive", s.Every)
	}
	return nil
}

// InverseTimeDecay shrinks the rate hyperbolically:
//
//	lr(i) = Initial / (1 + Decay·(i-1))
type InverseTimeDecay struct {
	Initial float64
	Decay   float64
}

// Rate implements Schedule.
func (s InverseTimeDecay) Rate(iteration int) float64 {
	return s.Initial / (1 + s.Decay*float64(max(iteration-1, 0)))
}

// Validate checks Initial > 0 and Decay >= 0.
func (s InverseTimeDecay) Validate() error {
	if err := positive("inverse time decay", "initial rate", s.Initial); err != nil {
		return err
	}
	if !(s.Decay >= 0) || math.IsInf(s.Decay, 0) {
		return errs.Config("inverse time decay", "decay %v must be finite and non-negative", s.Decay)
	}
	return nil
}

func validateSchedule(op string, s Schedule) error {
	v, ok := s.(interface{ Validate() error })
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func positive(op, what string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return errs.Config(op, "%s %v must be positive and finite", what, v)
	}
	return nil
}
