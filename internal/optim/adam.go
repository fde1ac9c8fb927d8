package optim

import (
	"math"
	"slices"

	"github.com/born-ml/descent/internal/errs"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr(i) * m_hat / (sqrt(v_hat) + eps)
//
// t counts the steps applied to this state, so bias correction is
// independent of the schedule's iteration index.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	schedule Schedule
	beta1    float64
	beta2    float64
	eps      float64
}

// AdamState is the state of the Adam optimizer.
type AdamState struct {
	Params []float64
	M      []float64 // First moment estimates
	V      []float64 // Second moment estimates
	T      int       // Steps taken
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR       float64    // Learning rate, required unless Schedule is set
	Betas    [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps      float64    // Term for numerical stability (default: 1e-8)
	Schedule Schedule   // Overrides LR when non-nil
}

// NewAdam creates a new Adam optimizer.
//
// Default hyperparameters:
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
//
// There is no default learning rate.
func NewAdam(config AdamConfig) (*Adam, error) {
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	s, err := rate("adam", config.LR, config.Schedule)
	if err != nil {
		return nil, err
	}
	for i, b := range config.Betas {
		if !(b > 0 && b < 1) {
			return nil, errs.Config("adam", "beta%d %v must be in (0, 1)", i+1, b)
		}
	}
	if !(config.Eps > 0) {
		return nil, errs.Config("adam", "eps %v must be positive", config.Eps)
	}

	return &Adam{
		schedule: s,
		beta1:    config.Betas[0],
		beta2:    config.Betas[1],
		eps:      config.Eps,
	}, nil
}

// Init implements Optimizer. Both moments start at zero.
func (a *Adam) Init(params []float64) AdamState {
	return AdamState{
		Params: slices.Clone(params),
		M:      make([]float64, len(params)),
		V:      make([]float64, len(params)),
	}
}

// Step implements Optimizer.
func (a *Adam) Step(iteration int, grad []float64, state AdamState) AdamState {
	t := state.T + 1
	lr := a.schedule.Rate(iteration)
	biasCorrection1 := 1 - math.Pow(a.beta1, float64(t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(t))

	next := AdamState{
		Params: make([]float64, len(state.Params)),
		M:      make([]float64, len(state.M)),
		V:      make([]float64, len(state.V)),
		T:      t,
	}
	for i, g := range grad {
		next.M[i] = a.beta1*state.M[i] + (1-a.beta1)*g
		next.V[i] = a.beta2*state.V[i] + (1-a.beta2)*g*g

		mHat := next.M[i] / biasCorrection1
		vHat := next.V[i] / biasCorrection2
		next.Params[i] = state.Params[i] - lr*mHat/(math.Sqrt(vHat)+a.eps)
	}
	return next
}

// Params implements Optimizer.
func (a *Adam) Params(state AdamState) []float64 {
	return slices.Clone(state.Params)
}
