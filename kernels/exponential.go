package kernels

import (
	"math"

	"github.com/0x0L/tinygp/distance"
)

var (
	_ Kernel = (*Exp)(nil)
	_ Kernel = (*ExpSquared)(nil)
)

// Exp is the exponential kernel.
// k(x1, x2) = exp(-r), r = D(x1, x2) / scale
// The default metric is L1.
type Exp struct {
	Stationary
}

// NewExp returns an exponential kernel with the given configuration.
func NewExp(cfg Config) (*Exp, error) {
	s, err := newStationary(cfg, distance.L1{})
	if err != nil {
		return nil, err
	}
	return &Exp{s}, nil
}

// Evaluate returns the covariance between x1 and x2.
func (k *Exp) Evaluate(x1, x2 []float64) float64 {
	return math.Exp(-k.r(x1, x2))
}

// ExpSquared is the exponential squared (radial basis function) kernel.
// k(x1, x2) = exp(-r²/2), r² = D²(x1, x2) / scale²
// The default metric is L2; the squared distance is used directly.
type ExpSquared struct {
	Stationary
}

// NewExpSquared returns an exponential squared kernel with the given
// configuration.
func NewExpSquared(cfg Config) (*ExpSquared, error) {
	s, err := newStationary(cfg, distance.L2{})
	if err != nil {
		return nil, err
	}
	return &ExpSquared{s}, nil
}

// Evaluate returns the covariance between x1 and x2.
func (k *ExpSquared) Evaluate(x1, x2 []float64) float64 {
	return math.Exp(-0.5 * k.r2(x1, x2))
}
