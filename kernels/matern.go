package kernels

import (
	"math"

	"github.com/0x0L/tinygp/distance"
)

var (
	_ Kernel = (*Matern32)(nil)
	_ Kernel = (*Matern52)(nil)
)

var (
	sqrt3 = math.Sqrt(3)
	sqrt5 = math.Sqrt(5)
)

// Matern32 is the Matern-3/2 kernel.
// k(x1, x2) = (1 + sqrt(3)·r) · exp(-sqrt(3)·r), r = D(x1, x2) / scale
// The default metric is L1. Sampled functions are once differentiable.
type Matern32 struct {
	Stationary
}

// NewMatern32 returns a Matern-3/2 kernel with the given configuration.
func NewMatern32(cfg Config) (*Matern32, error) {
	s, err := newStationary(cfg, distance.L1{})
	if err != nil {
		return nil, err
	}
	return &Matern32{s}, nil
}

// Evaluate returns the covariance between x1 and x2.
func (k *Matern32) Evaluate(x1, x2 []float64) float64 {
	arg := sqrt3 * k.r(x1, x2)
	return (1 + arg) * math.Exp(-arg)
}

// Matern52 is the Matern-5/2 kernel.
// k(x1, x2) = (1 + sqrt(5)·r + 5·r²/3) · exp(-sqrt(5)·r), r = D(x1, x2) / scale
// The default metric is L1. Sampled functions are twice differentiable.
type Matern52 struct {
	Stationary
}

// NewMatern52 returns a Matern-5/2 kernel with the given configuration.
func NewMatern52(cfg Config) (*Matern52, error) {
	s, err := newStationary(cfg, distance.L1{})
	if err != nil {
		return nil, err
	}
	return &Matern52{s}, nil
}

// Evaluate returns the covariance between x1 and x2.
func (k *Matern52) Evaluate(x1, x2 []float64) float64 {
	arg := sqrt5 * k.r(x1, x2)
	return (1 + arg + arg*arg/3) * math.Exp(-arg)
}
