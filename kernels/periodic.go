package kernels

import (
	"math"

	"github.com/0x0L/tinygp/distance"
)

var (
	_ Kernel = (*Cosine)(nil)
	_ Kernel = (*ExpSineSquared)(nil)
)

// Cosine is the cosine kernel.
// k(x1, x2) = cos(2π·r), r = D(x1, x2) / P
// Config.Scale is the period P. The default metric is L1.
type Cosine struct {
	Stationary
}

// NewCosine returns a cosine kernel with the given configuration.
func NewCosine(cfg Config) (*Cosine, error) {
	s, err := newStationary(cfg, distance.L1{})
	if err != nil {
		return nil, err
	}
	return &Cosine{s}, nil
}

// Evaluate returns the covariance between x1 and x2.
func (k *Cosine) Evaluate(x1, x2 []float64) float64 {
	return math.Cos(2 * math.Pi * k.r(x1, x2))
}

// ExpSineSquared is the exponential sine squared (quasiperiodic) kernel.
// k(x1, x2) = exp(-Γ·sin²(π·r)), r = D(x1, x2) / P
// Config.Scale is the period P. The default metric is L1.
type ExpSineSquared struct {
	Stationary
	gamma float64
}

// NewExpSineSquared returns a quasiperiodic kernel with the given gamma and
// configuration. Gamma is required; passing 0 fails with ErrMissingGamma.
func NewExpSineSquared(gamma float64, cfg Config) (*ExpSineSquared, error) {
	if gamma == 0 {
		return nil, ErrMissingGamma
	}
	s, err := newStationary(cfg, distance.L1{})
	if err != nil {
		return nil, err
	}
	return &ExpSineSquared{Stationary: s, gamma: gamma}, nil
}

// Gamma returns the Γ parameter.
func (k *ExpSineSquared) Gamma() float64 { return k.gamma }

// Evaluate returns the covariance between x1 and x2.
func (k *ExpSineSquared) Evaluate(x1, x2 []float64) float64 {
	s := math.Sin(math.Pi * k.r(x1, x2))
	return math.Exp(-k.gamma * s * s)
}
