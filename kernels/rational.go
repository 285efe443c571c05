package kernels

import (
	"math"

	"github.com/0x0L/tinygp/distance"
)

var _ Kernel = (*RationalQuadratic)(nil)

// RationalQuadratic is the rational quadratic kernel, equivalent to an
// infinite mixture of ExpSquared kernels with varying length scales.
// k(x1, x2) = (1 + r²/(2α))^(-α), r² = D²(x1, x2) / scale²
// The default metric is L2; the squared distance is used directly.
type RationalQuadratic struct {
	Stationary
	alpha float64
}

// NewRationalQuadratic returns a rational quadratic kernel with the given
// alpha and configuration. Alpha is required; passing 0 fails with
// ErrMissingAlpha.
func NewRationalQuadratic(alpha float64, cfg Config) (*RationalQuadratic, error) {
	if alpha == 0 {
		return nil, ErrMissingAlpha
	}
	s, err := newStationary(cfg, distance.L2{})
	if err != nil {
		return nil, err
	}
	return &RationalQuadratic{Stationary: s, alpha: alpha}, nil
}

// Alpha returns the α parameter.
func (k *RationalQuadratic) Alpha() float64 { return k.alpha }

// Evaluate returns the covariance between x1 and x2.
func (k *RationalQuadratic) Evaluate(x1, x2 []float64) float64 {
	return math.Pow(1+0.5*k.r2(x1, x2)/k.alpha, -k.alpha)
}
