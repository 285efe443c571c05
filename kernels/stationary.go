package kernels

import (
	"errors"

	"github.com/0x0L/tinygp/distance"
)

var (
	// ErrAnisotropicScale indicates a per-dimension length scale was supplied.
	ErrAnisotropicScale = errors.New("kernels: stationary kernels take a scalar length scale only; apply a linear or Cholesky transform to the inputs for per-dimension scales")

	// ErrMissingGamma indicates ExpSineSquared was constructed without gamma.
	ErrMissingGamma = errors.New("kernels: ExpSineSquared requires a nonzero gamma")

	// ErrMissingAlpha indicates RationalQuadratic was constructed without alpha.
	ErrMissingAlpha = errors.New("kernels: RationalQuadratic requires a nonzero alpha")
)

// Config configures a stationary kernel.
//
// The zero value is usable: Scale defaults to 1 and Metric to the kernel's
// default metric.
type Config struct {
	// Scale is the length scale, in the same units as the metric's distance.
	// Cosine and ExpSineSquared interpret it as the period.
	// 0 means 1.
	Scale float64

	// Scales is reserved for per-dimension length scales. Stationary kernels
	// are strictly isotropic, so any non-empty value fails construction with
	// ErrAnisotropicScale.
	Scales []float64

	// Metric overrides the kernel's default distance metric.
	Metric distance.Metric
}

// Stationary carries the validated length scale and distance metric shared
// by every stationary kernel. It is embedded by the concrete kernel types
// and not constructed directly.
type Stationary struct {
	scale  float64
	metric distance.Metric
}

func newStationary(cfg Config, def distance.Metric) (Stationary, error) {
	if len(cfg.Scales) > 0 {
		return Stationary{}, ErrAnisotropicScale
	}
	s := Stationary{scale: cfg.Scale, metric: cfg.Metric}
	if s.scale == 0 {
		s.scale = 1
	}
	if s.metric == nil {
		s.metric = def
	}
	return s, nil
}

// Scale returns the length scale.
func (s Stationary) Scale() float64 { return s.scale }

// Metric returns the distance metric.
func (s Stationary) Metric() distance.Metric { return s.metric }

// r is the metric distance between x1 and x2 in units of the length scale.
func (s Stationary) r(x1, x2 []float64) float64 {
	return s.metric.Distance(x1, x2) / s.scale
}

// r2 is the squared metric distance in units of the squared length scale.
func (s Stationary) r2(x1, x2 []float64) float64 {
	return s.metric.SquaredDistance(x1, x2) / (s.scale * s.scale)
}
