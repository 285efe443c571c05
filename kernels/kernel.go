// Package kernels implements stationary covariance functions for
// Gaussian-process regression.
//
// A stationary kernel depends only on the distance between two coordinates,
// never on their absolute positions. Each kernel holds a scalar length scale
// and a distance.Metric and evaluates a closed-form transform of the scaled
// distance. Kernels are immutable once constructed and safe to share across
// goroutines.
package kernels

// Kernel is a covariance function over pairs of coordinate vectors.
type Kernel interface {
	// Evaluate returns the covariance between x1 and x2.
	Evaluate(x1, x2 []float64) float64
}
