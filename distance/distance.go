// Package distance provides the distance metrics used by stationary kernels.
package distance

import (
	"gonum.org/v1/gonum/floats"
)

// Metric reduces the difference between two coordinate vectors to a
// nonnegative scalar distance.
//
// SquaredDistance must equal the square of Distance for every input pair.
// Metrics with a cheaper direct formulation (L2) compute it without going
// through the square root.
//
// All methods assume the vectors have the same length (caller's
// responsibility).
type Metric interface {
	// Distance returns the distance between x1 and x2 under this metric.
	Distance(x1, x2 []float64) float64

	// SquaredDistance returns the squared distance between x1 and x2.
	SquaredDistance(x1, x2 []float64) float64
}

// L1 is the Manhattan (taxicab) distance.
// D(x1, x2) = sum(|x1_i - x2_i|)
type L1 struct{}

// Distance returns the sum of absolute elementwise differences.
func (L1) Distance(x1, x2 []float64) float64 {
	return floats.Distance(x1, x2, 1)
}

// SquaredDistance returns the square of Distance.
func (l L1) SquaredDistance(x1, x2 []float64) float64 {
	d := l.Distance(x1, x2)
	return d * d
}

// L2 is the Euclidean distance.
// D(x1, x2) = sqrt(sum((x1_i - x2_i)^2))
type L2 struct{}

// Distance returns the Euclidean norm of the elementwise difference.
func (L2) Distance(x1, x2 []float64) float64 {
	return floats.Distance(x1, x2, 2)
}

// SquaredDistance sums the squared differences directly, skipping the
// square root Distance would take.
func (L2) SquaredDistance(x1, x2 []float64) float64 {
	var sum float64
	for i := range x1 {
		d := x1[i] - x2[i]
		sum += d * d
	}
	return sum
}
