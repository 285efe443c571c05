// Package tinygp provides stationary covariance functions for
// Gaussian-process regression.
//
// This is a Go port of the stationary kernel family from the tinygp Python
// library by Dan Foreman-Mackey:
// https://github.com/dfm/tinygp
//
// The kernels subpackage defines the covariance functions themselves, one
// coordinate pair at a time; the distance subpackage defines the metrics
// they are built on. This package adds the covariance-matrix conveniences
// built on the same per-pair contract.
//
// Basic usage:
//
//	k, err := kernels.NewMatern32(kernels.Config{Scale: 1.5})
//	if err != nil {
//		// handle kernels.ErrAnisotropicScale
//	}
//	cov := tinygp.Gram(k, points)
package tinygp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/0x0L/tinygp/kernels"
)

// Gram returns the covariance matrix of the points x under k, evaluating the
// upper triangle only: every kernel is symmetric in its arguments.
// Returns nil for an empty point set.
func Gram(k kernels.Kernel, x [][]float64) *mat.SymDense {
	n := len(x)
	if n == 0 {
		return nil
	}
	g := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			g.SetSym(i, j, k.Evaluate(x[i], x[j]))
		}
	}
	return g
}

// Cross returns the cross-covariance matrix between the point sets x1 and x2
// under k, with one row per point of x1. Returns nil if either set is empty.
func Cross(k kernels.Kernel, x1, x2 [][]float64) *mat.Dense {
	if len(x1) == 0 || len(x2) == 0 {
		return nil
	}
	c := mat.NewDense(len(x1), len(x2), nil)
	for i := range x1 {
		for j := range x2 {
			c.Set(i, j, k.Evaluate(x1[i], x2[j]))
		}
	}
	return c
}

// Diag returns the self-covariance k(x_i, x_i) of each point.
func Diag(k kernels.Kernel, x [][]float64) []float64 {
	d := make([]float64, len(x))
	for i := range x {
		d[i] = k.Evaluate(x[i], x[i])
	}
	return d
}
