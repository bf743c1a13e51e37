// Package solveports defines the contract between the cache solver and the
// linear algebra routine that computes inverses.
package solveports

import (
	"errors"

	"github.com/ZanzyTHEbar/matcache/matcache/matrix"
)

var (
	// ErrNotSquare is returned when the input matrix is not square.
	ErrNotSquare = errors.New("inverter: matrix is not square")

	// ErrSingular is returned when the input matrix admits no inverse.
	ErrSingular = errors.New("inverter: matrix is singular")
)

// Inverter computes the inverse of a square matrix.
type Inverter interface {
	Invert(m matrix.Matrix) (matrix.Matrix, error)
}
