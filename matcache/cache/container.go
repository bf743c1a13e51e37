// Package cache implements the memoizing matrix container. The container
// holds a matrix and an optional cached inverse, and guarantees that
// replacing the matrix always clears the cache. It carries no computation
// logic and no dependency on the numeric library; computing and storing the
// inverse is the solve package's job.
package cache

import (
	"github.com/google/uuid"

	"github.com/ZanzyTHEbar/matcache/matcache/matrix"
)

// CachedMatrix owns a matrix value and an optional cached inverse. A nil
// inverse means "not yet computed for the current matrix".
//
// CachedMatrix is not safe for concurrent use. Callers needing concurrent
// access must hold an external lock across the full check-compute-store
// sequence of a solve.
type CachedMatrix struct {
	id  string
	mat matrix.Matrix
	inv *matrix.Matrix
}

// New creates a container holding the empty placeholder matrix. The
// placeholder is not invertible; SetMatrix must be called before the first
// solve.
func New() *CachedMatrix {
	return NewWithMatrix(matrix.Zero())
}

// NewWithMatrix creates a container holding m with no cached inverse.
func NewWithMatrix(m matrix.Matrix) *CachedMatrix {
	return &CachedMatrix{id: uuid.NewString(), mat: m}
}

// ID returns the container identity used for log correlation.
func (c *CachedMatrix) ID() string { return c.id }

// SetMatrix replaces the stored matrix and unconditionally clears the cached
// inverse, even when m equals the current matrix. The new matrix is not
// validated; squareness and invertibility surface at solve time.
func (c *CachedMatrix) SetMatrix(m matrix.Matrix) {
	c.mat = m
	c.inv = nil
}

// Matrix returns the current matrix value.
func (c *CachedMatrix) Matrix() matrix.Matrix { return c.mat }

// SetInverse stores inv as the cached inverse unconditionally. It is meant to
// be called by the solver immediately after computing the true inverse;
// storing an arbitrary value breaks the cache invariant silently, as no
// consistency check is performed.
func (c *CachedMatrix) SetInverse(inv matrix.Matrix) {
	v := inv
	c.inv = &v
}

// Inverse returns the cached inverse and whether one is present.
func (c *CachedMatrix) Inverse() (matrix.Matrix, bool) {
	if c.inv == nil {
		return matrix.Zero(), false
	}
	return *c.inv, true
}
