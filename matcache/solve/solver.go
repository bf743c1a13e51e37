// Package solve implements the cache-or-compute policy over a CachedMatrix:
// return the cached inverse when present, otherwise invoke the inversion
// collaborator and store the result back into the container.
package solve

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/matcache/matcache/cache"
	"github.com/ZanzyTHEbar/matcache/matcache/matrix"
	ports "github.com/ZanzyTHEbar/matcache/matcache/solve/ports"
)

// ErrNoMatrix is returned when CacheSolve is invoked on a container whose
// matrix was never set past the placeholder.
var ErrNoMatrix = errors.New("solve: no matrix set on container")

// Solver resolves a container's inverse, hitting the cache when possible.
// Not safe for concurrent use against a shared container.
type Solver struct {
	inverter ports.Inverter
	logger   zerolog.Logger
}

// NewSolver creates a solver backed by the given inversion collaborator.
func NewSolver(inverter ports.Inverter, logger zerolog.Logger) *Solver {
	return &Solver{
		inverter: inverter,
		logger:   logger,
	}
}

// CacheSolve returns the inverse of the container's current matrix. A cached
// value is returned as-is with a diagnostic notification; otherwise the
// inverse is computed, stored back into the container, and returned.
// Collaborator failures are returned unchanged and leave the cache untouched,
// so the container stays usable for a fix-and-retry.
func (s *Solver) CacheSolve(c *cache.CachedMatrix) (matrix.Matrix, error) {
	if inv, ok := c.Inverse(); ok {
		s.logger.Info().
			Str("container_id", c.ID()).
			Msg("returning cached inverse")
		return inv, nil
	}

	m := c.Matrix()
	if m.IsEmpty() {
		return matrix.Zero(), ErrNoMatrix
	}

	rows, cols := m.Dims()
	s.logger.Debug().
		Str("container_id", c.ID()).
		Int("rows", rows).
		Int("cols", cols).
		Msg("cache miss, computing inverse")

	inv, err := s.inverter.Invert(m)
	if err != nil {
		return matrix.Zero(), err
	}

	c.SetInverse(inv)
	return inv, nil
}
