package adapters

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/matcache/matcache/matrix"
	ports "github.com/ZanzyTHEbar/matcache/matcache/solve/ports"
)

// InstrumentedInverter decorates an Inverter with an invocation counter and
// per-call logging, making cache misses observable from the outside.
type InstrumentedInverter struct {
	inner  ports.Inverter
	logger zerolog.Logger
	calls  atomic.Int64
}

// NewInstrumentedInverter wraps inner with call counting and logging.
func NewInstrumentedInverter(inner ports.Inverter, logger zerolog.Logger) *InstrumentedInverter {
	return &InstrumentedInverter{
		inner:  inner,
		logger: logger,
	}
}

// Invert delegates to the wrapped inverter, counting the invocation.
func (iv *InstrumentedInverter) Invert(m matrix.Matrix) (matrix.Matrix, error) {
	call := iv.calls.Add(1)
	r, c := m.Dims()
	start := time.Now()

	inv, err := iv.inner.Invert(m)

	event := iv.logger.Debug()
	if err != nil {
		event = iv.logger.Error().Err(err)
	}
	event.
		Int64("call", call).
		Int("rows", r).
		Int("cols", c).
		Dur("elapsed", time.Since(start)).
		Msg("inverter invoked")

	return inv, err
}

// Calls reports how many times the wrapped inverter has been invoked.
func (iv *InstrumentedInverter) Calls() int64 {
	return iv.calls.Load()
}

// Ensure InstrumentedInverter implements the Inverter interface.
var _ ports.Inverter = (*InstrumentedInverter)(nil)
