package solve

import (
	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/matcache/matcache/config"
	"github.com/ZanzyTHEbar/matcache/matcache/solve/adapters"
	ports "github.com/ZanzyTHEbar/matcache/matcache/solve/ports"
)

// Factory creates and wires solver components from configuration.
type Factory struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// NewFactory creates a new solver factory.
func NewFactory(cfg *config.Config, logger zerolog.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateSolver builds a Solver backed by the configured inversion adapter.
func (f *Factory) CreateSolver() *Solver {
	return NewSolver(f.createInverter(), f.logger)
}

func (f *Factory) createInverter() ports.Inverter {
	inverter := adapters.NewGonumInverter(f.cfg.Solver.ConditionTolerance)
	if f.cfg.Solver.Instrument {
		return adapters.NewInstrumentedInverter(inverter, f.logger)
	}
	return inverter
}
