package calculation

import (
	"github.com/rpgo/carlease-calculator/internal/domain"
)

// Engine runs lease vs buy projections. It holds configuration only; every
// call to Project is independent and safe to run concurrently.
type Engine struct {
	Perquisite domain.PerquisiteRates
	Logger     Logger
}

// NewEngine creates an engine with the statutory perquisite rates.
func NewEngine() *Engine {
	return &Engine{
		Perquisite: domain.DefaultPerquisiteRates(),
		Logger:     NopLogger{},
	}
}

// NewEngineWithConfig creates an engine using the perquisite rates of a scenario file.
func NewEngineWithConfig(cfg *domain.Configuration) *Engine {
	e := NewEngine()
	if cfg != nil {
		e.Perquisite = cfg.PerquisiteRates()
	}
	return e
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) log() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// RunConfiguration projects a loaded scenario file with its own slabs.
func (e *Engine) RunConfiguration(cfg *domain.Configuration) domain.ProjectionResult {
	e.log().Infof("running scenario %q", cfg.Name)
	return e.Project(cfg.Input, cfg.SlabTable())
}
