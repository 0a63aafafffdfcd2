package router

import (
	"runtime"

	"github.com/rs/zerolog"
	"github.com/acorn-eda/acorn/pathfinder"
)

// config is the resolved set of router options, built the same
// functional-options way pathfinder.config is (see pathfinder/options.go):
// a zero-value-safe struct plus an ordered slice of overriding closures.
type config struct {
	maxIterations            int
	drcFreeThreshold          int
	preEvaporationIterations int
	evaporationRate          float64
	costs                    pathfinder.Costs
	congestion               pathfinder.CongestionMultipliers
	workers                  int
	log                      zerolog.Logger
	cellSizeMM               float64
}

// Option configures a Context at construction time.
type Option func(*config)

func defaultConfig() config {
	return config{
		maxIterations:            2000,
		drcFreeThreshold:         10,
		preEvaporationIterations: 2,
		evaporationRate:          0.10,
		costs:                    pathfinder.DefaultCosts(),
		congestion:               pathfinder.DefaultCongestionMultipliers(),
		workers:                  runtime.GOMAXPROCS(0),
		log:                      zerolog.Nop(),
		cellSizeMM:               1,
	}
}

// WithMaxIterations overrides the hard iteration cap (spec.md section 4.8).
func WithMaxIterations(n int) Option {
	return func(cfg *config) { cfg.maxIterations = n }
}

// WithDRCFreeThreshold sets how many DRC-clean iterations in total (not
// necessarily consecutive) stop the run early.
func WithDRCFreeThreshold(n int) Option {
	return func(cfg *config) { cfg.drcFreeThreshold = n }
}

// WithPreEvaporationIterations sets how many leading iterations run
// without evaporating congestion, letting initial deposits accumulate
// before decay kicks in.
func WithPreEvaporationIterations(n int) Option {
	return func(cfg *config) { cfg.preEvaporationIterations = n }
}

// WithEvaporationRate overrides the fraction of congestion evaporated per
// iteration (spec.md section 4.4).
func WithEvaporationRate(rate float64) Option {
	return func(cfg *config) { cfg.evaporationRate = rate }
}

// WithCosts overrides the base move costs every net's FindPath call uses.
func WithCosts(c pathfinder.Costs) Option {
	return func(cfg *config) { cfg.costs = c }
}

// WithCongestionMultipliers overrides the congestion penalty scale factors.
func WithCongestionMultipliers(m pathfinder.CongestionMultipliers) Option {
	return func(cfg *config) { cfg.congestion = m }
}

// WithWorkers overrides the goroutine fan-out width for per-iteration
// parallel net routing. n <= 0 falls back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		cfg.workers = n
	}
}

// WithLogger overrides the zerolog.Logger the router emits per-iteration
// structured events to. The default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(cfg *config) { cfg.log = log }
}

// WithCellSizeMM sets the physical cell pitch used to convert cell-count
// path lengths into millimeters for metrics reporting.
func WithCellSizeMM(mm float64) Option {
	return func(cfg *config) { cfg.cellSizeMM = mm }
}
