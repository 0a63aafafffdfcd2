package pathfinder

// Costs bundles the base move costs FindPath multiplies by the
// destination cell's cost-zone multiplier (spec.md section 4.1). Units
// are arbitrary but must satisfy Diag > sqrt(2)*Cell and Knight >
// sqrt(5)*Cell for the heuristic to stay admissible (spec.md section 8).
type Costs struct {
	Cell   float64
	Diag   float64
	Knight float64
	Vert   float64
}

// DefaultCosts returns cost constants satisfying the admissibility
// inequalities with headroom.
func DefaultCosts() Costs {
	return Costs{Cell: 10, Diag: 15, Knight: 23, Vert: 10}
}

// CongestionMultipliers scales negotiated-congestion penalties by move
// shape, plus the extra scale factor diff-pair partner congestion gets on
// via moves versus trace moves (spec.md section 4.1).
type CongestionMultipliers struct {
	Trace             float64
	Via               float64
	DiffPairViaScale  float64
	DiffPairTraceScale float64
}

// DefaultCongestionMultipliers matches the literal scale factors named in
// spec.md section 4.1 (16x on vias, 1x on traces, for diff-pair partner
// congestion).
func DefaultCongestionMultipliers() CongestionMultipliers {
	return CongestionMultipliers{Trace: 1, Via: 1, DiffPairViaScale: 16, DiffPairTraceScale: 1}
}

// RoutingRestriction bounds the search to RadiusCells around a pivot
// point on AllowedLayers (every layer when empty), silently skipping any
// candidate outside it (spec.md section 4.1's "routing restriction").
// The same radius applies on every allowed layer; a separate radius per
// layer is not supported.
type RoutingRestriction struct {
	AllowedLayers []int
	PivotX, PivotY int
	RadiusCells    float64
}

func (r *RoutingRestriction) allows(x, y, z int) bool {
	if r == nil {
		return true
	}
	if len(r.AllowedLayers) > 0 {
		ok := false
		for _, l := range r.AllowedLayers {
			if l == z {
				ok = true

				break
			}
		}
		if !ok {
			return false
		}
	}
	dx, dy := float64(x-r.PivotX), float64(y-r.PivotY)

	return dx*dx+dy*dy <= r.RadiusCells*r.RadiusCells
}

// config is the resolved set of FindPath options, built from the
// teacher's DefaultOptions-plus-functional-overrides shape.
type config struct {
	costs                 Costs
	congestion            CongestionMultipliers
	costMultipliers       map[int]float64 // cost-zone index -> multiplier, shared across trace/viaUp/viaDown tables
	dijkstra              bool
	recognizeSelf         bool
	diffPairPartnerSubset int // -1 means "not a diff-pair move"
	pathDRCFraction       float64
	mapDRCFraction        float64
	randomCongestionDelta func() float64
}

// Option configures a FindPath call.
type Option func(*config)

func defaultConfig() config {
	return config{
		costs:                 DefaultCosts(),
		congestion:            DefaultCongestionMultipliers(),
		diffPairPartnerSubset: -1,
		pathDRCFraction:       1,
		mapDRCFraction:        1,
	}
}

// WithCosts overrides the base move costs.
func WithCosts(c Costs) Option {
	return func(cfg *config) { cfg.costs = c }
}

// WithCongestionMultipliers overrides the congestion penalty scale factors.
func WithCongestionMultipliers(m CongestionMultipliers) Option {
	return func(cfg *config) { cfg.congestion = m }
}

// WithCostMultiplierTable supplies the cost-zone overlay lookup: cell
// index -> multiplier, shared by TraceCostMultiplierIndex,
// ViaUpCostMultiplierIndex, and ViaDownCostMultiplierIndex (spec.md
// section 4.1's "multiplier-at-c"). An index absent from the table
// multiplies by 1 (no zone).
func WithCostMultiplierTable(table map[int]float64) Option {
	return func(cfg *config) { cfg.costMultipliers = table }
}

// Dijkstra forces H == 0 for every cell, degenerating the search to plain
// Dijkstra (spec.md section 4.1's "Dijkstra mode").
func Dijkstra() Option {
	return func(cfg *config) { cfg.dijkstra = true }
}

// WithRecognizeSelfCongestion includes the routed path's own prior
// deposits in the congestion penalty (a subset-level toggle, spec.md
// section 4.1's "self-congestion may be optionally recognized").
func WithRecognizeSelfCongestion() Option {
	return func(cfg *config) { cfg.recognizeSelf = true }
}

// WithDiffPairPartnerSubset marks this call as routing a diff-pair
// partner (or pseudo-net), so foreign congestion entries belonging to
// partnerSubset receive the diff-pair via/trace scale factors.
func WithDiffPairPartnerSubset(partnerSubset int) Option {
	return func(cfg *config) { cfg.diffPairPartnerSubset = partnerSubset }
}

// WithDRCFractions scales H down by the path's and the map's recent
// fraction of DRC-clean iterations (spec.md section 4.1: paths with
// recent DRC trouble explore more broadly). Both fractions are expected
// in [0,1]; 1 means "no recent trouble, stay greedy".
func WithDRCFractions(pathFraction, mapFraction float64) Option {
	return func(cfg *config) {
		cfg.pathDRCFraction = pathFraction
		cfg.mapDRCFraction = mapFraction
	}
}

// WithRandomCongestionDelta injects the per-iteration randomized
// congestion jitter (spec.md section 4.8's INCREASE/DECREASE regimes).
// The function is called once per evaluated congestion entry; nil (the
// default) disables jitter entirely so routing stays deterministic.
func WithRandomCongestionDelta(fn func() float64) Option {
	return func(cfg *config) { cfg.randomCongestionDelta = fn }
}

func (cfg *config) multiplierAt(index int) float64 {
	if cfg.costMultipliers == nil {
		return 1
	}
	if m, ok := cfg.costMultipliers[index]; ok {
		return m
	}

	return 1
}
