package metrics

import (
	"time"

	"github.com/acorn-eda/acorn/drc"
)

// AdaptiveAction names the single adaptive action (if any) the controller
// chose after a detected plateau (spec.md section 4.8: "mutually
// exclusive per plateau event"). The router records the choice; only
// AdjustSensitivity changes any state (the sensitivity ladder's rung).
type AdaptiveAction int

const (
	// NoAction means no plateau was detected; a plateaued iteration always
	// gets one of the actions below.
	NoAction AdaptiveAction = iota
	// SwapTerminals names swapping start/end on consistently DRC-affected paths.
	SwapTerminals
	// AdjustSensitivity means the congestion-sensitivity ladder moved a rung.
	AdjustSensitivity
	// EnablePseudoViaCongestion names extra congestion on crowded pseudo-via cells.
	EnablePseudoViaCongestion
	// RandomizeCongestion names a per-path INCREASE/DECREASE jitter regime.
	RandomizeCongestion
)

// String names the action for logging.
func (a AdaptiveAction) String() string {
	switch a {
	case SwapTerminals:
		return "swap_terminals"
	case AdjustSensitivity:
		return "adjust_sensitivity"
	case EnablePseudoViaCongestion:
		return "enable_pseudo_via_congestion"
	case RandomizeCongestion:
		return "randomize_congestion"
	default:
		return "none"
	}
}

// CostBreakdown splits a cost or length total into pseudo-net and
// non-pseudo-net components plus their sum, per spec.md section 6's
// output contract ("total cost (pseudo, non-pseudo, combined)").
type CostBreakdown struct {
	Pseudo    float64
	NonPseudo float64
}

// Combined returns Pseudo + NonPseudo.
func (c CostBreakdown) Combined() float64 {
	return c.Pseudo + c.NonPseudo
}

// PathMetrics is one path's per-iteration cost/vias/length/DRC tally.
type PathMetrics struct {
	Cost     float64
	Vias     int
	LengthMM float64
	DRCCount int
}

// Iteration is the full per-iteration metrics vector spec.md section 6
// describes as RoutingMetrics' per-iteration contribution.
type Iteration struct {
	Number int

	Cost          CostBreakdown
	LateralLength CostBreakdown // in mm
	TotalVias     int

	PerPath       map[int]PathMetrics
	PerLayerDRC   []int
	DetailedDRCs  []drc.Violation

	Elapsed       time.Duration
	ExploredCells int

	Plateaued      bool
	AdaptiveAction AdaptiveAction
}

// TotalDRCs sums PerLayerDRC, the iteration's total violation count.
func (it Iteration) TotalDRCs() int {
	total := 0
	for _, n := range it.PerLayerDRC {
		total += n
	}

	return total
}

// Store accumulates every iteration's metrics plus "best iteration"
// bookkeeping: the iteration with the lowest TotalDRCs, ties broken by
// lowest combined routing cost. TotalDRCs includes violations of
// pseudo-net paths; they are not excluded from the comparison.
type Store struct {
	History []Iteration
	best    int // index into History, -1 if empty
}

// NewStore returns an empty metrics store.
func NewStore() *Store {
	return &Store{best: -1}
}

// Add appends an iteration's metrics and updates the best-iteration
// tracker if it improves on the current best.
func (s *Store) Add(it Iteration) {
	s.History = append(s.History, it)
	idx := len(s.History) - 1

	if s.best < 0 || s.isBetter(it, s.History[s.best]) {
		s.best = idx
	}
}

func (s *Store) isBetter(candidate, current Iteration) bool {
	candidateDRCs := candidate.TotalDRCs()
	currentDRCs := current.TotalDRCs()
	if candidateDRCs != currentDRCs {
		return candidateDRCs < currentDRCs
	}

	return candidate.Cost.Combined() < current.Cost.Combined()
}

// Best returns the best-so-far iteration and true, or the zero value and
// false if no iteration has been recorded yet.
func (s *Store) Best() (Iteration, bool) {
	if s.best < 0 {
		return Iteration{}, false
	}

	return s.History[s.best], true
}

// BestIndex returns the 0-based index (into History) of the best
// iteration recorded, or -1 if none.
func (s *Store) BestIndex() int {
	return s.best
}

// Latest returns the most recently recorded iteration and true, or the
// zero value and false if empty.
func (s *Store) Latest() (Iteration, bool) {
	if len(s.History) == 0 {
		return Iteration{}, false
	}

	return s.History[len(s.History)-1], true
}

// DRCFreeCount returns how many recorded iterations had zero total DRCs,
// the quantity spec.md section 4.7 step 11 compares against
// userDRCfreeThreshold to decide whether to stop.
func (s *Store) DRCFreeCount() int {
	count := 0
	for _, it := range s.History {
		if it.TotalDRCs() == 0 {
			count++
		}
	}

	return count
}
