package metrics

// SensitivityLevels is the fixed ladder of 11 congestion-multiplier
// percentages spec.md section 4.8 names literally: {100, 141, 200, 283,
// 400, 566, 800, 1131, 1600, 2263, 3200}.
var SensitivityLevels = [11]int{100, 141, 200, 283, 400, 566, 800, 1131, 1600, 2263, 3200}

// levelStats is the running-average bundle one sensitivity level
// accumulates across every iteration the controller spent at that level:
// the DRC-free fraction, the average count of nets carrying a DRC, and
// the average non-pseudo routing cost.
type levelStats struct {
	samples         int
	sumDRCFree      float64
	sumNetsWithDRCs float64
	sumCost         float64
}

func (s levelStats) avgDRCFree() float64 {
	if s.samples == 0 {
		return 0
	}

	return s.sumDRCFree / float64(s.samples)
}

func (s levelStats) avgNetsWithDRCs() float64 {
	if s.samples == 0 {
		return 0
	}

	return s.sumNetsWithDRCs / float64(s.samples)
}

func (s levelStats) avgCost() float64 {
	if s.samples == 0 {
		return 0
	}

	return s.sumCost / float64(s.samples)
}

// SensitivityLadder tracks the controller's current rung on
// SensitivityLevels and the running-average metrics observed at every
// rung visited so far, per spec.md section 4.8: "the controller climbs
// or descends the ladder based on which level shows the better metrics."
type SensitivityLadder struct {
	index int // current position into SensitivityLevels
	stats [len(SensitivityLevels)]levelStats
}

// NewSensitivityLadder starts the ladder at its base rung (multiplier 100%).
func NewSensitivityLadder() *SensitivityLadder {
	return &SensitivityLadder{}
}

// Current returns the active multiplier percentage.
func (l *SensitivityLadder) Current() int {
	return SensitivityLevels[l.index]
}

// CurrentIndex returns the active rung's index into SensitivityLevels.
func (l *SensitivityLadder) CurrentIndex() int {
	return l.index
}

// Record accumulates one iteration's observed metrics against the
// current rung.
func (l *SensitivityLadder) Record(drcFreeFraction float64, netsWithDRCs int, nonPseudoCost float64) {
	s := &l.stats[l.index]
	s.samples++
	s.sumDRCFree += drcFreeFraction
	s.sumNetsWithDRCs += float64(netsWithDRCs)
	s.sumCost += nonPseudoCost
}

// betterThan reports whether a's running averages are preferable to b's:
// higher DRC-free fraction wins; ties broken by fewer nets with DRCs;
// further ties broken by lower routing cost.
func (a levelStats) betterThan(b levelStats) bool {
	if a.avgDRCFree() != b.avgDRCFree() {
		return a.avgDRCFree() > b.avgDRCFree()
	}
	if a.avgNetsWithDRCs() != b.avgNetsWithDRCs() {
		return a.avgNetsWithDRCs() < b.avgNetsWithDRCs()
	}

	return a.avgCost() < b.avgCost()
}

// Adjust compares the current rung's running averages against its
// immediate neighbors and moves one step toward whichever neighbor shows
// better metrics, per spec.md section 4.8. It is a no-op (and reports
// false) if the current rung already beats both neighbors, or if a
// candidate neighbor has no samples yet (the controller has never tried
// it, so there is nothing to compare against).
func (l *SensitivityLadder) Adjust() (moved bool, newIndex int) {
	cur := l.stats[l.index]

	tryMove := func(candidate int) bool {
		if candidate < 0 || candidate >= len(SensitivityLevels) {
			return false
		}
		cand := l.stats[candidate]
		if cand.samples == 0 {
			return false
		}

		return cand.betterThan(cur)
	}

	if tryMove(l.index + 1) {
		l.index++

		return true, l.index
	}
	if tryMove(l.index - 1) {
		l.index--

		return true, l.index
	}

	return false, l.index
}
