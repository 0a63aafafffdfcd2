package router

import "github.com/acorn-eda/acorn/metrics"

// chooseAdaptiveAction applies spec.md section 4.8's "at most one
// mutually-exclusive adaptive action per detected plateau" rule. The
// candidates are tried in a fixed priority order: first see whether
// nudging the congestion-sensitivity ladder finds a strictly better
// neighboring rung, then whether any net has consistently carried DRCs
// long enough to warrant a terminal swap, then whether enabling
// pseudo-via congestion or randomizing congestion is the remaining lever.
// The chosen action is returned for the iteration's metrics and is not
// carried out: apart from Adjust moving the sensitivity ladder's rung,
// nothing here changes the nets' terminals, the congestion multipliers or
// the jitter that later iterations route with.
func (rc *Context) chooseAdaptiveAction(it metrics.Iteration) metrics.AdaptiveAction {
	if !it.Plateaued {
		return metrics.NoAction
	}

	netsWithDRCs := 0
	for _, pm := range it.PerPath {
		if pm.DRCCount > 0 {
			netsWithDRCs++
		}
	}
	drcFree := 1.0
	if len(it.PerPath) > 0 {
		drcFree = 1.0 - float64(netsWithDRCs)/float64(len(it.PerPath))
	}
	rc.sensitivity.Record(drcFree, netsWithDRCs, it.Cost.NonPseudo)

	if moved, _ := rc.sensitivity.Adjust(); moved {
		return metrics.AdjustSensitivity
	}

	for _, n := range rc.nets {
		if rc.drcWindows[n.PathNum].ConsistentlyDRCAffected() {
			return metrics.SwapTerminals
		}
	}

	for _, n := range rc.nets {
		if n.DiffPairPartnerSubset >= 0 {
			return metrics.EnablePseudoViaCongestion
		}
	}

	return metrics.RandomizeCongestion
}
