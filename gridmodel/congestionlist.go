package gridmodel

import "github.com/acorn-eda/acorn/designrule"

// inlineCongestionCap is the number of congestion entries a Cell can hold
// without an overflow allocation. Most cells in a sparsely-congested grid
// carry zero to a handful of entries (spec.md section 9's "per-cell
// small-vector with inline capacity" design note); four keeps Cell small
// while covering the common case of a few overlapping nets.
const inlineCongestionCap = 4

// MaxTraversalCount is the saturation value for a single congestion
// entry's traversal count (24 bits, per the external wire contract in
// spec.md section 6). Deposits that would overflow this cap saturate
// instead, per the capacity error-handling rule in spec.md section 7.
const MaxTraversalCount = 1<<24 - 1

// MaxTraversingPaths is the invariant bound on the number of distinct
// (path, subset, shapeType) entries a single cell's congestion list may
// hold (spec.md section 3).
const MaxTraversingPaths = 4095

// CongestionEntry is one (path, subset, shape-type) -> traversal-count
// record. Traversals is stored in hundredths of a traversal (spec.md's
// "traversals x100"), so one full traversal is Traversals == 100.
type CongestionEntry struct {
	PathNum    int
	Subset     int
	ShapeType  designrule.ShapeType
	Traversals int32
}

func (e CongestionEntry) key() congestionKey {
	return congestionKey{pathNum: e.PathNum, subset: e.Subset, shapeType: e.ShapeType}
}

type congestionKey struct {
	pathNum   int
	subset    int
	shapeType designrule.ShapeType
}

// CongestionList is a small-vector of CongestionEntry values, holding at
// most one entry per (path, subset, shapeType) triple — the invariant
// from spec.md section 3. The first inlineCongestionCap entries live
// inline; anything beyond that spills into an overflow slice.
type CongestionList struct {
	inline    [inlineCongestionCap]CongestionEntry
	inlineLen int
	overflow  []CongestionEntry
}

// Len returns the number of distinct (path, subset, shapeType) entries.
func (l *CongestionList) Len() int {
	return l.inlineLen + len(l.overflow)
}

// find returns a pointer to the entry matching key, or nil if the list
// has no such entry.
func (l *CongestionList) find(k congestionKey) *CongestionEntry {
	for i := 0; i < l.inlineLen; i++ {
		if l.inline[i].key() == k {
			return &l.inline[i]
		}
	}
	for i := range l.overflow {
		if l.overflow[i].key() == k {
			return &l.overflow[i]
		}
	}

	return nil
}

// Get returns the entry at position i (0-indexed across inline+overflow),
// for iteration.
func (l *CongestionList) Get(i int) CongestionEntry {
	if i < l.inlineLen {
		return l.inline[i]
	}

	return l.overflow[i-l.inlineLen]
}

// ForEach visits every entry in the list.
func (l *CongestionList) ForEach(fn func(CongestionEntry)) {
	for i := 0; i < l.inlineLen; i++ {
		fn(l.inline[i])
	}
	for i := range l.overflow {
		fn(l.overflow[i])
	}
}

// Add increases the traversal count for (pathNum, subset, shapeType) by
// amount, saturating at MaxTraversalCount, creating a new entry if one
// does not exist. Returns ErrTooManyTraversingPaths if the cell is
// already at MaxTraversingPaths and the (path, subset, shapeType) triple
// is new.
func (l *CongestionList) Add(pathNum, subset int, shapeType designrule.ShapeType, amount int32) error {
	k := congestionKey{pathNum: pathNum, subset: subset, shapeType: shapeType}
	if e := l.find(k); e != nil {
		e.Traversals = saturatingAdd(e.Traversals, amount)

		return nil
	}

	if l.Len() >= MaxTraversingPaths {
		return ErrTooManyTraversingPaths
	}

	entry := CongestionEntry{PathNum: pathNum, Subset: subset, ShapeType: shapeType, Traversals: saturatingAdd(0, amount)}
	if l.inlineLen < inlineCongestionCap {
		l.inline[l.inlineLen] = entry
		l.inlineLen++

		return nil
	}
	l.overflow = append(l.overflow, entry)

	return nil
}

// Decay multiplies every entry's traversal count by (1 - rate), rate in
// [0,1], truncating to an integer — the evaporation rule from spec.md
// section 4.4. Entries whose PathNum equals excludedPath are skipped;
// Evaporate passes the universal repellent's path number (-1), which is
// exempt from evaporation.
func (l *CongestionList) Decay(rate float64, excludedPath int) {
	decayOne := func(e *CongestionEntry) {
		if e.PathNum == excludedPath {
			return
		}
		e.Traversals = int32(float64(e.Traversals) * (1 - rate))
	}
	for i := 0; i < l.inlineLen; i++ {
		decayOne(&l.inline[i])
	}
	for i := range l.overflow {
		decayOne(&l.overflow[i])
	}
}

// Compact removes every entry whose traversal count has reached zero,
// releasing the overflow slice entirely if it becomes empty — the
// compaction step spec.md section 4.4 requires after evaporation.
// Compact rebuilds the inline array first, then the overflow slice, so
// entries never leave gaps.
func (l *CongestionList) Compact() {
	kept := make([]CongestionEntry, 0, l.Len())
	l.ForEach(func(e CongestionEntry) {
		if e.Traversals > 0 {
			kept = append(kept, e)
		}
	})

	l.inlineLen = 0
	l.overflow = nil
	for _, e := range kept {
		if l.inlineLen < inlineCongestionCap {
			l.inline[l.inlineLen] = e
			l.inlineLen++

			continue
		}
		l.overflow = append(l.overflow, e)
	}
}

func saturatingAdd(cur, delta int32) int32 {
	sum := int64(cur) + int64(delta)
	if sum > MaxTraversalCount {
		return MaxTraversalCount
	}
	if sum < 0 {
		return 0
	}

	return int32(sum)
}
