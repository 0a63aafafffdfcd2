package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDRCWindowCleanFractionBeforeAnyRecord(t *testing.T) {
	w := NewDRCWindow()
	assert.Equal(t, 1.0, w.CleanFraction())
}

func TestDRCWindowCleanFractionTracksHistory(t *testing.T) {
	w := NewDRCWindow()
	w.Record(true)
	w.Record(false)
	w.Record(false)
	assert.InDelta(t, 2.0/3.0, w.CleanFraction(), 1e-9)
	assert.False(t, w.ConsistentlyDRCAffected())
}

func TestDRCWindowConsistentlyDRCAffectedRequiresFullWindow(t *testing.T) {
	w := NewDRCWindow()
	for i := 0; i < ReEquilibrateWindow; i++ {
		w.Record(true)
	}
	assert.True(t, w.ConsistentlyDRCAffected())
	assert.Zero(t, w.CleanFraction())
}

func TestDRCWindowEvictsOldestEntry(t *testing.T) {
	w := NewDRCWindow()
	for i := 0; i < ReEquilibrateWindow; i++ {
		w.Record(true)
	}
	w.Record(false) // evicts the first "true", window is no longer all-true
	assert.False(t, w.ConsistentlyDRCAffected())
}
