package gridmodel

import "github.com/acorn-eda/acorn/designrule"

// MarkPathCenter records that pathNum's centerline (for the given shape
// type) passes through c, for use by the DRC scan and nearnet marking.
// The subset field of the underlying small-vector entry is unused here
// (always 0) since path-center membership does not depend on subset.
func (c *Cell) MarkPathCenter(pathNum int, shape designrule.ShapeType) error {
	return c.PathCenters.Add(pathNum, 0, shape, 1)
}

// PathCenterPaths returns every (pathNum, shapeType) pair currently
// marked as centering on c.
func (c *Cell) PathCenterPaths() []PathCenterEntry {
	out := make([]PathCenterEntry, 0, c.PathCenters.Len())
	c.PathCenters.ForEach(func(e CongestionEntry) {
		out = append(out, PathCenterEntry{PathNum: e.PathNum, ShapeType: e.ShapeType})
	})

	return out
}

// HasForeignPathCenter reports whether any path other than excludePath
// centers on c.
func (c *Cell) HasForeignPathCenter(excludePath int) bool {
	found := false
	c.PathCenters.ForEach(func(e CongestionEntry) {
		if e.PathNum != excludePath {
			found = true
		}
	})

	return found
}
