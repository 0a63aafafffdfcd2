package pathfinder

import "errors"

// Sentinel errors returned by FindPath. Per spec.md section 4.1, "illegal
// input coordinates are fatal" — these are the fatal-configuration class,
// distinct from the non-fatal "unreachable" outcome (an empty Result with
// no error).
var (
	// ErrStartOutOfBounds is returned when the start coordinate lies
	// outside the grid.
	ErrStartOutOfBounds = errors.New("pathfinder: start coordinate out of bounds")

	// ErrEndOutOfBounds is returned when the end coordinate lies outside
	// the grid.
	ErrEndOutOfBounds = errors.New("pathfinder: end coordinate out of bounds")

	// ErrStartNotWalkable is returned when the start cell is itself a hard
	// barrier for the routed subset's trace shape.
	ErrStartNotWalkable = errors.New("pathfinder: start cell is not walkable")

	// ErrEndNotWalkable is returned when the end cell is itself a hard
	// barrier for the routed subset's trace shape.
	ErrEndNotWalkable = errors.New("pathfinder: end cell is not walkable")

	// ErrUnknownDesignRuleSet is returned when a cell references a
	// design-rule set absent from the supplied catalogue.
	ErrUnknownDesignRuleSet = errors.New("pathfinder: cell references an unconfigured design-rule set")
)
