package router

import "errors"

var (
	// ErrNoNets is returned by New when called with an empty net registry.
	ErrNoNets = errors.New("router: no nets registered")

	// ErrUnknownDesignRuleSet mirrors pathfinder's sentinel for cells
	// whose design-rule set has no catalogue entry, surfaced here when
	// the router itself (not a sub-package call) walks the grid.
	ErrUnknownDesignRuleSet = errors.New("router: cell references an unconfigured design-rule set")
)
