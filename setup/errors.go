package setup

import "errors"

var (
	// ErrInvalidDimensions is returned when InputValues declares a
	// non-positive width, height, or layer count.
	ErrInvalidDimensions = errors.New("setup: grid dimensions must be positive")

	// ErrNilCatalogue is returned when InputValues carries no design-rule
	// catalogue to build from.
	ErrNilCatalogue = errors.New("setup: no design-rule catalogue configured")

	// ErrConflictingDesignRules is returned when two vertically adjacent
	// layers' design-rule sets disagree on the physical via diameter a
	// shared via barrel must have (spec.md section 7's "conflicting
	// design rules on adjacent layers" fatal configuration error).
	ErrConflictingDesignRules = errors.New("setup: conflicting design rules on adjacent layers")

	// ErrMissingDiffPairPartner is returned when a NetSpec names a
	// DiffPairPartner index that is out of range, or whose own
	// DiffPairPartner does not point back (spec.md section 7's "missing
	// diff-pair partner" fatal configuration error).
	ErrMissingDiffPairPartner = errors.New("setup: net names a missing or inconsistent diff-pair partner")

	// ErrTooManyNets is returned when InputValues declares more nets than
	// gridmodel.MaxTraversingPaths, the congestion entry's 12-bit path
	// number field can address (spec.md section 7's "numTraversingPaths
	// would exceed 4095" fatal capacity error).
	ErrTooManyNets = errors.New("setup: too many declared nets")
)
