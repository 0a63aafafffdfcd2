package diffpair

import "errors"

var (
	// ErrLayerMismatch is returned when a diff-pair's two physical nets
	// sit on different layers at a point where a shared pseudo-net vertex
	// is being synthesized.
	ErrLayerMismatch = errors.New("diffpair: paired terminals are not on the same layer")

	// ErrShoulderInfeasible is returned when no legal pair of shoulder
	// points can be found for a pseudo-path vertex, even after the bounded
	// symmetric-shift search.
	ErrShoulderInfeasible = errors.New("diffpair: no legal shoulder offset found")

	// ErrViaPlacementInfeasible is returned when no legal substitute via
	// position can be found for both diff-pair vias within the bounded
	// radial search.
	ErrViaPlacementInfeasible = errors.New("diffpair: no legal via position found")

	// ErrNoLayerTransition is returned when a shoulder path has no segment
	// matching the pseudo-path's layer transition, even after the
	// start-layer-only and end-layer-only fallbacks.
	ErrNoLayerTransition = errors.New("diffpair: no matching layer transition in shoulder path")

	// ErrEmptyPseudoPath is returned when shoulder projection is asked to
	// run over a pseudo-path with fewer than two vertices.
	ErrEmptyPseudoPath = errors.New("diffpair: pseudo-path has fewer than two vertices")
)
