package designrule

// PinSwapCostShift is the exponent in the pin-swap cost substitution
// described by spec.md section 4.1: inside a pin-swap zone, FindPath
// divides a move's cost and the heuristic by 2^PinSwapCostShift, making
// in-zone routing effectively free relative to routing outside it. original_source/src/aStarLibrary.c names this
// constant explicitly rather than leaving it an unnamed "very low cost",
// so Acorn keeps it as a named constant (see SPEC_FULL.md "SUPPLEMENTED
// FEATURES").
const PinSwapCostShift = 30

// PinSwapCostRatio is 2^PinSwapCostShift, the divisor FindPath applies to
// move costs and the heuristic inside a pin-swap zone.
const PinSwapCostRatio = 1 << PinSwapCostShift
