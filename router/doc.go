// Package router implements the per-iteration routing orchestration of
// spec.md section 4.7 (component C8) and the dynamic algorithm control of
// section 4.8: evaporate congestion, clear transient cell bits, route
// every net in parallel, synthesize diff-pair shoulders for pseudo-nets,
// expand sparse paths to dense steps and deposit fresh congestion along
// them, flood near-net markers, scan for design-rule violations, update
// the rolling metrics, decide whether the routing state has plateaued,
// and choose at most one adaptive action, which is recorded in the
// iteration's metrics. A chosen action does not change how later
// iterations route (the sensitivity ladder moving its own rung is the
// only state it touches).
//
// The outer loop is grounded on the teacher's flow package (flow/dinic.go):
// a context-aware loop that repeats phased sub-algorithms against shared
// mutable state until a stopping condition fires. Parallel net routing is
// grounded on the teacher's core package's goroutine-fan-out-plus-
// sync.WaitGroup concurrency tests (core/concurrency_test.go). Structured
// per-iteration logging uses zerolog, a dependency the teacher's
// pure-algorithms domain never needed (see SPEC_FULL.md's AMBIENT STACK).
package router
