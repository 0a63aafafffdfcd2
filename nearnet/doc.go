// Package nearnet implements the "near_a_net" marking pass of spec.md
// section 4.7 step 6: flood out from every path-centerline cell and flag
// every cell within the layer's max-interaction radius so C4's DRC scan
// only has to inspect a precomputed candidate set instead of every cell
// in the grid.
//
// The walker is adapted from the teacher's bfs package: the same
// queue-of-(coordinate, depth)-with-visited-set shape, with cancellation
// through Mark's context.Context argument, generalized from a single
// start vertex over a core.Graph to many simultaneous seed cells (every
// path-center) over a gridmodel.CellGrid, and bounded by hop count
// instead of running until the queue drains.
package nearnet
