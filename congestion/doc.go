// Package congestion implements the per-cell congestion store (section 3)
// and the deposit/evaporate cycle (sections 4.4 and 4.6) that drives
// Acorn's pathfinder-negotiated-congestion router: every completed path
// deposits a traversal weight around its centerline, every iteration
// evaporates a fraction of what is already there, and the pathfinder's
// cost function reads the accumulated totals back as a penalty.
//
// The store itself lives on gridmodel.Cell as a CongestionList; this
// package supplies the two operations that read and write it in bulk.
// Evaporation mirrors the context-carrying, worker-sharded iteration loop
// lvlath's flow package uses for its Dinic phases: one parallel pass in
// which each shard decays and then compacts only its own cells, so no
// synchronization is needed between shards.
package congestion
