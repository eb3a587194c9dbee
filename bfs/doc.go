// Package bfs provides breadth-first search over an implicit graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Neighbours are generated on demand by a NeighborFunc; no graph is stored.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error, or stop early with ErrStop)
//   - Allows filtering of individual neighbour edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unweighted shortest paths in O(V + E) time.
//   - A reference answer for informed searches on unit-cost graphs.
//   - Multi-target sweeps: one traversal from a goal over reversed edges
//     answers “nearest start of a given kind” in a single pass.
//
// Determinism
//
//	Neighbours are enqueued in the order the NeighborFunc returns them, so
//	the visit sequence is reproducible for a deterministic NeighborFunc.
package bfs
