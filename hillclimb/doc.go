// Package hillclimb finds the fewest steps needed to climb a gridgraph.HeightMap
// from a start cell to its end marker.
//
// Climbing rule:
//
//   - Moves are orthogonal only (N, E, S, W), each costing exactly 1.
//   - A move may climb at most one level: elev(to) ≤ elev(from)+1.
//   - Descents of any size are allowed.
//   - The end marker always counts as elevation 25 for incoming moves.
//
// Operations:
//
//   - ShortestPath: one search from a given start to the end.
//   - ShortestPathFromAnyLowPoint: the best cost over every elevation-0 cell
//     (start markers included). Unreachable candidates are dropped silently.
//   - Route: like ShortestPath, but also returns the route and search stats.
//
// Search is A* (package astar) with the Manhattan distance to the end as its
// heuristic; WithHeuristic(ZeroHeuristic) turns it into uniform-cost search.
// The multi-source variant either runs independent searches on a bounded pool
// of goroutines (PerSource) or a single reverse breadth-first sweep from the
// end (ReverseSweep). Both return the same cost.
package hillclimb
