// Package astar implements best-first (A*) shortest-path search over an
// implicit graph of comparable nodes.
//
// The graph is never stored: a SuccessorFunc generates the neighbours of a
// node on demand, together with the non-negative cost of each step. A Heuristic
// estimates the remaining cost to the goal; with an admissible and consistent
// heuristic the first time the goal is popped its cost is optimal.
//
// Node states:
//
//   - Unvisited → Frontier: first reached by any path.
//   - Frontier → Frontier: a strictly cheaper path is found before expansion.
//   - Frontier → Finalized: popped as the minimum-priority entry.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries).
//
// Notes on implementation choices:
//
//   - Priority is g + h. Entries with equal priority pop in insertion order,
//     so results are deterministic for a deterministic SuccessorFunc.
//   - Improved entries are pushed again; stale entries are skipped when popped.
//   - A nil Heuristic behaves like Zero, which turns the search into
//     uniform-cost search (plain BFS order on unit-cost graphs).
//
// Errors (sentinel):
//
//   - ErrPathNotFound   if the frontier empties before reaching the goal.
//   - ErrNilSuccessors  if no SuccessorFunc is supplied.
//   - ErrNegativeCost   if a successor reports a negative step cost.
//   - ErrBadMaxCost     if WithMaxCost is given a negative cap.
package astar
