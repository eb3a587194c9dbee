package hillclimb

import (
	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/gridgraph"
)

// Manhattan estimates the remaining steps as |Δrow| + |Δcol|. Every move
// changes exactly one coordinate by one, so it never overestimates and is
// consistent.
func Manhattan(from, goal gridgraph.Position) int64 {
	return int64(from.Manhattan(goal))
}

// ZeroHeuristic disables guidance; the search then expands in BFS order.
var ZeroHeuristic astar.Heuristic[gridgraph.Position] = astar.Zero[gridgraph.Position]
