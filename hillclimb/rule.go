package hillclimb

import (
	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/gridgraph"
)

// stepCost is the cost of every admissible move.
const stepCost = 1

// destinationElevation returns the elevation used when p is the target of a move.
//
// SPECIAL CASE, do not "simplify": the end marker is always evaluated as
// gridgraph.MaxElevation here, whatever raw byte or score the map stores for
// it. Only incoming moves are affected; it is not a general elevation rule.
func destinationElevation(g *gridgraph.HeightMap, p gridgraph.Position) int {
	if g.IsEnd(p) {
		return gridgraph.MaxElevation
	}
	return g.Elevation(p)
}

// CanStep reports whether a traveller on from may move onto to in one step:
// both in bounds, orthogonally adjacent, and climbing at most one level.
func CanStep(g *gridgraph.HeightMap, from, to gridgraph.Position) bool {
	if !g.InBounds(from) || !g.InBounds(to) || from.Manhattan(to) != 1 {
		return false
	}
	return destinationElevation(g, to) <= g.Elevation(from)+1
}

// Successors returns the successor rule for g: admissible neighbours in
// N, E, S, W order, each at unit cost.
func Successors(g *gridgraph.HeightMap) astar.SuccessorFunc[gridgraph.Position] {
	return func(p gridgraph.Position) []astar.Successor[gridgraph.Position] {
		out := make([]astar.Successor[gridgraph.Position], 0, 4)
		for _, d := range g.NeighborOffsets() {
			q := p.Add(d)
			if CanStep(g, p, q) {
				out = append(out, astar.Successor[gridgraph.Position]{Node: q, Cost: stepCost})
			}
		}
		return out
	}
}

// Neighbors is Successors without costs, for unit-cost traversals.
func Neighbors(g *gridgraph.HeightMap) func(gridgraph.Position) []gridgraph.Position {
	return func(p gridgraph.Position) []gridgraph.Position {
		out := make([]gridgraph.Position, 0, 4)
		for _, d := range g.NeighborOffsets() {
			if q := p.Add(d); CanStep(g, p, q) {
				out = append(out, q)
			}
		}
		return out
	}
}

// Predecessors returns the reverse rule: the cells that may step onto p.
func Predecessors(g *gridgraph.HeightMap) func(gridgraph.Position) []gridgraph.Position {
	return func(p gridgraph.Position) []gridgraph.Position {
		out := make([]gridgraph.Position, 0, 4)
		for _, d := range g.NeighborOffsets() {
			if q := p.Add(d); CanStep(g, q, p) {
				out = append(out, q)
			}
		}
		return out
	}
}
