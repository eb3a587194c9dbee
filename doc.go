// Package hillclimb is the root of a small toolkit for climbing height maps:
// fewest-step routes across a grid of elevations where every move may rise by
// at most one level.
//
// Under the hood, everything is organized under a few subpackages:
//
//	gridgraph/  immutable HeightMap, Position and parsing
//	astar/      generic best-first (A*) search over implicit graphs
//	bfs/        generic breadth-first search with hooks
//	hillclimb/  climbing rule, heuristics, single and multi-start searches
//	api/        gin HTTP API
//	cmd/        hillclimb command-line tool and server
//
// Quick ASCII example:
//
//	Sabqponm
//	abcryxxl
//	accszExk     from S: 31 steps
//	acctuvwj     from any 'a': 29 steps
//	abdefghi
package hillclimb
