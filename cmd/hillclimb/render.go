package main

import (
	"strings"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// renderPath draws the route over a blank field: each cell shows the
// direction of the next step, the end keeps its 'E' and untouched cells are '.'.
func renderPath(g *gridgraph.HeightMap, path []gridgraph.Position) string {
	canvas := make([][]byte, g.Height())
	for r := range canvas {
		canvas[r] = []byte(strings.Repeat(".", g.Width()))
	}
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		var arrow byte
		switch {
		case to.Row < from.Row:
			arrow = '^'
		case to.Row > from.Row:
			arrow = 'v'
		case to.Col < from.Col:
			arrow = '<'
		default:
			arrow = '>'
		}
		canvas[from.Row][from.Col] = arrow
	}
	if len(path) > 0 {
		last := path[len(path)-1]
		canvas[last.Row][last.Col] = g.Marker(last)
	}
	rows := make([]string, len(canvas))
	for r, row := range canvas {
		rows[r] = string(row)
	}
	return strings.Join(rows, "\n")
}
