// Package gridgraph defines core types and constants for the gridgraph
// subpackage.
package gridgraph

import (
	"cmp"
	"fmt"
)

// Raw markers and elevation bounds.
const (
	StartMarker byte = 'S'
	EndMarker   byte = 'E'

	// MinElevation is the score of 'a' and of the start marker.
	MinElevation = 0
	// MaxElevation is the score of 'z' and of the end marker.
	MaxElevation = 25
)

// Position is a (Row, Col) cell coordinate. It is a plain value type,
// so it can be used directly as a map key.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Compare orders positions row-major: -1 if p < q, 0 if equal, +1 if p > q.
func (p Position) Compare(q Position) int {
	if c := cmp.Compare(p.Row, q.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, q.Col)
}

// Less reports whether p sorts before q.
func (p Position) Less(q Position) bool { return p.Compare(q) < 0 }

// Add returns p shifted by the (dRow, dCol) offset.
func (p Position) Add(d [2]int) Position {
	return Position{Row: p.Row + d[0], Col: p.Col + d[1]}
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// String renders p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// HeightMap is an immutable rectangular field of elevation scores.
// raw[r][c] keeps the input byte so markers stay distinguishable;
// scores[r][c] holds the derived 0..25 elevation.
type HeightMap struct {
	width, height int
	raw           [][]byte
	scores        [][]int
	starts        []Position
	end           Position
}

// orthogonalOffsets lists N, E, S, W as (dRow, dCol). Diagonals are never neighbours.
var orthogonalOffsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
