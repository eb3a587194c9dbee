// Package gridgraph parses elevation fields and exposes read-only accessors
// over them.
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads one row per line from r and builds a HeightMap.
// Blank lines are skipped and a trailing '\r' is trimmed from every line.
func Parse(r io.Reader) (*HeightMap, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}

	return NewHeightMap(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*HeightMap, error) {
	return Parse(strings.NewReader(s))
}

// NewHeightMap constructs a HeightMap from non-empty rows of equal length.
// It copies the input, so later changes to rows do not affect the map.
// Errors wrap ErrMalformedGrid.
// Complexity: O(W×H) time and memory.
func NewHeightMap(rows []string) (*HeightMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	hm := &HeightMap{
		width:  w,
		height: h,
		raw:    make([][]byte, h),
		scores: make([][]int, h),
	}
	ends := 0
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, r, len(row), w)
		}
		hm.raw[r] = []byte(row)
		hm.scores[r] = make([]int, w)
		for c := 0; c < w; c++ {
			b := row[c]
			score, ok := scoreOf(b)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCell, b, r, c)
			}
			hm.scores[r][c] = score
			switch b {
			case StartMarker:
				hm.starts = append(hm.starts, Position{Row: r, Col: c})
			case EndMarker:
				ends++
				hm.end = Position{Row: r, Col: c}
			}
		}
	}
	switch {
	case ends == 0:
		return nil, ErrMissingEnd
	case ends > 1:
		return nil, fmt.Errorf("%w: found %d", ErrDuplicateEnd, ends)
	case len(hm.starts) == 0:
		return nil, ErrMissingStart
	}

	return hm, nil
}

// scoreOf maps an input byte to its elevation score.
func scoreOf(b byte) (int, bool) {
	switch {
	case b == StartMarker:
		return MinElevation, true
	case b == EndMarker:
		return MaxElevation, true
	case b >= 'a' && b <= 'z':
		return int(b - 'a'), true
	}
	return 0, false
}

// Width returns the number of columns.
func (hm *HeightMap) Width() int { return hm.width }

// Height returns the number of rows.
func (hm *HeightMap) Height() int { return hm.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (hm *HeightMap) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < hm.height && p.Col >= 0 && p.Col < hm.width
}

// Elevation returns the score at p. p must be in bounds.
// The start marker reads as MinElevation and the end marker as MaxElevation.
func (hm *HeightMap) Elevation(p Position) int {
	return hm.scores[p.Row][p.Col]
}

// Marker returns the raw input byte at p. p must be in bounds.
func (hm *HeightMap) Marker(p Position) byte {
	return hm.raw[p.Row][p.Col]
}

// Start returns the first start marker in row-major order.
func (hm *HeightMap) Start() Position { return hm.starts[0] }

// Starts returns every start marker in row-major order.
func (hm *HeightMap) Starts() []Position {
	out := make([]Position, len(hm.starts))
	copy(out, hm.starts)
	return out
}

// End returns the end marker.
func (hm *HeightMap) End() Position { return hm.end }

// IsEnd reports whether p is the end marker.
func (hm *HeightMap) IsEnd(p Position) bool { return p == hm.end }

// PositionsWithScore returns every position whose elevation equals score,
// in row-major order. Start markers count as score 0, the end marker as 25.
// Complexity: O(W×H).
func (hm *HeightMap) PositionsWithScore(score int) []Position {
	var out []Position
	for r := 0; r < hm.height; r++ {
		for c := 0; c < hm.width; c++ {
			if hm.scores[r][c] == score {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// NeighborOffsets returns the orthogonal (dRow, dCol) offsets in N, E, S, W order.
// The returned slice must not be modified.
func (hm *HeightMap) NeighborOffsets() [][2]int {
	return orthogonalOffsets
}

// Rows returns a copy of the raw input rows.
func (hm *HeightMap) Rows() []string {
	out := make([]string, hm.height)
	for r, row := range hm.raw {
		out[r] = string(row)
	}
	return out
}

// Index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (hm *HeightMap) Index(p Position) int {
	return p.Row*hm.width + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (hm *HeightMap) Coordinate(idx int) Position {
	return Position{Row: idx / hm.width, Col: idx % hm.width}
}
