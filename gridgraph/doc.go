// Package gridgraph models a rectangular height map as an implicit grid graph.
//
// What:
//
//   - HeightMap wraps a parsed field of elevation letters 'a'..'z' with one or
//     more start markers 'S' and exactly one end marker 'E'.
//   - Position is a comparable (Row, Col) pair with a total row-major order.
//   - Cells are never materialized as vertices or edges; callers derive
//     neighbours on demand from NeighborOffsets and InBounds.
//
// Scoring:
//
//   - 'a'→0 … 'z'→25.
//   - 'S' is scored as 'a' (0), 'E' is scored as 'z' (25).
//
// Complexity:
//
//   - Parse / NewHeightMap: O(W×H) time and memory.
//   - Elevation, InBounds, Marker: O(1).
//   - PositionsWithScore: O(W×H).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every structural failure below.
//   - ErrEmptyGrid: input has no non-blank rows.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a byte outside 'a'..'z', 'S', 'E'.
//   - ErrMissingStart: no 'S' marker.
//   - ErrMissingEnd / ErrDuplicateEnd: zero or several 'E' markers.
package gridgraph
