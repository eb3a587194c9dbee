package gridgraph

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid is the umbrella for structural parse failures.
// Every other error in this file wraps it, so errors.Is(err, ErrMalformedGrid)
// holds for all of them.
var ErrMalformedGrid = errors.New("gridgraph: malformed grid")

var (
	// ErrEmptyGrid indicates the input has no non-blank rows.
	ErrEmptyGrid = fmt.Errorf("%w: input must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrInvalidCell indicates a byte that is neither an elevation letter nor a marker.
	ErrInvalidCell = fmt.Errorf("%w: invalid cell", ErrMalformedGrid)
	// ErrMissingStart indicates no 'S' marker exists.
	ErrMissingStart = fmt.Errorf("%w: no start marker", ErrMalformedGrid)
	// ErrMissingEnd indicates no 'E' marker exists.
	ErrMissingEnd = fmt.Errorf("%w: no end marker", ErrMalformedGrid)
	// ErrDuplicateEnd indicates more than one 'E' marker exists.
	ErrDuplicateEnd = fmt.Errorf("%w: more than one end marker", ErrMalformedGrid)
)
