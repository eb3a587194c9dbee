package hillclimb

import (
	"errors"

	"github.com/katalvlaran/hillclimb/astar"
)

var (
	// ErrPathNotFound indicates the end cannot be reached from any requested start.
	// It is the astar sentinel, so errors.Is works against either name.
	ErrPathNotFound = astar.ErrPathNotFound

	// ErrNilGrid indicates a nil *gridgraph.HeightMap was passed.
	ErrNilGrid = errors.New("hillclimb: grid is nil")

	// ErrOutOfBounds indicates a start or end position outside the grid.
	ErrOutOfBounds = errors.New("hillclimb: position out of bounds")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("hillclimb: invalid option supplied")
)
