package hillclimb

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/gridgraph"
)

// Climb is the outcome of a successful search.
type Climb struct {
	Start    gridgraph.Position   `json:"start"`
	End      gridgraph.Position   `json:"end"`
	Cost     int                  `json:"cost"`
	Path     []gridgraph.Position `json:"path,omitempty"`
	Expanded int                  `json:"expanded"`
}

// ShortestPath returns the fewest steps from start to end, or ErrPathNotFound.
func ShortestPath(g *gridgraph.HeightMap, start, end gridgraph.Position, opts ...Option) (int, error) {
	c, err := search(g, start, end, false, opts)
	if err != nil {
		return 0, err
	}
	return c.Cost, nil
}

// Route is ShortestPath that also returns the route (start..end inclusive)
// and the number of cells the search finalized.
func Route(g *gridgraph.HeightMap, start, end gridgraph.Position, opts ...Option) (*Climb, error) {
	return search(g, start, end, true, opts)
}

func search(g *gridgraph.HeightMap, start, end gridgraph.Position, withPath bool, opts []Option) (*Climb, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}
	return runOne(g, start, end, withPath, o)
}

func validate(g *gridgraph.HeightMap, ps ...gridgraph.Position) error {
	if g == nil {
		return ErrNilGrid
	}
	for _, p := range ps {
		if !g.InBounds(p) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	return nil
}

// runOne is a single A* search. It owns all of its state, so concurrent
// calls on the same read-only grid are safe.
func runOne(g *gridgraph.HeightMap, start, end gridgraph.Position, withPath bool, o Options) (*Climb, error) {
	aopts := []astar.Option{astar.WithContext(o.Ctx)}
	if withPath {
		aopts = append(aopts, astar.WithReturnPath())
	}
	res, err := astar.Search(start, end, Successors(g), o.Heuristic, aopts...)
	if err != nil {
		return nil, err
	}
	return &Climb{
		Start:    start,
		End:      end,
		Cost:     int(res.Cost),
		Path:     res.Path,
		Expanded: res.Expanded,
	}, nil
}

// ShortestPathFromAnyLowPoint returns the fewest steps to end from any cell of
// elevation 0, start markers included. Candidates that cannot reach end are
// skipped; ErrPathNotFound is returned only if none can.
func ShortestPathFromAnyLowPoint(g *gridgraph.HeightMap, end gridgraph.Position, opts ...Option) (int, error) {
	c, err := BestLowPoint(g, end, opts...)
	if err != nil {
		return 0, err
	}
	return c.Cost, nil
}

// BestLowPoint is ShortestPathFromAnyLowPoint returning the winning start too.
// Ties go to the candidate first in row-major order. Path is not populated.
func BestLowPoint(g *gridgraph.HeightMap, end gridgraph.Position, opts ...Option) (*Climb, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := validate(g, end); err != nil {
		return nil, err
	}

	began := time.Now()
	var best *Climb
	switch o.Strategy {
	case ReverseSweep:
		best, err = reverseSweep(g, end, o)
	default:
		best, err = perSource(g, end, o)
	}
	if err != nil {
		return nil, err
	}
	o.Logger.WithFields(logrus.Fields{
		"strategy": o.Strategy.String(),
		"start":    best.Start.String(),
		"cost":     best.Cost,
		"elapsed":  time.Since(began),
	}).Debug("best low point")
	return best, nil
}

// perSource fans the candidates out to at most o.Workers goroutines. Each
// search writes only its own slot; the minimum is taken after Wait.
func perSource(g *gridgraph.HeightMap, end gridgraph.Position, o Options) (*Climb, error) {
	candidates := g.PositionsWithScore(gridgraph.MinElevation)
	results := make([]*Climb, len(candidates))

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	o.Ctx = ctx
	for i, start := range candidates {
		i, start := i, start
		eg.Go(func() error {
			c, err := runOne(g, start, end, false, o)
			switch {
			case errors.Is(err, ErrPathNotFound):
				o.Logger.WithField("start", start.String()).Debug("unreachable candidate")
				return nil
			case err != nil:
				return err
			}
			results[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var best *Climb
	for _, c := range results {
		if c != nil && (best == nil || c.Cost < best.Cost) {
			best = c
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: none of %d low points reach %v", ErrPathNotFound, len(candidates), end)
	}
	return best, nil
}

// reverseSweep walks backwards from end until the first elevation-0 cell is
// visited. BFS visits in non-decreasing depth, so that cell is optimal.
func reverseSweep(g *gridgraph.HeightMap, end gridgraph.Position, o Options) (*Climb, error) {
	var found *Climb
	res, err := bfs.BFS(end, Predecessors(g),
		bfs.WithContext[gridgraph.Position](o.Ctx),
		bfs.WithOnVisit(func(p gridgraph.Position, depth int) error {
			if found != nil && depth > found.Cost {
				return bfs.ErrStop
			}
			if g.Elevation(p) != gridgraph.MinElevation {
				return nil
			}
			// Same depth: keep the first low point in row-major order.
			if found == nil || p.Less(found.Start) {
				found = &Climb{Start: p, End: end, Cost: depth}
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: no low point reaches %v", ErrPathNotFound, end)
	}
	found.Expanded = len(res.Order)
	return found, nil
}
