package hillclimb_test

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/hillclimb"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

func mustParse(t testing.TB, s string) *gridgraph.HeightMap {
	t.Helper()
	g, err := gridgraph.ParseString(s)
	require.NoError(t, err)
	return g
}

// smoothGrid builds an n×n map whose elevation rises with row+col. About a
// quarter of the cells are pits up to three levels deep, which can be entered
// but are hard to leave, so most instances are climbable and some are not.
// S is at (0,0) and E at (n-1,n-1).
func smoothGrid(t testing.TB, n int, seed int64) *gridgraph.HeightMap {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([]string, n)
	for r := 0; r < n; r++ {
		row := make([]byte, n)
		for c := 0; c < n; c++ {
			e := (r + c) * 25 / (2*n - 2)
			if rng.Intn(4) == 0 {
				e -= 1 + rng.Intn(3)
			}
			row[c] = byte('a' + max(0, e))
		}
		rows[r] = string(row)
	}
	rows[0] = "S" + rows[0][1:]
	rows[n-1] = rows[n-1][:n-1] + "E"
	g, err := gridgraph.NewHeightMap(rows)
	require.NoError(t, err)
	return g
}

// referenceBFS is the plain breadth-first answer under the same climbing rule.
func referenceBFS(t testing.TB, g *gridgraph.HeightMap, start gridgraph.Position) (int, bool) {
	t.Helper()
	res, err := bfs.BFS(start, hillclimb.Neighbors(g))
	require.NoError(t, err)
	d, ok := res.Depth[g.End()]
	return d, ok
}

//----------------------------------------------------------------------------//
// Canonical scenario and boundaries
//----------------------------------------------------------------------------//

func TestSample(t *testing.T) {
	g := mustParse(t, sample)

	cost, err := hillclimb.ShortestPath(g, g.Start(), g.End())
	require.NoError(t, err)
	require.Equal(t, 31, cost)

	for _, s := range []hillclimb.Strategy{hillclimb.PerSource, hillclimb.ReverseSweep} {
		cost, err = hillclimb.ShortestPathFromAnyLowPoint(g, g.End(), hillclimb.WithStrategy(s))
		require.NoError(t, err, "strategy %v", s)
		require.Equal(t, 29, cost, "strategy %v", s)
	}
}

func TestSample_Route(t *testing.T) {
	g := mustParse(t, sample)
	c, err := hillclimb.Route(g, g.Start(), g.End())
	require.NoError(t, err)
	require.Equal(t, 31, c.Cost)
	require.Len(t, c.Path, 32)
	require.Equal(t, g.Start(), c.Path[0])
	require.Equal(t, g.End(), c.Path[len(c.Path)-1])
	for i := 1; i < len(c.Path); i++ {
		require.True(t, hillclimb.CanStep(g, c.Path[i-1], c.Path[i]), "illegal move %v→%v", c.Path[i-1], c.Path[i])
	}
	require.Positive(t, c.Expanded)
}

func TestSample_BestLowPoint(t *testing.T) {
	g := mustParse(t, sample)
	for _, s := range []hillclimb.Strategy{hillclimb.PerSource, hillclimb.ReverseSweep} {
		c, err := hillclimb.BestLowPoint(g, g.End(), hillclimb.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, 29, c.Cost)
		require.Equal(t, gridgraph.Position{Row: 4, Col: 0}, c.Start, "strategy %v", s)
	}
}

func TestAdjacentStartAndEnd(t *testing.T) {
	g := mustParse(t, "SE\nzz")
	// S is 'a' and cannot climb to E, but S→z is also too steep: unreachable.
	_, err := hillclimb.ShortestPath(g, g.Start(), g.End())
	require.ErrorIs(t, err, hillclimb.ErrPathNotFound)

	g = mustParse(t, "Sa\nyE")
	cost, err := hillclimb.ShortestPath(g, gridgraph.Position{Row: 1, Col: 0}, g.End())
	require.NoError(t, err)
	require.Equal(t, 1, cost)
}

func TestStartEqualsEnd(t *testing.T) {
	g := mustParse(t, "SE")
	cost, err := hillclimb.ShortestPath(g, g.End(), g.End())
	require.NoError(t, err)
	require.Equal(t, 0, cost)
}

func TestWalledOffEnd(t *testing.T) {
	g := mustParse(t, strings.Join([]string{
		"Saaaa",
		"aaaaa",
		"aamaa",
		"amEma",
		"aamaa",
	}, "\n"))

	_, err := hillclimb.ShortestPath(g, g.Start(), g.End())
	require.ErrorIs(t, err, hillclimb.ErrPathNotFound)

	for _, s := range []hillclimb.Strategy{hillclimb.PerSource, hillclimb.ReverseSweep} {
		_, err = hillclimb.ShortestPathFromAnyLowPoint(g, g.End(), hillclimb.WithStrategy(s))
		require.ErrorIs(t, err, hillclimb.ErrPathNotFound, "strategy %v", s)
	}
	for _, p := range g.PositionsWithScore(0) {
		_, err := hillclimb.ShortestPath(g, p, g.End())
		require.ErrorIs(t, err, hillclimb.ErrPathNotFound, "from %v", p)
	}
}

func TestInvalidInput(t *testing.T) {
	g := mustParse(t, sample)

	_, err := hillclimb.ShortestPath(nil, gridgraph.Position{}, gridgraph.Position{})
	require.ErrorIs(t, err, hillclimb.ErrNilGrid)

	_, err = hillclimb.ShortestPath(g, gridgraph.Position{Row: -1}, g.End())
	require.ErrorIs(t, err, hillclimb.ErrOutOfBounds)

	_, err = hillclimb.ShortestPathFromAnyLowPoint(g, gridgraph.Position{Row: 5, Col: 0})
	require.ErrorIs(t, err, hillclimb.ErrOutOfBounds)

	_, err = hillclimb.ShortestPath(g, g.Start(), g.End(), hillclimb.WithWorkers(0))
	require.ErrorIs(t, err, hillclimb.ErrOptionViolation)

	_, err = hillclimb.ShortestPathFromAnyLowPoint(g, g.End(), hillclimb.WithStrategy(hillclimb.Strategy(7)))
	require.ErrorIs(t, err, hillclimb.ErrOptionViolation)
}

func TestCancelledContext(t *testing.T) {
	g := mustParse(t, sample)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hillclimb.ShortestPath(g, g.Start(), g.End(), hillclimb.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	for _, s := range []hillclimb.Strategy{hillclimb.PerSource, hillclimb.ReverseSweep} {
		_, err = hillclimb.ShortestPathFromAnyLowPoint(g, g.End(), hillclimb.WithContext(ctx), hillclimb.WithStrategy(s))
		require.ErrorIs(t, err, context.Canceled, "strategy %v", s)
	}
}

func TestLoggerReceivesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)

	g := mustParse(t, sample)
	_, err := hillclimb.ShortestPathFromAnyLowPoint(g, g.End(), hillclimb.WithLogger(l), hillclimb.WithWorkers(1))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "best low point")
	assert.Contains(t, buf.String(), "cost=29")
}

//----------------------------------------------------------------------------//
// Properties over random climbable maps
//----------------------------------------------------------------------------//

func TestProperties_RandomMaps(t *testing.T) {
	found := 0
	for seed := int64(1); seed <= 60; seed++ {
		g := smoothGrid(t, 20, seed)
		start, end := g.Start(), g.End()

		informed, errA := hillclimb.ShortestPath(g, start, end)
		plain, errZ := hillclimb.ShortestPath(g, start, end, hillclimb.WithHeuristic(hillclimb.ZeroHeuristic))
		ref, reachable := referenceBFS(t, g, start)
		anyLow, errL := hillclimb.ShortestPathFromAnyLowPoint(g, end, hillclimb.WithWorkers(3))
		sweep, errR := hillclimb.ShortestPathFromAnyLowPoint(g, end, hillclimb.WithStrategy(hillclimb.ReverseSweep))

		// Multi-source strategies always agree.
		require.Equal(t, errL == nil, errR == nil, "seed %d", seed)
		if errL == nil {
			require.Equal(t, anyLow, sweep, "seed %d", seed)
		}

		if !reachable {
			require.ErrorIs(t, errA, hillclimb.ErrPathNotFound, "seed %d", seed)
			require.ErrorIs(t, errZ, hillclimb.ErrPathNotFound, "seed %d", seed)
			continue
		}
		found++
		require.NoError(t, errA, "seed %d", seed)
		require.NoError(t, errZ, "seed %d", seed)

		// Optimality equivalence with plain BFS, with and without the heuristic.
		require.Equal(t, ref, informed, "seed %d", seed)
		require.Equal(t, ref, plain, "seed %d", seed)
		// Admissibility lower bound.
		require.GreaterOrEqual(t, informed, start.Manhattan(end), "seed %d", seed)
		// More starting options can only help.
		require.NoError(t, errL, "seed %d", seed)
		require.LessOrEqual(t, anyLow, informed, "seed %d", seed)
	}
	require.Positive(t, found, "generator produced no climbable maps")
}

// TestRaisingCellCanShortenClimb documents that raising one elevation is not
// monotone under the climbing rule: it removes steep entries into the cell but
// opens steeper exits out of it. Here the raise turns "no path" into 26 steps.
func TestRaisingCellCanShortenClimb(t *testing.T) {
	row0 := []byte("S" + "b")
	for k := 2; k <= 23; k++ {
		row0 = append(row0, byte('a'+k+1))
	}
	row0 = append(row0, 'E')
	row1 := "bc" + strings.Repeat("z", 23)

	before, err := gridgraph.NewHeightMap([]string{string(row0), row1})
	require.NoError(t, err)
	_, err = hillclimb.ShortestPath(before, before.Start(), before.End())
	require.True(t, errors.Is(err, hillclimb.ErrPathNotFound), "got %v", err)

	row0[1] = 'c'
	after, err := gridgraph.NewHeightMap([]string{string(row0), row1})
	require.NoError(t, err)
	cost, err := hillclimb.ShortestPath(after, after.Start(), after.End())
	require.NoError(t, err)
	require.Equal(t, 26, cost)
}
