package planner

import (
	"math"
	"testing"

	"github.com/bytearena/tankarena/common/utils/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(x, y float64) vector.Vector2 {
	return vector.MakeVector2(x, y)
}

// bruteForce lists the orders of up to three objectives by hand.
func bruteForce(start vector.Vector2, objectives []vector.Vector2) float64 {
	var orders [][]int
	switch len(objectives) {
	case 0:
		orders = [][]int{{}}
	case 1:
		orders = [][]int{{0}}
	case 2:
		orders = [][]int{{0, 1}, {1, 0}}
	case 3:
		orders = [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	}

	best := math.MaxFloat64
	for _, order := range orders {
		d := 0.0
		current := start
		for _, idx := range order {
			d += math.Abs(current.GetX()-objectives[idx].GetX()) + math.Abs(current.GetY()-objectives[idx].GetY())
			current = objectives[idx]
		}
		best = math.Min(best, d)
	}

	return best
}

func TestFindPathIsOptimal(t *testing.T) {
	cases := []struct {
		start      vector.Vector2
		objectives []vector.Vector2
	}{
		{v(0, 0), nil},
		{v(0, 0), []vector.Vector2{v(3, 4)}},
		{v(5, 5), []vector.Vector2{v(0, 0), v(6, 5)}},
		{v(0, 0), []vector.Vector2{v(10, 0), v(1, 1), v(5, 0)}},
		{v(2, 7), []vector.Vector2{v(9, 1), v(2, 8), v(3, 3)}},
		{v(10, 10), []vector.Vector2{v(0, 0), v(20, 20), v(10, 0)}},
	}

	for _, c := range cases {
		plan := FindPath(c.start, c.objectives)
		assert.True(t, plan.Exact)
		assert.Len(t, plan.Order, len(c.objectives))
		assert.InDelta(t, bruteForce(c.start, c.objectives), plan.Distance, 1e-9, "start %s", c.start)
		assert.InDelta(t, PathDistance(c.start, plan.Order), plan.Distance, 1e-9)
	}
}

func TestFindPathDoesNotMutateObjectives(t *testing.T) {
	objectives := []vector.Vector2{v(10, 0), v(1, 1), v(5, 0)}
	FindPath(v(0, 0), objectives)

	assert.True(t, objectives[0].Equals(v(10, 0)))
	assert.True(t, objectives[1].Equals(v(1, 1)))
	assert.True(t, objectives[2].Equals(v(5, 0)))
}

func TestMovesForPath(t *testing.T) {
	moves := MovesForPath(v(0, 0), []vector.Vector2{
		v(0, 0), // skipped
		v(0, 4), // same x
		v(1, 10),
		v(7, 8),
	})

	expected := []vector.Vector2{
		v(0, 4),
		v(1, 4), v(1, 10), // x offset is the smaller one
		v(1, 8), v(7, 8), // y offset is the smaller one
	}

	require.Len(t, moves, len(expected))
	for i := range expected {
		assert.True(t, expected[i].Equals(moves[i]), "move %d: %s", i, moves[i])
	}
}

func TestFindPathAboveCapFallsBackToHeuristic(t *testing.T) {
	objectives := make([]vector.Vector2, 0)
	for _, x := range []float64{5, 2, 9, 1, 7, 3, 8, 4, 6} {
		objectives = append(objectives, v(x, 0))
	}
	require.Greater(t, len(objectives), MaxExhaustiveObjectives)

	plan := FindPath(v(0, 0), objectives)
	assert.False(t, plan.Exact)
	require.Len(t, plan.Order, len(objectives))
	assert.InDelta(t, 9.0, plan.Distance, 1e-9)

	for i, objective := range plan.Order {
		assert.True(t, objective.Equals(v(float64(i+1), 0)))
	}
}

func TestTwoOptImprovesTour(t *testing.T) {
	start := v(0, 0)
	order := []vector.Vector2{v(3, 0), v(1, 0), v(2, 0)}
	before := PathDistance(start, order)

	improved := twoOpt(start, order)
	assert.Less(t, PathDistance(start, improved), before)
	assert.InDelta(t, 3.0, PathDistance(start, improved), 1e-9)
}
