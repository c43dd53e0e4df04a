package planner

import (
	"math"

	"github.com/bytearena/tankarena/common/utils/number"
	"github.com/bytearena/tankarena/common/utils/vector"
)

// Above this many objectives the exhaustive search is replaced by a heuristic.
const MaxExhaustiveObjectives = 7

// Improvement passes allowed to 2-opt before it gives up.
const maxTwoOptPasses = 32

// Plan is a visiting order over a set of objectives and the axis-aligned moves that follow it.
type Plan struct {
	Order    []vector.Vector2 `json:"order"`
	Moves    []vector.Vector2 `json:"moves"`
	Distance float64          `json:"distance"`
	// Exact is false when the order comes from the heuristic and may not be optimal.
	Exact bool `json:"exact"`
}

// FindPath orders objectives so that the Manhattan length of the tour starting at
// start is minimal, then synthesises the moves for that tour.
func FindPath(start vector.Vector2, objectives []vector.Vector2) Plan {
	var order []vector.Vector2
	exact := true

	if len(objectives) <= MaxExhaustiveObjectives {
		order = exhaustiveOrder(start, objectives)
	} else {
		order = twoOpt(start, nearestNeighbourOrder(start, objectives))
		exact = false
	}

	return Plan{
		Order:    order,
		Moves:    MovesForPath(start, order),
		Distance: PathDistance(start, order),
		Exact:    exact,
	}
}

func PathDistance(start vector.Vector2, path []vector.Vector2) float64 {
	distance := 0.0
	current := start
	for _, objective := range path {
		distance += current.ManhattanDistance(objective)
		current = objective
	}

	return distance
}

// MovesForPath returns the way points of the L-shaped route through path.
// Objectives sharing an axis with the current point take a single move; the
// others take two, the smaller offset being closed first.
func MovesForPath(start vector.Vector2, path []vector.Vector2) []vector.Vector2 {
	moves := make([]vector.Vector2, 0, len(path)*2)
	current := start

	for _, objective := range path {
		if objective.Equals(current) {
			continue
		}

		dx := objective.GetX() - current.GetX()
		dy := objective.GetY() - current.GetY()

		switch {
		case number.IsZero(dx) || number.IsZero(dy):
			moves = append(moves, objective)
		case math.Abs(dx) < math.Abs(dy):
			moves = append(moves, vector.MakeVector2(objective.GetX(), current.GetY()), objective)
		default:
			moves = append(moves, vector.MakeVector2(current.GetX(), objective.GetY()), objective)
		}

		current = objective
	}

	return moves
}

func exhaustiveOrder(start vector.Vector2, objectives []vector.Vector2) []vector.Vector2 {
	work := make([]vector.Vector2, len(objectives))
	copy(work, objectives)

	best := make([]vector.Vector2, len(objectives))
	copy(best, objectives)
	bestDistance := math.MaxFloat64

	var permute func(k int)
	permute = func(k int) {
		if k == len(work) {
			if d := PathDistance(start, work); d < bestDistance {
				bestDistance = d
				copy(best, work)
			}
			return
		}

		for i := k; i < len(work); i++ {
			work[k], work[i] = work[i], work[k]
			permute(k + 1)
			work[k], work[i] = work[i], work[k]
		}
	}

	permute(0)

	return best
}

func nearestNeighbourOrder(start vector.Vector2, objectives []vector.Vector2) []vector.Vector2 {
	remaining := make([]vector.Vector2, len(objectives))
	copy(remaining, objectives)

	order := make([]vector.Vector2, 0, len(objectives))
	current := start

	for len(remaining) > 0 {
		nearest := 0
		for i := 1; i < len(remaining); i++ {
			if current.ManhattanDistance(remaining[i]) < current.ManhattanDistance(remaining[nearest]) {
				nearest = i
			}
		}

		current = remaining[nearest]
		order = append(order, current)
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
	}

	return order
}

// twoOpt reverses sub-sequences of the open tour while that shortens it.
func twoOpt(start vector.Vector2, order []vector.Vector2) []vector.Vector2 {
	bestDistance := PathDistance(start, order)

	for pass := 0; pass < maxTwoOptPasses; pass++ {
		improved := false

		for i := 0; i < len(order)-1; i++ {
			for j := i + 1; j < len(order); j++ {
				reverse(order, i, j)
				if d := PathDistance(start, order); d < bestDistance {
					bestDistance = d
					improved = true
				} else {
					reverse(order, i, j)
				}
			}
		}

		if !improved {
			break
		}
	}

	return order
}

func reverse(s []vector.Vector2, i, j int) {
	for ; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
