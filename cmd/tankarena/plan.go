package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bytearena/tankarena/agents/planner"
	"github.com/bytearena/tankarena/common/utils/number"
	"github.com/bytearena/tankarena/common/utils/vector"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func planAction(tank string, objectives []string, dump bool) error {

	start, err := parsePoint(tank)
	if err != nil {
		return errors.Wrap(err, "invalid --tank")
	}

	points := make([]vector.Vector2, len(objectives))
	for i, objective := range objectives {
		if points[i], err = parsePoint(objective); err != nil {
			return errors.Wrapf(err, "invalid --objective #%d", i)
		}
	}

	plan := planner.FindPath(start, points)

	exactness := "optimal"
	if !plan.Exact {
		exactness = "heuristic, more than " + strconv.Itoa(planner.MaxExhaustiveObjectives) + " objectives"
	}

	fmt.Println("Distance: " + number.FloatToStr(plan.Distance, 2) + " (" + exactness + ")")

	fmt.Println("Order:")
	for i, objective := range plan.Order {
		fmt.Println("  " + strconv.Itoa(i+1) + ". " + formatPoint(objective))
	}

	fmt.Println("Moves:")
	current := start
	for i, move := range plan.Moves {
		fmt.Println("  " + strconv.Itoa(i+1) + ". move " + formatPoint(move.Sub(current)) + " to " + formatPoint(move))
		current = move
	}

	if dump {
		spew.Dump(plan)
	}

	return nil
}

func parsePoint(s string) (vector.Vector2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return vector.Vector2{}, errors.Errorf("%q is not of the form x,y", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return vector.Vector2{}, errors.Wrapf(err, "invalid x in %q", s)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return vector.Vector2{}, errors.Wrapf(err, "invalid y in %q", s)
	}

	return vector.MakeVector2(x, y), nil
}

func formatPoint(v vector.Vector2) string {
	return "(" + number.FloatToStr(v.GetX(), 2) + ", " + number.FloatToStr(v.GetY(), 2) + ")"
}
