package planner

import (
	"github.com/bytearena/tankarena/agents/tactics"
	"github.com/bytearena/tankarena/arenaserver/agent"
	"github.com/bytearena/tankarena/arenaserver/protocol"
	"github.com/bytearena/tankarena/common/utils/vector"
)

// PlannerAgent fires at whatever it can reach and, whenever its tank stands still,
// heads for the first way point of the shortest tour over all power-ups.
type PlannerAgent struct {
	agent.AgentImp
}

func MakePlannerAgent() PlannerAgent {
	return PlannerAgent{
		AgentImp: agent.MakeAgentImp("planner", 5),
	}
}

func (planner PlannerAgent) Update(perception protocol.AgentPerception, queue *protocol.MutationQueue) {
	tank := perception.Tank

	// a single shot per tick, at the last target in range; the arena ignores it when misaligned
	if inRange := tactics.TargetsInShotRange(tank, perception.Targets); len(inRange) > 0 {
		queue.Shoot(inRange[len(inRange)-1].Position.Sub(tank.Position))
	}

	if !tank.AtRest() {
		return
	}

	objectives := make([]vector.Vector2, len(perception.PowerUps))
	for i, powerup := range perception.PowerUps {
		objectives[i] = powerup.Position
	}

	plan := FindPath(tank.Position, objectives)
	if len(plan.Moves) == 0 {
		tactics.Patrol(queue)
		return
	}

	queue.Move(plan.Moves[0].Sub(tank.Position))
}
