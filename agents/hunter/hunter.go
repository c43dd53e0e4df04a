package hunter

import (
	"github.com/bytearena/tankarena/agents/tactics"
	"github.com/bytearena/tankarena/arenaserver/agent"
	"github.com/bytearena/tankarena/arenaserver/protocol"
	"github.com/bytearena/tankarena/common/types/mapcontainer"
	"github.com/bytearena/tankarena/common/utils/trigo"
)

// A points power-up further than this is not worth the detour.
const PointsProximity = 5.0

// HunterAgent follows a fixed priority list: shoot a target, grab a power-up,
// engage the opponent, close in on a target, patrol.
type HunterAgent struct {
	agent.AgentImp
}

func MakeHunterAgent() HunterAgent {
	return HunterAgent{
		AgentImp: agent.MakeAgentImp("hunter", 3),
	}
}

func (hunter HunterAgent) Update(perception protocol.AgentPerception, queue *protocol.MutationQueue) {
	tank := perception.Tank

	inRange := tactics.TargetsInShotRange(tank, perception.Targets)
	if len(inRange) > 0 {
		for _, target := range inRange {
			direction := target.Position.Sub(tank.Position).Unit()
			if trigo.IsAligned(tank.Heading, direction) {
				queue.Shoot(direction)
				return
			}
		}

		queue.Turn(inRange[0].Position.Sub(tank.Position).Unit())
		return
	}

	if points, ok := tactics.NearestPowerUp(perception.PowerUps, mapcontainer.PowerUpTypePoints, tank.Position); ok && tank.Position.Distance(points.Position) < PointsProximity {
		tactics.MoveAxisTowards(tank, points.Position, queue)
		return
	}

	if rangeup, ok := tactics.NearestPowerUp(perception.PowerUps, mapcontainer.PowerUpTypeRange, tank.Position); ok {
		tactics.MoveAxisTowards(tank, rangeup.Position, queue)
		return
	}

	if other := perception.Opponent; other != nil && tactics.OpponentInShotRange(tank, *other) {
		tactics.AimAt(tank, other.Position, queue)
		return
	}

	if target, ok := tactics.NearestTarget(perception.Targets, tank.Position); ok {
		tactics.MoveAxisTowards(tank, target.Position, queue)
		return
	}

	tactics.Patrol(queue)
}
