package tactics

import (
	"math"

	"github.com/bytearena/tankarena/arenaserver/protocol"
	"github.com/bytearena/tankarena/common/utils/trigo"
	"github.com/bytearena/tankarena/common/utils/vector"
)

// PatrolDisplacement is issued by agents that have nothing better to do.
var PatrolDisplacement = vector.MakeVector2(1, 0)

func InShotRange(tank protocol.TankSnapshot, pos vector.Vector2) bool {
	return tank.Position.Distance(pos) <= tank.ShotRange
}

// OpponentInShotRange is stricter than InShotRange: an opponent sitting exactly on
// the range limit is not engaged.
func OpponentInShotRange(tank protocol.TankSnapshot, opponent protocol.TankSnapshot) bool {
	return tank.Position.Distance(opponent.Position) < tank.ShotRange
}

// TargetsInShotRange returns the targets the tank can reach, in perception order.
func TargetsInShotRange(tank protocol.TankSnapshot, targets []protocol.TargetSnapshot) []protocol.TargetSnapshot {
	res := make([]protocol.TargetSnapshot, 0)
	for _, target := range targets {
		if InShotRange(tank, target.Position) {
			res = append(res, target)
		}
	}

	return res
}

// NearestTarget returns the target closest to from; the first one wins ties.
func NearestTarget(targets []protocol.TargetSnapshot, from vector.Vector2) (protocol.TargetSnapshot, bool) {
	best := -1
	bestDist := math.MaxFloat64
	for i, target := range targets {
		if dist := from.DistanceSq(target.Position); dist < bestDist {
			best, bestDist = i, dist
		}
	}

	if best < 0 {
		return protocol.TargetSnapshot{}, false
	}

	return targets[best], true
}

// NearestPowerUp returns the power-up of the given type closest to from.
func NearestPowerUp(powerups []protocol.PowerUpSnapshot, powerUpType string, from vector.Vector2) (protocol.PowerUpSnapshot, bool) {
	best := -1
	bestDist := math.MaxFloat64
	for i, powerup := range powerups {
		if powerup.Type != powerUpType {
			continue
		}

		if dist := from.DistanceSq(powerup.Position); dist < bestDist {
			best, bestDist = i, dist
		}
	}

	if best < 0 {
		return protocol.PowerUpSnapshot{}, false
	}

	return powerups[best], true
}

// AxisDominant keeps the larger component of offset and zeroes the other one.
// On a tie the x axis is kept.
func AxisDominant(offset vector.Vector2) vector.Vector2 {
	x, y := offset.Get()
	if math.Abs(x) >= math.Abs(y) {
		return vector.MakeVector2(x, 0)
	}

	return vector.MakeVector2(0, y)
}

// AimAt turns the tank toward pos, or shoots at it once aligned.
func AimAt(tank protocol.TankSnapshot, pos vector.Vector2, queue *protocol.MutationQueue) {
	direction := pos.Sub(tank.Position).Unit()
	if trigo.IsAligned(tank.Heading, direction) {
		queue.Shoot(direction)
		return
	}

	queue.Turn(direction)
}

// MoveAxisTowards drives the tank along a single axis toward pos, turning first when
// the tank does not already face that way.
func MoveAxisTowards(tank protocol.TankSnapshot, pos vector.Vector2, queue *protocol.MutationQueue) {
	move := AxisDominant(pos.Sub(tank.Position))
	if move.IsNull() {
		return
	}

	if !trigo.IsAligned(tank.Heading, move.Unit()) {
		queue.Turn(move.Unit())
		return
	}

	queue.Move(move)
}

func Patrol(queue *protocol.MutationQueue) {
	queue.Move(PatrolDisplacement)
}
