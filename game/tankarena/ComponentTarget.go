package tankarena

import "github.com/bytearena/tankarena/common/utils/vector"

type Target struct {
	position vector.Vector2
	radius   float64
	hitBy    int
}

func NewTarget(position vector.Vector2) *Target {
	return &Target{
		position: position,
		radius:   TargetRadius,
		hitBy:    -1,
	}
}

func (game TankArenaGame) CastTarget(data interface{}) *Target {
	return data.(*Target)
}

func (t Target) GetPosition() vector.Vector2 {
	return t.position
}

func (t Target) GetRadius() float64 {
	return t.radius
}

// GetHitBy returns the player that destroyed the target, or -1.
func (t Target) GetHitBy() int {
	return t.hitBy
}

// OnHitByAmmo starts the death of the target and returns the points won by the shooter.
// A target that is already fading does not accept hits.
func (t *Target) OnHitByAmmo(lc *Lifecycle, playerIdx int) (int, bool) {
	if !lc.IsAlive() {
		return 0, false
	}

	t.hitBy = playerIdx
	lc.StartDeath()

	return PointsHitTarget, true
}
