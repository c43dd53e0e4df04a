package tankarena

import (
	"math"

	"github.com/bytearena/tankarena/common/utils/vector"
)

type Tank struct {
	playerIdx int

	heading     vector.Vector2
	shotRange   float64
	reloadTimer float64

	pendingShot *vector.Vector2

	hasTurnGoal bool
	turnGoal    vector.Vector2

	hasMoveGoal  bool
	moveGoal     vector.Vector2
	stallCount   int
	lastPosition vector.Vector2

	// knock-back velocity, decays over time
	kick vector.Vector2

	// set by the steering system for the physics system of the same tick
	positionBeforeStep vector.Vector2
	landing            bool
	landingHeading     vector.Vector2
	driving            bool
	arriving           bool
}

func NewTank(playerIdx int, heading vector.Vector2) *Tank {
	heading = heading.Unit()
	if heading.IsNull() {
		heading = vector.MakeVector2(1, 0)
	}

	return &Tank{
		playerIdx: playerIdx,
		heading:   heading,
		shotRange: TankShotRange,
	}
}

func (game TankArenaGame) CastTank(data interface{}) *Tank {
	return data.(*Tank)
}

func (t Tank) GetPlayerIdx() int {
	return t.playerIdx
}

func (t Tank) GetHeading() vector.Vector2 {
	return t.heading
}

func (t Tank) GetShotRange() float64 {
	return t.shotRange
}

func (t *Tank) IncreaseShotRange(increment float64) *Tank {
	t.shotRange = math.Min(t.shotRange+increment, TankMaxShotRange)
	return t
}

func (t Tank) IsReloaded() bool {
	return t.reloadTimer <= 0
}

func (t *Tank) PushShot(aiming vector.Vector2) {
	t.pendingShot = &aiming
}

func (t *Tank) PopPendingShot() (vector.Vector2, bool) {
	if t.pendingShot == nil {
		return vector.MakeNullVector2(), false
	}

	shot := *t.pendingShot
	t.pendingShot = nil

	return shot, true
}

// SetTurnGoal replaces any pending move; a null direction is ignored.
func (t *Tank) SetTurnGoal(direction vector.Vector2) {
	direction = direction.Unit()
	if direction.IsNull() {
		return
	}

	t.hasTurnGoal = true
	t.turnGoal = direction
	t.ClearMoveGoal()
}

// SetMoveGoal replaces any pending turn; a null displacement clears the move.
func (t *Tank) SetMoveGoal(position vector.Vector2, displacement vector.Vector2) {
	t.hasTurnGoal = false

	if displacement.IsNull() {
		t.ClearMoveGoal()
		return
	}

	t.hasMoveGoal = true
	t.moveGoal = position.Add(displacement)
	t.stallCount = 0
	t.lastPosition = position
}

func (t *Tank) ClearMoveGoal() {
	t.hasMoveGoal = false
	t.stallCount = 0
}

func (t Tank) GetMoveGoal() (vector.Vector2, bool) {
	return t.moveGoal, t.hasMoveGoal
}

func (t Tank) GetTurnGoal() (vector.Vector2, bool) {
	return t.turnGoal, t.hasTurnGoal
}

func (t *Tank) Kick(direction vector.Vector2) {
	t.kick = t.kick.Add(direction.Unit().Scale(KickBackSpeed))
}

func (t Tank) GetKick() vector.Vector2 {
	return t.kick
}
