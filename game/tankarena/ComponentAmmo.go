package tankarena

import (
	"math"

	"github.com/bytearena/tankarena/common/utils/vector"
)

type Ammo struct {
	startPos  vector.Vector2
	position  vector.Vector2
	prevPos   vector.Vector2
	direction vector.Vector2
	maxRange  float64
	radius    float64
	speed     float64
	traveled  float64
}

func NewAmmo(position vector.Vector2, direction vector.Vector2, maxRange float64) *Ammo {
	return &Ammo{
		startPos:  position,
		position:  position,
		prevPos:   position,
		direction: direction.Unit(),
		maxRange:  maxRange,
		radius:    AmmoRadius,
		speed:     AmmoSpeed,
	}
}

func (game TankArenaGame) CastAmmo(data interface{}) *Ammo {
	return data.(*Ammo)
}

func (a Ammo) GetPosition() vector.Vector2 {
	return a.position
}

func (a Ammo) GetRadius() float64 {
	return a.radius
}

func (a Ammo) GetMaxRange() float64 {
	return a.maxRange
}

func (a Ammo) GetTraveled() float64 {
	return a.traveled
}

// GetSpeed is the speed used during the last tick.
func (a Ammo) GetSpeed() float64 {
	return a.speed
}

// GetVelocity is unit(direction) * AmmoSpeed, the velocity the ammo was fired with.
func (a Ammo) GetVelocity() vector.Vector2 {
	return a.direction.Scale(AmmoSpeed)
}

// CurrentSpeed decreases with the traveled fraction of the range; it never goes negative.
func (a Ammo) CurrentSpeed() float64 {
	t := 1.0
	if a.maxRange > 0 {
		t = math.Min(a.traveled/a.maxRange, 1)
	}

	return AmmoSpeed * math.Max(0.9-t*t, 0)
}

// Advance moves the ammo by one tick and returns the swept segment.
func (a *Ammo) Advance(dt float64) (start vector.Vector2, delta vector.Vector2) {
	a.speed = a.CurrentSpeed()
	step := a.direction.Scale(a.speed * dt)

	a.prevPos = a.position
	a.position = a.position.Add(step)
	a.traveled += step.Mag()

	return a.prevPos, step
}

// StopAt is used on impact.
func (a *Ammo) StopAt(position vector.Vector2) {
	a.position = position
}

// IsOutOfRange is also true once the ammo has slowed to a standstill short of its range.
func (a Ammo) IsOutOfRange() bool {
	return a.speed < ammoSpentSpeed || a.position.DistanceSq(a.startPos) >= a.maxRange*a.maxRange
}

func (a Ammo) HasFizzled() bool {
	return a.speed <= FizzleSpeed
}

func (a *Ammo) Shrink(timeTillDeath float64) {
	a.radius = AmmoRadius * math.Max(1-timeTillDeath, 0.001)
}

// GetHeight is the drawing height of the shell above the ground.
func (a Ammo) GetHeight(lc Lifecycle) float64 {
	remaining := 0.0
	if a.maxRange > 0 {
		remaining = math.Max(1-a.traveled/a.maxRange, 0)
	}

	return AmmoHeight * math.Min(lc.GetTimeSinceBorn()*5, 1) * lc.GetScale() * remaining
}
