package tankarena

import "math"

// Game rules. Distances are in arena units, durations in seconds.
const (
	AmmoSpeed   = 8.0
	AmmoRadius  = 0.15
	AmmoHeight  = 2.75
	FizzleSpeed = 0.75

	TankBodyHalfSize = 0.5
	TankSpeed        = 2.0
	TankTurnRate     = math.Pi // rad/s
	TankShotRange    = 5.0
	TankMaxShotRange = 12.0
	TankReloadTime   = 0.5
	KickBackSpeed    = 4.0
	KickBackDamping  = 8.0 // 1/s

	TargetRadius  = 0.5
	PowerUpRadius = 0.3

	PointsHitTarget = 10
	PointsHitOther  = 5
	PointsPowerUp   = 5
	RangeIncrement  = 1.0

	// A move that makes no progress for this many ticks is abandoned.
	StallTicks = 10

	// Ticks between the removal of a target or power-up and its replacement.
	RespawnDelay = 20

	// Death-fade progress per second; a fade lasts 1/DeathFadeRate seconds.
	DeathFadeRate = 10.0
)

// Below these, a tank is considered on its goal.
const (
	arrivalEpsilon = 1e-3
	headingEpsilon = 1e-6
	stallEpsilon   = 1e-4
)

// Ammo slower than this has reached the end of its flight.
const ammoSpentSpeed = 0.01
