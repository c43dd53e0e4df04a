package tankarena

import "math"

// Lifecycle is carried by every entity.
// timeTillDeath is 0 while alive, in ]0, 1[ while fading out, and 1 once the fade is over.
type Lifecycle struct {
	timeSinceBorn float64
	timeTillDeath float64
}

func (game TankArenaGame) CastLifecycle(data interface{}) *Lifecycle {
	return data.(*Lifecycle)
}

func (lc Lifecycle) GetTimeSinceBorn() float64 {
	return lc.timeSinceBorn
}

func (lc Lifecycle) GetTimeTillDeath() float64 {
	return lc.timeTillDeath
}

func (lc Lifecycle) IsAlive() bool {
	return lc.timeTillDeath == 0
}

func (lc Lifecycle) IsDying() bool {
	return lc.timeTillDeath > 0
}

func (lc Lifecycle) IsDead() bool {
	return lc.timeTillDeath >= 1
}

// StartDeath starts the fade out; calling it again has no effect.
func (lc *Lifecycle) StartDeath() *Lifecycle {
	lc.timeTillDeath = math.Max(lc.timeTillDeath, 0.0001)
	return lc
}

func (lc *Lifecycle) Advance(dt float64) *Lifecycle {
	lc.timeSinceBorn += dt

	if lc.IsDying() {
		lc.timeTillDeath = math.Min(lc.timeTillDeath+dt*DeathFadeRate, 1)
	}

	return lc
}

// GetScale grows from 0 to 1 during the first 0.2s of life and shrinks back while fading out.
func (lc Lifecycle) GetScale() float64 {
	return math.Max(1-lc.timeTillDeath, 0.001) * math.Min(lc.timeSinceBorn*5, 1)
}
