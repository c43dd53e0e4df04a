package protocol

import (
	"github.com/bytearena/tankarena/common/utils/vector"
)

// Perceptions are value snapshots taken at the end of a tick; mutating them has no effect on the arena.

type TankSnapshot struct {
	PlayerIdx       int            `json:"player"`
	Name            string         `json:"name"`
	Position        vector.Vector2 `json:"position"`
	Velocity        vector.Vector2 `json:"velocity"`
	AngularVelocity float64        `json:"angularvelocity"`
	Heading         vector.Vector2 `json:"heading"`
	Radius          float64        `json:"radius"`
	ShotRange       float64        `json:"shotrange"`
	Score           int            `json:"score"`
	Reloaded        bool           `json:"reloaded"`
}

// AtRest is true only when the tank has no linear nor angular velocity at all.
func (t TankSnapshot) AtRest() bool {
	vx, vy := t.Velocity.Get()
	return vx == 0 && vy == 0 && t.AngularVelocity == 0
}

type TargetSnapshot struct {
	Id       string         `json:"id"`
	Position vector.Vector2 `json:"position"`
	Radius   float64        `json:"radius"`
}

type PowerUpSnapshot struct {
	Id       string         `json:"id"`
	Position vector.Vector2 `json:"position"`
	Type     string         `json:"type"`
}

type FieldSnapshot struct {
	Min vector.Vector2 `json:"min"`
	Max vector.Vector2 `json:"max"`
}

type AgentPerception struct {
	Tick     int               `json:"tick"`
	Field    FieldSnapshot     `json:"field"`
	Tank     TankSnapshot      `json:"tank"`
	Opponent *TankSnapshot     `json:"opponent,omitempty"`
	Targets  []TargetSnapshot  `json:"targets"`
	PowerUps []PowerUpSnapshot `json:"powerups"`
}
