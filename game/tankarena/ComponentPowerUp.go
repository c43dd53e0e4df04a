package tankarena

import (
	"github.com/bytearena/tankarena/common/types/mapcontainer"
	"github.com/bytearena/tankarena/common/utils/vector"
)

type PowerUp struct {
	position vector.Vector2
	type_    string
}

func NewPowerUp(position vector.Vector2, type_ string) *PowerUp {
	return &PowerUp{
		position: position,
		type_:    type_,
	}
}

func (game TankArenaGame) CastPowerUp(data interface{}) *PowerUp {
	return data.(*PowerUp)
}

func (p PowerUp) GetPosition() vector.Vector2 {
	return p.position
}

func (p PowerUp) GetType() string {
	return p.type_
}

func (p PowerUp) IsPoints() bool {
	return p.type_ == mapcontainer.PowerUpTypePoints
}

func (p PowerUp) IsRange() bool {
	return p.type_ == mapcontainer.PowerUpTypeRange
}

// CanBeCollectedBy reports whether a tank centered on position touches the power-up.
func (p PowerUp) CanBeCollectedBy(position vector.Vector2) bool {
	reach := TankBodyHalfSize + PowerUpRadius
	return p.position.DistanceSq(position) <= reach*reach
}
