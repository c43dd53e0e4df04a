package tankarena

import "github.com/bytearena/tankarena/common/utils"

type EntityKind int

const (
	KindTank EntityKind = iota
	KindAmmo
	KindTarget
	KindPowerUp
)

func (k EntityKind) String() string {
	switch k {
	case KindTank:
		return "tank"
	case KindAmmo:
		return "ammo"
	case KindTarget:
		return "target"
	case KindPowerUp:
		return "powerup"
	}

	utils.Assertf(false, "unknown entity kind %d", int(k))
	return ""
}

type Render struct {
	kind EntityKind
}

func (game TankArenaGame) CastRender(data interface{}) *Render {
	return data.(*Render)
}

func (r Render) GetKind() EntityKind {
	return r.kind
}
