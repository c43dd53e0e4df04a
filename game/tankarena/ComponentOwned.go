package tankarena

import "github.com/bytearena/ecs"

// Owned links an ammo to the tank that fired it.
type Owned struct {
	owner     ecs.EntityID
	playerIdx int
}

func (game TankArenaGame) CastOwned(data interface{}) *Owned {
	return data.(*Owned)
}

func (o Owned) GetOwner() ecs.EntityID {
	return o.owner
}

func (o Owned) GetPlayerIdx() int {
	return o.playerIdx
}
