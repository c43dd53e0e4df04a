package tankarena

import (
	"github.com/bytearena/ecs"
	"github.com/bytearena/tankarena/common/utils/vector"
)

func (game *TankArenaGame) NewEntityTarget(position vector.Vector2) *ecs.Entity {
	return game.manager.NewEntity().
		AddComponent(game.targetComponent, NewTarget(position)).
		AddComponent(game.renderComponent, &Render{
			kind: KindTarget,
		}).
		AddComponent(game.lifecycleComponent, &Lifecycle{})
}

func (game *TankArenaGame) NewEntityPowerUp(position vector.Vector2, type_ string) *ecs.Entity {
	return game.manager.NewEntity().
		AddComponent(game.powerUpComponent, NewPowerUp(position, type_)).
		AddComponent(game.renderComponent, &Render{
			kind: KindPowerUp,
		}).
		AddComponent(game.lifecycleComponent, &Lifecycle{})
}
