package tankarena

import (
	"github.com/bytearena/ecs"
	"github.com/bytearena/tankarena/common/utils/vector"
)

func (game *TankArenaGame) NewEntityAmmo(owner ecs.EntityID, playerIdx int, position vector.Vector2, direction vector.Vector2, maxRange float64) *ecs.Entity {
	return game.manager.NewEntity().
		AddComponent(game.ammoComponent, NewAmmo(position, direction, maxRange)).
		AddComponent(game.ownedComponent, &Owned{
			owner:     owner,
			playerIdx: playerIdx,
		}).
		AddComponent(game.renderComponent, &Render{
			kind: KindAmmo,
		}).
		AddComponent(game.lifecycleComponent, &Lifecycle{})
}
