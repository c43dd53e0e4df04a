package tankarena

import (
	"github.com/bytearena/ecs"
	"github.com/bytearena/tankarena/common/utils"
)

// systemDeath removes every entity that should be culled, in a single pass at the end of the tick.
func systemDeath(game *TankArenaGame) {

	entitiesToRemove := make([]*ecs.Entity, 0)

	for _, entityresult := range sortedResults(game.lifecycleView) {
		if !shouldBeCulled(game, entityresult) {
			continue
		}

		switch game.CastRender(entityresult.Components[game.renderComponent]).GetKind() {
		case KindTarget:
			game.scheduleRespawn(KindTarget, "")
		case KindPowerUp:
			qr := game.getEntity(entityresult.Entity.GetID(), game.powerUpComponent)
			game.scheduleRespawn(KindPowerUp, game.CastPowerUp(qr.Components[game.powerUpComponent]).GetType())
		}

		entitiesToRemove = append(entitiesToRemove, entityresult.Entity)
	}

	if len(entitiesToRemove) > 0 {
		game.manager.DisposeEntities(entitiesToRemove...)
	}
}

func shouldBeCulled(game *TankArenaGame, entityresult *ecs.QueryResult) bool {
	lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])
	renderAspect := game.CastRender(entityresult.Components[game.renderComponent])

	switch renderAspect.GetKind() {
	case KindTank:
		return false
	case KindAmmo:
		if lifecycleAspect.IsDead() {
			return true
		}

		qr := game.getEntity(entityresult.Entity.GetID(), game.ammoComponent)
		return qr != nil && !game.field.Contains(game.CastAmmo(qr.Components[game.ammoComponent]).GetPosition())
	case KindTarget, KindPowerUp:
		return lifecycleAspect.IsDead()
	}

	utils.Assertf(false, "unknown entity kind %d", int(renderAspect.GetKind()))
	return false
}
