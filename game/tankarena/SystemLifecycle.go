package tankarena

func systemLifecycle(game *TankArenaGame, dt float64) {
	for _, entityresult := range game.lifecycleView.Get() {
		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])
		lifecycleAspect.Advance(dt)

		if game.CastRender(entityresult.Components[game.renderComponent]).GetKind() != KindAmmo {
			continue
		}

		qr := game.getEntity(entityresult.Entity.GetID(), game.ammoComponent)
		if qr == nil {
			continue
		}

		game.CastAmmo(qr.Components[game.ammoComponent]).Shrink(lifecycleAspect.GetTimeTillDeath())
	}
}
