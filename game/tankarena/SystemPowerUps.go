package tankarena

// systemPowerUps lets tanks collect the power-ups they touch. When two tanks reach
// the same power-up in the same tick, the lowest player index gets it.
func systemPowerUps(game *TankArenaGame) {

	powerups := sortedResults(game.powerUpsView)

	for _, tankresult := range sortedResults(game.tanksView) {
		tankAspect := game.CastTank(tankresult.Components[game.tankComponent])
		playerAspect := game.CastPlayer(tankresult.Components[game.playerComponent])
		physicalAspect := game.CastPhysicalBody(tankresult.Components[game.physicalBodyComponent])

		position := physicalAspect.GetPosition()

		for _, powerupresult := range powerups {
			powerupAspect := game.CastPowerUp(powerupresult.Components[game.powerUpComponent])
			lifecycleAspect := game.CastLifecycle(powerupresult.Components[game.lifecycleComponent])

			if !lifecycleAspect.IsAlive() || !powerupAspect.CanBeCollectedBy(position) {
				continue
			}

			switch {
			case powerupAspect.IsPoints():
				playerAspect.AddPoints(PointsPowerUp)
			case powerupAspect.IsRange():
				tankAspect.IncreaseShotRange(RangeIncrement)
			}

			playerAspect.Stats.PowerUpsCollected++
			lifecycleAspect.StartDeath()

			game.log.AddEntry(MakeLogEntry(game.ticknum, LogEventPowerUp, tankAspect.GetPlayerIdx(), -1))
		}
	}
}
