package tankarena

import (
	"math"

	"github.com/bytearena/tankarena/common/utils"
	"github.com/bytearena/tankarena/common/utils/trigo"
)

func systemShooting(game *TankArenaGame, dt float64) {

	for _, entityresult := range sortedResults(game.tanksView) {
		tankAspect := game.CastTank(entityresult.Components[game.tankComponent])
		playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		tankAspect.reloadTimer = math.Max(tankAspect.reloadTimer-dt, 0)

		aiming, ok := tankAspect.PopPendingShot()
		if !ok {
			continue
		}

		// shooting never rotates the tank
		if !trigo.IsAligned(tankAspect.GetHeading(), aiming) {
			utils.Debug("tankarena-shooting", "Ignoring misaligned shot of "+playerAspect.Name+" towards "+aiming.String())
			continue
		}

		if !tankAspect.IsReloaded() {
			// invalid shot, reload not over
			continue
		}

		tankAspect.reloadTimer = TankReloadTime
		playerAspect.Stats.ShotsFired++

		game.NewEntityAmmo(
			entityresult.Entity.GetID(),
			tankAspect.GetPlayerIdx(),
			physicalAspect.GetPosition(),
			aiming,
			tankAspect.GetShotRange(),
		)

		game.log.AddEntry(MakeLogEntry(game.ticknum, LogEventShot, tankAspect.GetPlayerIdx(), -1))
	}
}
