package tankarena

import (
	"github.com/bytearena/tankarena/common/utils/vector"
)

type pendingRespawn struct {
	kind    EntityKind
	type_   string // power-ups only
	dueTick int
}

func (game *TankArenaGame) scheduleRespawn(kind EntityKind, type_ string) {
	game.pendingRespawns = append(game.pendingRespawns, pendingRespawn{
		kind:    kind,
		type_:   type_,
		dueTick: game.ticknum + RespawnDelay,
	})
}

// systemRespawn puts back targets and power-ups at a random free spawn point of the map.
// A respawn with no free point is retried on the next tick.
func systemRespawn(game *TankArenaGame) {

	remaining := game.pendingRespawns[:0]

	for _, pending := range game.pendingRespawns {
		if pending.dueTick > game.ticknum {
			remaining = append(remaining, pending)
			continue
		}

		candidates := game.freeSpawnPoints(pending)
		if len(candidates) == 0 {
			remaining = append(remaining, pending)
			continue
		}

		point := candidates[game.rand.Intn(len(candidates))]

		switch pending.kind {
		case KindTarget:
			game.NewEntityTarget(point)
		case KindPowerUp:
			game.NewEntityPowerUp(point, pending.type_)
		}

		game.log.AddEntry(MakeLogEntry(game.ticknum, LogEventRespawn, -1, -1))
	}

	game.pendingRespawns = remaining
}

func (game *TankArenaGame) freeSpawnPoints(pending pendingRespawn) []vector.Vector2 {
	arenaMap := game.gameDescription.GetMapContainer()

	var radius float64
	points := make([]vector.Vector2, 0)

	switch pending.kind {
	case KindTarget:
		radius = TargetRadius
		for _, point := range arenaMap.Data.Targets {
			points = append(points, point.ToVector2())
		}
	case KindPowerUp:
		radius = PowerUpRadius
		for _, powerup := range arenaMap.Data.PowerUps {
			if powerup.Type == pending.type_ {
				points = append(points, powerup.Point.ToVector2())
			}
		}
	}

	free := make([]vector.Vector2, 0, len(points))
	for _, point := range points {
		if game.isSpawnPointFree(point, radius) {
			free = append(free, point)
		}
	}

	return free
}

func (game *TankArenaGame) isSpawnPointFree(point vector.Vector2, radius float64) bool {
	for _, entityresult := range game.targetsView.Get() {
		targetAspect := game.CastTarget(entityresult.Components[game.targetComponent])
		if targetAspect.GetPosition().Distance(point) < targetAspect.GetRadius()+radius {
			return false
		}
	}

	for _, entityresult := range game.powerUpsView.Get() {
		powerupAspect := game.CastPowerUp(entityresult.Components[game.powerUpComponent])
		if powerupAspect.GetPosition().Distance(point) < PowerUpRadius+radius {
			return false
		}
	}

	for _, entityresult := range game.tanksView.Get() {
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		if physicalAspect.GetPosition().Distance(point) < TankBodyHalfSize+radius {
			return false
		}
	}

	return true
}
