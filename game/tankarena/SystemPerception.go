package tankarena

import (
	"github.com/bytearena/ecs"
	"github.com/bytearena/tankarena/arenaserver/protocol"
)

func systemPerception(game *TankArenaGame) {

	tanks := sortedResults(game.tanksView)
	snapshots := make([]protocol.TankSnapshot, len(tanks))
	for i, entityresult := range tanks {
		snapshots[i] = game.tankSnapshot(entityresult)
	}

	targets := make([]protocol.TargetSnapshot, 0)
	for _, entityresult := range sortedResults(game.targetsView) {
		if !game.CastLifecycle(entityresult.Components[game.lifecycleComponent]).IsAlive() {
			continue
		}

		targetAspect := game.CastTarget(entityresult.Components[game.targetComponent])
		targets = append(targets, protocol.TargetSnapshot{
			Id:       entityresult.Entity.GetID().String(),
			Position: targetAspect.GetPosition(),
			Radius:   targetAspect.GetRadius(),
		})
	}

	powerups := make([]protocol.PowerUpSnapshot, 0)
	for _, entityresult := range sortedResults(game.powerUpsView) {
		if !game.CastLifecycle(entityresult.Components[game.lifecycleComponent]).IsAlive() {
			continue
		}

		powerupAspect := game.CastPowerUp(entityresult.Components[game.powerUpComponent])
		powerups = append(powerups, protocol.PowerUpSnapshot{
			Id:       entityresult.Entity.GetID().String(),
			Position: powerupAspect.GetPosition(),
			Type:     powerupAspect.GetType(),
		})
	}

	field := protocol.FieldSnapshot{
		Min: game.field.Min.ToVector2(),
		Max: game.field.Max.ToVector2(),
	}

	perceptions := make(map[int]protocol.AgentPerception, len(snapshots))

	for i, own := range snapshots {
		perception := protocol.AgentPerception{
			Tick:     game.ticknum,
			Field:    field,
			Tank:     own,
			Targets:  copyTargets(targets),
			PowerUps: copyPowerUps(powerups),
		}

		// the opponent is the closest other tank
		for j := range snapshots {
			if j == i {
				continue
			}

			other := snapshots[j]
			if perception.Opponent == nil || other.Position.DistanceSq(own.Position) < perception.Opponent.Position.DistanceSq(own.Position) {
				perception.Opponent = &other
			}
		}

		perceptions[own.PlayerIdx] = perception
	}

	game.perceptions = perceptions
}

func (game *TankArenaGame) tankSnapshot(entityresult *ecs.QueryResult) protocol.TankSnapshot {
	tankAspect := game.CastTank(entityresult.Components[game.tankComponent])
	playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])
	physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

	return protocol.TankSnapshot{
		PlayerIdx:       tankAspect.GetPlayerIdx(),
		Name:            playerAspect.Name,
		Position:        physicalAspect.GetPosition(),
		Velocity:        physicalAspect.GetVelocity(),
		AngularVelocity: physicalAspect.GetAngularVelocity(),
		Heading:         tankAspect.GetHeading(),
		Radius:          TankBodyHalfSize,
		ShotRange:       tankAspect.GetShotRange(),
		Score:           playerAspect.Score,
		Reloaded:        tankAspect.IsReloaded(),
	}
}

// each agent gets its own slices, so that one agent cannot alter what another sees
func copyTargets(targets []protocol.TargetSnapshot) []protocol.TargetSnapshot {
	res := make([]protocol.TargetSnapshot, len(targets))
	copy(res, targets)
	return res
}

func copyPowerUps(powerups []protocol.PowerUpSnapshot) []protocol.PowerUpSnapshot {
	res := make([]protocol.PowerUpSnapshot, len(powerups))
	copy(res, powerups)
	return res
}
