package tankarena

import (
	"sort"

	"github.com/bytearena/tankarena/common/utils"
	"github.com/bytearena/tankarena/common/utils/trigo"
	"github.com/bytearena/tankarena/common/utils/vector"
)

type ammoHit struct {
	item *broadphaseItem
	time float64 // from 0 to 1, 0 = beginning of tick, 1 = end of tick
}

type ammoHitByTimeAsc []ammoHit

func (a ammoHitByTimeAsc) Len() int      { return len(a) }
func (a ammoHitByTimeAsc) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ammoHitByTimeAsc) Less(i, j int) bool {
	if a[i].time != a[j].time {
		return a[i].time < a[j].time
	}

	return a[i].item.entityID < a[j].item.entityID
}

// systemAmmo moves every flying ammo and resolves at most one outcome for each:
// hit, fizzle or out of range, in that order. Ammo only fizzles while a live target
// remains in the arena.
func systemAmmo(game *TankArenaGame, dt float64) {

	bp := buildBroadphase(game)

	for _, entityresult := range sortedResults(game.ammoView) {
		ammoAspect := game.CastAmmo(entityresult.Components[game.ammoComponent])
		ownedAspect := game.CastOwned(entityresult.Components[game.ownedComponent])
		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])

		if !lifecycleAspect.IsAlive() {
			// fading ammo does not collide anymore
			continue
		}

		start, delta := ammoAspect.Advance(dt)

		if hit, ok := firstAmmoHit(game, bp, ownedAspect.GetPlayerIdx(), start, delta, ammoAspect.GetRadius()); ok {
			impact := start.Add(delta.Scale(hit.time))
			ammoAspect.StopAt(impact)
			resolveAmmoHit(game, ownedAspect.GetPlayerIdx(), hit.item, impact)
			lifecycleAspect.StartDeath()
			continue
		}

		if ammoAspect.HasFizzled() && game.CountAlive(KindTarget) > 0 {
			lifecycleAspect.StartDeath()
			game.log.AddEntry(MakeLogEntry(game.ticknum, LogEventFizzle, ownedAspect.GetPlayerIdx(), -1))
			continue
		}

		if ammoAspect.IsOutOfRange() {
			lifecycleAspect.StartDeath()
			game.log.AddEntry(MakeLogEntry(game.ticknum, LogEventOutOfRange, ownedAspect.GetPlayerIdx(), -1))
		}
	}
}

func firstAmmoHit(game *TankArenaGame, bp *broadphase, playerIdx int, start vector.Vector2, delta vector.Vector2, radius float64) (ammoHit, bool) {

	hits := make([]ammoHit, 0)

	for _, item := range bp.Candidates(start, start.Add(delta), radius) {
		switch item.kind {
		case KindTank:
			if item.playerIdx == playerIdx {
				// a tank cannot hit itself
				continue
			}
		case KindTarget:
			// may have been destroyed by another ammo earlier this tick
			qr := game.getEntity(item.entityID, game.lifecycleComponent)
			if qr == nil || !game.CastLifecycle(qr.Components[game.lifecycleComponent]).IsAlive() {
				continue
			}
		default:
			utils.Assertf(false, "unexpected %s in ammo broadphase", item.kind)
		}

		if !trigo.IntersectCircleCapsule(item.center, item.radius, start, delta, radius) {
			continue
		}

		time, ok := trigo.SweptCircleTimeOfImpact(item.center, item.radius, start, delta, radius)
		if !ok {
			// grazing contact, numerically missed by the time of impact
			_, time = trigo.ClosestPointOnSegment(item.center, start, delta)
		}

		hits = append(hits, ammoHit{item: item, time: time})
	}

	if len(hits) == 0 {
		return ammoHit{}, false
	}

	sort.Sort(ammoHitByTimeAsc(hits))
	return hits[0], true
}

func resolveAmmoHit(game *TankArenaGame, shooterIdx int, item *broadphaseItem, impact vector.Vector2) {

	var shooter *Player
	if qr := game.getPlayerTank(shooterIdx, game.playerComponent); qr != nil {
		shooter = game.CastPlayer(qr.Components[game.playerComponent])
	}

	switch item.kind {
	case KindTarget:
		qr := game.getEntity(item.entityID, game.targetComponent, game.lifecycleComponent)
		utils.Assert(qr != nil, "hit target vanished")

		targetAspect := game.CastTarget(qr.Components[game.targetComponent])
		lifecycleAspect := game.CastLifecycle(qr.Components[game.lifecycleComponent])

		points, accepted := targetAspect.OnHitByAmmo(lifecycleAspect, shooterIdx)
		if accepted && shooter != nil {
			shooter.AddPoints(points)
			shooter.Stats.TargetsDestroyed++
		}

		game.log.AddEntry(MakeLogEntry(game.ticknum, LogEventHitTarget, shooterIdx, -1))

	case KindTank:
		qr := game.getEntity(item.entityID, game.tankComponent, game.playerComponent)
		utils.Assert(qr != nil, "hit tank vanished")

		tankAspect := game.CastTank(qr.Components[game.tankComponent])
		playerAspect := game.CastPlayer(qr.Components[game.playerComponent])

		if shooter != nil {
			shooter.AddPoints(PointsHitOther)
			shooter.Stats.HitsGiven++
		}

		playerAspect.Stats.HitsTaken++
		tankAspect.Kick(item.center.Sub(impact))

		game.log.AddEntry(MakeLogEntry(game.ticknum, LogEventHitTank, shooterIdx, tankAspect.GetPlayerIdx()))

	default:
		utils.Assertf(false, "ammo cannot hit a %s", item.kind)
	}
}
