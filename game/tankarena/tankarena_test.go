package tankarena

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/bytearena/tankarena/arenaserver/protocol"
	"github.com/bytearena/tankarena/common/types"
	"github.com/bytearena/tankarena/common/types/mapcontainer"
	"github.com/bytearena/tankarena/common/utils/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDt = 0.05

type testArena struct {
	starts   []mapcontainer.MapStart
	targets  []mapcontainer.MapPoint
	powerups []mapcontainer.MapPowerUp
	width    float64
}

func start(id string, x, y, hx, hy float64) mapcontainer.MapStart {
	return mapcontainer.MapStart{
		Id:      id,
		Point:   mapcontainer.MakeMapPoint(x, y),
		Heading: mapcontainer.MakeMapPoint(hx, hy),
	}
}

func newTestGame(t *testing.T, arena testArena) *TankArenaGame {
	m := &mapcontainer.MapContainer{}
	m.Meta.Name = "test"

	width := arena.width
	if width == 0 {
		width = 10
	}

	m.Data.Field = mapcontainer.MapField{Min: mapcontainer.MakeMapPoint(0, 0), Max: mapcontainer.MakeMapPoint(width, 10)}
	m.Data.Starts = arena.starts
	m.Data.Targets = arena.targets
	m.Data.PowerUps = arena.powerups
	require.NoError(t, m.Validate())

	names := make([]string, len(arena.starts))
	for i := range names {
		names[i] = "test"
	}

	desc, err := types.NewGameDescription("test", 20, 0, 1, names, m)
	require.NoError(t, err)

	return NewTankArenaGame(desc, nil)
}

func step(game *TankArenaGame, batches ...protocol.AgentMutationBatch) {
	game.Step(game.GetTicknum()+1, testDt, batches)
}

func batch(playerIdx int, mutations ...protocol.AgentMutationMessage) protocol.AgentMutationBatch {
	return protocol.AgentMutationBatch{
		PlayerIdx: playerIdx,
		Mutations: mutations,
	}
}

func tankOf(t *testing.T, game *TankArenaGame, playerIdx int) (*Tank, *Player, *PhysicalBody) {
	qr := game.getPlayerTank(playerIdx, game.tankComponent, game.playerComponent, game.physicalBodyComponent)
	require.NotNil(t, qr)

	return game.CastTank(qr.Components[game.tankComponent]),
		game.CastPlayer(qr.Components[game.playerComponent]),
		game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])
}

func ammos(game *TankArenaGame) []*Ammo {
	res := make([]*Ammo, 0)
	for _, entityresult := range sortedResults(game.ammoView) {
		res = append(res, game.CastAmmo(entityresult.Components[game.ammoComponent]))
	}
	return res
}

func TestAmmoSpeedDecaysMonotonically(t *testing.T) {
	ammo := NewAmmo(vector.MakeVector2(0, 0), vector.MakeVector2(3, 0), 5)

	prevSpeed := math.Inf(1)
	prevX := 0.0

	for i := 0; i < 200; i++ {
		ammo.Advance(testDt)

		assert.True(t, ammo.GetSpeed() <= prevSpeed, "speed increased at step %d", i)
		assert.True(t, ammo.GetSpeed() >= 0)
		assert.True(t, ammo.GetPosition().GetX() >= prevX, "ammo moved backwards at step %d", i)
		assert.True(t, ammo.GetTraveled() <= ammo.GetMaxRange())

		prevSpeed = ammo.GetSpeed()
		prevX = ammo.GetPosition().GetX()
	}

	assert.InDelta(t, 0.0, ammo.CurrentSpeed(), 1e-6)
}

func TestAmmoRadiusShrinksWhileFading(t *testing.T) {
	ammo := NewAmmo(vector.MakeNullVector2(), vector.MakeVector2(1, 0), 5)
	assert.Equal(t, AmmoRadius, ammo.GetRadius())

	for _, ttd := range []float64{0.0001, 0.3, 0.99, 1} {
		ammo.Shrink(ttd)
		assert.True(t, ammo.GetRadius() > 0)
		assert.True(t, ammo.GetRadius() <= AmmoRadius)
	}

	assert.InDelta(t, AmmoRadius*0.001, ammo.GetRadius(), 1e-12)
}

func TestLifecycleFade(t *testing.T) {
	lc := &Lifecycle{}
	assert.True(t, lc.IsAlive())

	lc.StartDeath()
	lc.StartDeath()
	assert.Equal(t, 0.0001, lc.GetTimeTillDeath())

	lc.Advance(testDt)
	assert.InDelta(t, 0.5001, lc.GetTimeTillDeath(), 1e-12)
	assert.False(t, lc.IsDead())

	lc.Advance(testDt)
	assert.Equal(t, 1.0, lc.GetTimeTillDeath())
	assert.True(t, lc.IsDead())
	assert.InDelta(t, 0.001*0.5, lc.GetScale(), 1e-12)
}

func TestTargetAcceptsASingleHit(t *testing.T) {
	target := NewTarget(vector.MakeVector2(1, 1))
	lc := &Lifecycle{}

	points, ok := target.OnHitByAmmo(lc, 0)
	assert.True(t, ok)
	assert.Equal(t, PointsHitTarget, points)

	_, ok = target.OnHitByAmmo(lc, 1)
	assert.False(t, ok)
	assert.Equal(t, 0, target.GetHitBy())
}

func TestShootHitsTargetScoresAndRespawns(t *testing.T) {
	game := newTestGame(t, testArena{
		starts:  []mapcontainer.MapStart{start("one", 2, 5, 1, 0)},
		targets: []mapcontainer.MapPoint{mapcontainer.MakeMapPoint(5, 5)},
	})

	_, player, _ := tankOf(t, game, 0)

	step(game, batch(0, protocol.MakeShootMutation(vector.MakeVector2(1, 0))))
	require.Len(t, ammos(game), 1)
	assert.Equal(t, uint(1), player.Stats.ShotsFired)

	for i := 0; i < 30 && game.GetGameLog().Count(LogEventHitTarget) == 0; i++ {
		step(game)
	}

	require.Equal(t, 1, game.GetGameLog().Count(LogEventHitTarget))
	assert.Equal(t, PointsHitTarget, player.Score)
	assert.Equal(t, uint(1), player.Stats.TargetsDestroyed)
	assert.Equal(t, uint(0), player.Stats.HitsTaken)

	// fade out then removal
	step(game)
	step(game)
	assert.Equal(t, 0, game.CountAlive(KindTarget))
	assert.Empty(t, ammos(game))

	for i := 0; i < RespawnDelay+1; i++ {
		step(game)
	}

	assert.Equal(t, 1, game.CountAlive(KindTarget))
	assert.Equal(t, 1, game.GetGameLog().Count(LogEventRespawn))
}

func TestAmmoFliesToTheEndOfItsRangeWithoutTargets(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{start("one", 1, 5, 1, 0)},
		width:  20,
	})

	step(game, batch(0, protocol.MakeShootMutation(vector.MakeVector2(1, 0))))
	require.Len(t, ammos(game), 1)

	for i := 0; i < 100 && len(ammos(game)) > 0; i++ {
		ammo := ammos(game)[0]
		assert.True(t, ammo.GetTraveled() <= ammo.GetMaxRange())
		step(game)
	}

	assert.Empty(t, ammos(game))
	assert.Equal(t, 0, game.GetGameLog().Count(LogEventFizzle))
	assert.Equal(t, 1, game.GetGameLog().Count(LogEventOutOfRange))
}

func TestAmmoFizzlesWhileATargetIsAlive(t *testing.T) {
	game := newTestGame(t, testArena{
		starts:  []mapcontainer.MapStart{start("one", 1, 5, 1, 0)},
		targets: []mapcontainer.MapPoint{mapcontainer.MakeMapPoint(15, 9)},
		width:   20,
	})

	step(game, batch(0, protocol.MakeShootMutation(vector.MakeVector2(1, 0))))
	require.Len(t, ammos(game), 1)

	for i := 0; i < 100 && len(ammos(game)) > 0; i++ {
		step(game)
	}

	assert.Empty(t, ammos(game))
	assert.Equal(t, 1, game.CountAlive(KindTarget))
	assert.Equal(t, 1, game.GetGameLog().Count(LogEventFizzle))
	assert.Equal(t, 0, game.GetGameLog().Count(LogEventOutOfRange))
}

func TestMisalignedShotIsIgnored(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{start("one", 5, 5, 1, 0)},
	})

	step(game, batch(0, protocol.MakeShootMutation(vector.MakeVector2(0, 1))))

	_, player, _ := tankOf(t, game, 0)
	assert.Empty(t, ammos(game))
	assert.Equal(t, uint(0), player.Stats.ShotsFired)

	perception, ok := game.GetPerception(0)
	require.True(t, ok)
	assert.True(t, perception.Tank.Heading.Equals(vector.MakeVector2(1, 0)), "shooting never rotates")
}

func TestShootingRequiresReload(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{start("one", 1, 5, 1, 0)},
		width:  20,
	})

	shoot := batch(0, protocol.MakeShootMutation(vector.MakeVector2(1, 0)))
	step(game, shoot)
	step(game, shoot)

	_, player, _ := tankOf(t, game, 0)
	assert.Equal(t, uint(1), player.Stats.ShotsFired)

	for i := 0; i < 12; i++ {
		step(game, shoot)
	}

	assert.Equal(t, uint(2), player.Stats.ShotsFired)
}

func TestTankHitAwardsShooterAndKicksBack(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{
			start("one", 2, 5, 1, 0),
			start("two", 5, 5, -1, 0),
		},
	})

	step(game, batch(0, protocol.MakeShootMutation(vector.MakeVector2(1, 0))))

	for i := 0; i < 30 && game.GetGameLog().Count(LogEventHitTank) == 0; i++ {
		step(game)
	}

	require.Equal(t, 1, game.GetGameLog().Count(LogEventHitTank))

	_, shooter, _ := tankOf(t, game, 0)
	_, struck, struckBody := tankOf(t, game, 1)

	assert.Equal(t, PointsHitOther, shooter.Score)
	assert.Equal(t, uint(1), shooter.Stats.HitsGiven)
	assert.Equal(t, uint(1), struck.Stats.HitsTaken)
	assert.Equal(t, 0, struck.Score)

	before := struckBody.GetPosition().GetX()
	step(game)
	step(game)
	assert.True(t, struckBody.GetPosition().GetX() > before, "struck tank is pushed away from the shooter")
}

func TestMoveRotatesFirstThenSnapsOnGoal(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{start("one", 5, 3, 1, 0)},
	})

	step(game, batch(0, protocol.MakeMoveMutation(vector.MakeVector2(0, 2))))

	perception, _ := game.GetPerception(0)
	assert.NotEqual(t, 0.0, perception.Tank.AngularVelocity)
	assert.True(t, perception.Tank.Velocity.IsNull(), "no driving before facing the goal")
	assert.False(t, perception.Tank.AtRest())

	for i := 0; i < 80 && !perception.Tank.AtRest(); i++ {
		step(game)
		perception, _ = game.GetPerception(0)
	}

	require.True(t, perception.Tank.AtRest())
	assert.Equal(t, 5.0, perception.Tank.Position.GetX())
	assert.Equal(t, 5.0, perception.Tank.Position.GetY())
	assert.True(t, perception.Tank.Heading.Equals(vector.MakeVector2(0, 1)))
}

func TestTankKeepsMovingWhileMoveIsPending(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{start("one", 5, 3, 1, 0)},
	})

	step(game, batch(0, protocol.MakeMoveMutation(vector.MakeVector2(0, 2))))

	tank, _, _ := tankOf(t, game, 0)
	for i := 0; i < 80; i++ {
		_, pending := tank.GetMoveGoal()
		if !pending {
			break
		}

		perception, _ := game.GetPerception(0)
		require.False(t, perception.Tank.AtRest(), "at rest on tick %d with a move pending", game.GetTicknum())
		step(game)
	}

	_, pending := tank.GetMoveGoal()
	assert.False(t, pending)

	perception, _ := game.GetPerception(0)
	assert.True(t, perception.Tank.AtRest())
	assert.True(t, perception.Tank.Position.Equals(vector.MakeVector2(5, 5)))
}

func TestMoveOverridesTurnInTheSameTick(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{start("one", 5, 5, 1, 0)},
	})

	step(game, batch(0,
		protocol.MakeMoveMutation(vector.MakeVector2(1, 0)),
		protocol.MakeTurnMutation(vector.MakeVector2(0, 1)),
	))

	tank, _, _ := tankOf(t, game, 0)
	_, turning := tank.GetTurnGoal()
	assert.False(t, turning)

	perception, _ := game.GetPerception(0)
	assert.InDelta(t, 5.1, perception.Tank.Position.GetX(), 1e-9)
}

func TestZeroMoveClearsGoal(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{start("one", 5, 5, 1, 0)},
	})

	step(game, batch(0, protocol.MakeMoveMutation(vector.MakeVector2(3, 0))))
	step(game, batch(0, protocol.MakeMoveMutation(vector.MakeNullVector2())))

	perception, _ := game.GetPerception(0)
	assert.True(t, perception.Tank.AtRest())
}

func TestTankIsClampedToFieldAndGivesUp(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{start("one", 1, 5, -1, 0)},
	})

	step(game, batch(0, protocol.MakeMoveMutation(vector.MakeVector2(-5, 0))))

	perception, _ := game.GetPerception(0)
	for i := 0; i < 60 && !perception.Tank.AtRest(); i++ {
		step(game)
		perception, _ = game.GetPerception(0)

		assert.True(t, perception.Tank.Position.GetX() >= TankBodyHalfSize)
	}

	assert.True(t, perception.Tank.AtRest(), "a blocked move is abandoned")
	assert.Equal(t, TankBodyHalfSize, perception.Tank.Position.GetX())
}

func TestPowerUpCollection(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{start("one", 5, 5, 1, 0)},
		powerups: []mapcontainer.MapPowerUp{
			{Point: mapcontainer.MakeMapPoint(5, 5.5), Type: mapcontainer.PowerUpTypeRange},
			{Point: mapcontainer.MakeMapPoint(4.5, 5), Type: mapcontainer.PowerUpTypePoints},
			{Point: mapcontainer.MakeMapPoint(8, 8), Type: mapcontainer.PowerUpTypePoints},
		},
	})

	step(game)

	tank, player, _ := tankOf(t, game, 0)
	assert.Equal(t, TankShotRange+RangeIncrement, tank.GetShotRange())
	assert.Equal(t, PointsPowerUp, player.Score)
	assert.Equal(t, uint(2), player.Stats.PowerUpsCollected)
	assert.Equal(t, 1, game.CountAlive(KindPowerUp))

	perception, _ := game.GetPerception(0)
	require.Len(t, perception.PowerUps, 1)
	assert.Equal(t, mapcontainer.PowerUpTypePoints, perception.PowerUps[0].Type)
}

func TestShotRangeIsCapped(t *testing.T) {
	tank := NewTank(0, vector.MakeVector2(1, 0))
	for i := 0; i < 20; i++ {
		tank.IncreaseShotRange(RangeIncrement)
	}

	assert.Equal(t, TankMaxShotRange, tank.GetShotRange())
}

func TestNullHeadingDefaultsToEast(t *testing.T) {
	tank := NewTank(0, vector.MakeNullVector2())
	assert.True(t, tank.GetHeading().Equals(vector.MakeVector2(1, 0)))
}

func TestPerceptionSeesOpponentAndTargets(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{
			start("one", 2, 2, 1, 0),
			start("two", 8, 8, -1, 0),
		},
		targets: []mapcontainer.MapPoint{
			mapcontainer.MakeMapPoint(5, 5),
			mapcontainer.MakeMapPoint(5, 8),
		},
	})

	perception, ok := game.GetPerception(0)
	require.True(t, ok)

	assert.Equal(t, 0, perception.Tank.PlayerIdx)
	assert.True(t, perception.Tank.AtRest())
	assert.True(t, perception.Tank.Reloaded)
	assert.Equal(t, TankShotRange, perception.Tank.ShotRange)
	require.NotNil(t, perception.Opponent)
	assert.Equal(t, 1, perception.Opponent.PlayerIdx)
	assert.Len(t, perception.Targets, 2)

	// snapshots are copies
	perception.Targets[0].Position = vector.MakeVector2(0, 0)
	other, _ := game.GetPerception(1)
	assert.True(t, other.Targets[0].Position.Equals(vector.MakeVector2(5, 5)))

	_, ok = game.GetPerception(7)
	assert.False(t, ok)
}

func TestUnknownPlayerMutationsAreDiscarded(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{start("one", 5, 5, 1, 0)},
	})

	assert.NotPanics(t, func() {
		step(game, batch(4, protocol.MakeMoveMutation(vector.MakeVector2(1, 0))))
	})
}

func TestVizFrame(t *testing.T) {
	game := newTestGame(t, testArena{
		starts:   []mapcontainer.MapStart{start("one", 2, 5, 1, 0)},
		targets:  []mapcontainer.MapPoint{mapcontainer.MakeMapPoint(8, 5)},
		powerups: []mapcontainer.MapPowerUp{{Point: mapcontainer.MakeMapPoint(8, 8), Type: mapcontainer.PowerUpTypeRange}},
	})

	step(game, batch(0, protocol.MakeShootMutation(vector.MakeVector2(1, 0))))

	frame := game.GetVizFrame()
	kinds := make(map[string]int)
	for _, obj := range frame.Objects {
		kinds[obj.Kind]++
		assert.True(t, obj.Scale >= 0 && obj.Scale <= 1)
	}

	assert.Equal(t, map[string]int{"tank": 1, "ammo": 1, "target": 1, "powerup": 1}, kinds)
	require.Len(t, frame.Scores, 1)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(game.GetVizFrameJson(), &decoded))
	assert.Equal(t, game.gameDescription.GetId(), decoded["gameid"])
}

func TestScoresAreOrderedByPlayer(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{
			start("one", 2, 2, 1, 0),
			start("two", 8, 8, -1, 0),
		},
	})

	scores := game.GetScores()
	require.Len(t, scores, 2)
	assert.Equal(t, 0, scores[0].PlayerIdx)
	assert.Equal(t, 1, scores[1].PlayerIdx)
	assert.Equal(t, "test", scores[0].Name)
}
