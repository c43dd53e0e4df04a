package tankarena

import (
	"testing"

	"github.com/bytearena/tankarena/common/types/mapcontainer"
	"github.com/bytearena/tankarena/common/utils/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadphaseIndexesTanksAndLiveTargets(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{start("one", 1, 1, 1, 0)},
		targets: []mapcontainer.MapPoint{
			mapcontainer.MakeMapPoint(5, 5),
			mapcontainer.MakeMapPoint(9, 9),
		},
	})

	bp := buildBroadphase(game)
	assert.Equal(t, 3, bp.Size())

	candidates := bp.Candidates(vector.MakeVector2(3, 5), vector.MakeVector2(6, 5), AmmoRadius)
	require.Len(t, candidates, 1)
	assert.Equal(t, KindTarget, candidates[0].kind)

	assert.Empty(t, bp.Candidates(vector.MakeVector2(8, 1), vector.MakeVector2(8, 2), AmmoRadius))

	// a fading target is not indexed anymore
	qr := game.getEntity(candidates[0].entityID, game.lifecycleComponent)
	game.CastLifecycle(qr.Components[game.lifecycleComponent]).StartDeath()
	assert.Equal(t, 2, buildBroadphase(game).Size())
}

func TestFirstHitIsTheEarliestAlongTheSweep(t *testing.T) {
	game := newTestGame(t, testArena{
		starts: []mapcontainer.MapStart{start("one", 1, 5, 1, 0)},
		targets: []mapcontainer.MapPoint{
			mapcontainer.MakeMapPoint(7, 5),
			mapcontainer.MakeMapPoint(4, 5),
		},
	})

	bp := buildBroadphase(game)

	// sweeps through both targets and over the shooter itself
	hit, ok := firstAmmoHit(game, bp, 0, vector.MakeVector2(1, 5), vector.MakeVector2(8, 0), AmmoRadius)
	require.True(t, ok)
	assert.Equal(t, KindTarget, hit.item.kind)
	assert.True(t, hit.item.center.Equals(vector.MakeVector2(4, 5)))

	// another player's ammo hits the tank first
	hit, ok = firstAmmoHit(game, bp, 1, vector.MakeVector2(0.2, 5), vector.MakeVector2(8, 0), AmmoRadius)
	require.True(t, ok)
	assert.Equal(t, KindTank, hit.item.kind)
}
