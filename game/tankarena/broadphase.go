package tankarena

import (
	"github.com/bytearena/ecs"
	"github.com/bytearena/tankarena/common/utils"
	"github.com/bytearena/tankarena/common/utils/trigo"
	"github.com/bytearena/tankarena/common/utils/vector"
	"github.com/dhconnelly/rtreego"
)

// broadphaseItem is a static circle ammo can hit during the tick.
type broadphaseItem struct {
	entityID  ecs.EntityID
	kind      EntityKind
	playerIdx int // tanks only
	center    vector.Vector2
	radius    float64
	rect      rtreego.Rect
}

func (item *broadphaseItem) Bounds() rtreego.Rect {
	return item.rect
}

type broadphase struct {
	tree *rtreego.Rtree
}

func makeRect(corner vector.Vector2, dimensions vector.Vector2) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{corner.GetX(), corner.GetY()},
		[]float64{dimensions.GetX(), dimensions.GetY()},
	)
}

func newBroadphaseItem(entityID ecs.EntityID, kind EntityKind, playerIdx int, center vector.Vector2, radius float64) (*broadphaseItem, error) {
	corner, dimensions := trigo.TrajectoryBoundingBox(center, center, radius)
	rect, err := makeRect(corner, dimensions)
	if err != nil {
		return nil, err
	}

	return &broadphaseItem{
		entityID:  entityID,
		kind:      kind,
		playerIdx: playerIdx,
		center:    center,
		radius:    radius,
		rect:      rect,
	}, nil
}

// buildBroadphase indexes the live targets and all tanks, as they stand after the physics step.
func buildBroadphase(game *TankArenaGame) *broadphase {
	bp := &broadphase{
		tree: rtreego.NewTree(2, 25, 50),
	}

	for _, entityresult := range game.targetsView.Get() {
		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])
		if !lifecycleAspect.IsAlive() {
			continue
		}

		targetAspect := game.CastTarget(entityresult.Components[game.targetComponent])
		item, err := newBroadphaseItem(entityresult.Entity.GetID(), KindTarget, -1, targetAspect.GetPosition(), targetAspect.GetRadius())
		if err != nil {
			utils.Debug("tankarena-broadphase", "Could not index target: "+err.Error())
			continue
		}

		bp.tree.Insert(item)
	}

	for _, entityresult := range game.tanksView.Get() {
		tankAspect := game.CastTank(entityresult.Components[game.tankComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		item, err := newBroadphaseItem(entityresult.Entity.GetID(), KindTank, tankAspect.GetPlayerIdx(), physicalAspect.GetPosition(), TankBodyHalfSize)
		if err != nil {
			utils.Debug("tankarena-broadphase", "Could not index tank: "+err.Error())
			continue
		}

		bp.tree.Insert(item)
	}

	return bp
}

// Candidates returns the items whose bounds intersect the bounds of a circle swept from start to end.
func (bp *broadphase) Candidates(start vector.Vector2, end vector.Vector2, radius float64) []*broadphaseItem {
	corner, dimensions := trigo.TrajectoryBoundingBox(start, end, radius)
	rect, err := makeRect(corner, dimensions)
	if err != nil {
		utils.Debug("tankarena-broadphase", "Could not define trajectory bounding box: "+err.Error())
		return nil
	}

	matching := bp.tree.SearchIntersect(rect)
	res := make([]*broadphaseItem, len(matching))
	for i, spatial := range matching {
		res[i] = spatial.(*broadphaseItem)
	}

	return res
}

func (bp *broadphase) Size() int {
	return bp.tree.Size()
}
