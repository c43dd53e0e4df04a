package tankarena

import (
	"github.com/ByteArena/box2d"
	"github.com/bytearena/ecs"
	"github.com/bytearena/tankarena/common/types"
	"github.com/bytearena/tankarena/common/utils/vector"
)

func (game *TankArenaGame) NewEntityTank(playerIdx int, spec PlayerSpec, position vector.Vector2, heading vector.Vector2) *ecs.Entity {

	tank := game.manager.NewEntity()
	tankAspect := NewTank(playerIdx, heading)

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.Angle = tankAspect.GetHeading().Angle()
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = false
	bodydef.FixedRotation = true // contacts never spin a tank

	body := game.PhysicalWorld.CreateBody(&bodydef)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(TankBodyHalfSize)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = 20.0
	fixturedef.Friction = 0
	fixturedef.Restitution = 0
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(types.MakePhysicalBodyDescriptor(
		types.PhysicalBodyDescriptorType.Tank,
		tank.GetID().String(),
	))
	body.SetBullet(false)

	game.players[playerIdx] = tank.GetID()

	return tank.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			body: body,
		}).
		AddComponent(game.tankComponent, tankAspect).
		AddComponent(game.playerComponent, &Player{
			Idx:    playerIdx,
			Name:   spec.Name,
			Period: spec.Period,
		}).
		AddComponent(game.renderComponent, &Render{
			kind: KindTank,
		}).
		AddComponent(game.lifecycleComponent, &Lifecycle{})
}
