package tankarena

import (
	"strconv"

	"github.com/ByteArena/box2d"
	"github.com/bytearena/ecs"
	commontypes "github.com/bytearena/tankarena/common/types"
)

///////////////////////////////////////////////////////////////////////////////
// Tank/tank contacts are solved by Box2D; the listener only keeps count of them
///////////////////////////////////////////////////////////////////////////////

type collisionListener struct { /* implements box2d.B2World.B2ContactListenerInterface */
	game *TankArenaGame
}

/// Called when two fixtures begin to touch.
func (listener *collisionListener) BeginContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
	for _, fixture := range []*box2d.B2Fixture{contact.GetFixtureA(), contact.GetFixtureB()} {
		descriptor, ok := fixture.GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
		if !ok || descriptor.Type != commontypes.PhysicalBodyDescriptorType.Tank {
			continue
		}

		id, err := strconv.Atoi(descriptor.ID)
		if err != nil {
			continue
		}

		qr := listener.game.getEntity(ecs.EntityID(id), listener.game.playerComponent)
		if qr == nil {
			continue
		}

		listener.game.CastPlayer(qr.Components[listener.game.playerComponent]).Stats.Bumps++
	}
}

/// Called when two fixtures cease to touch.
func (listener *collisionListener) EndContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
}

func (listener *collisionListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) { // contact has to be backed by a pointer
}

func (listener *collisionListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) { // contact has to be backed by a pointer
}

func newCollisionListener(game *TankArenaGame) *collisionListener {
	return &collisionListener{
		game: game,
	}
}
