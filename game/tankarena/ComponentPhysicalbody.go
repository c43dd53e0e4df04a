package tankarena

import (
	"github.com/ByteArena/box2d"
	"github.com/bytearena/tankarena/common/utils/vector"
)

func (game TankArenaGame) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

// PhysicalBody wraps the Box2D body of a tank. Velocities are expressed in units/s.
type PhysicalBody struct {
	body *box2d.B2Body
}

func (p *PhysicalBody) GetBody() *box2d.B2Body {
	return p.body
}

func (p PhysicalBody) GetPosition() vector.Vector2 {
	return vector.FromB2Vec2(p.body.GetPosition())
}

func (p *PhysicalBody) SetPosition(v vector.Vector2) *PhysicalBody {
	p.body.SetTransform(v.ToB2Vec2(), p.GetOrientation())
	return p
}

func (p PhysicalBody) GetVelocity() vector.Vector2 {
	return vector.FromB2Vec2(p.body.GetLinearVelocity())
}

func (p *PhysicalBody) SetVelocity(v vector.Vector2) *PhysicalBody {
	p.body.SetLinearVelocity(v.ToB2Vec2())
	return p
}

func (p PhysicalBody) GetOrientation() float64 {
	return p.body.GetAngle()
}

func (p *PhysicalBody) SetOrientation(angle float64) *PhysicalBody {
	p.body.SetTransform(p.body.GetPosition(), angle)
	return p
}

func (p PhysicalBody) GetAngularVelocity() float64 {
	return p.body.GetAngularVelocity()
}

func (p *PhysicalBody) SetAngularVelocity(w float64) *PhysicalBody {
	p.body.SetAngularVelocity(w)
	return p
}

func (p *PhysicalBody) Stop() *PhysicalBody {
	p.body.SetLinearVelocity(box2d.MakeB2Vec2(0, 0))
	p.body.SetAngularVelocity(0)
	return p
}

func (p PhysicalBody) GetRadius() float64 {
	// tanks are always circles
	return p.body.GetFixtureList().GetShape().GetRadius()
}
