package tankarena

import (
	"encoding/json"

	commontypes "github.com/bytearena/tankarena/common/types"
	"github.com/bytearena/tankarena/common/utils"
	"github.com/bytearena/tankarena/common/utils/vector"
)

// GetVizFrame describes every entity with the scalars a renderer needs to draw it.
func (game *TankArenaGame) GetVizFrame() commontypes.VizMessage {
	msg := commontypes.VizMessage{
		GameID:  game.gameDescription.GetId(),
		Tick:    game.ticknum,
		Objects: []commontypes.VizMessageObject{},
		Scores:  []commontypes.VizMessageScore{},
	}

	for _, entityresult := range sortedResults(game.renderableView) {
		renderAspect := game.CastRender(entityresult.Components[game.renderComponent])
		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])

		obj := commontypes.VizMessageObject{
			Id:      entityresult.Entity.GetID().String(),
			Kind:    renderAspect.GetKind().String(),
			Heading: vector.MakeNullVector2(),
			Scale:   lifecycleAspect.GetScale(),
			Player:  -1,
		}

		id := entityresult.Entity.GetID()

		switch renderAspect.GetKind() {
		case KindTank:
			qr := game.getEntity(id, game.tankComponent, game.physicalBodyComponent)
			tankAspect := game.CastTank(qr.Components[game.tankComponent])
			physicalAspect := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])

			obj.Position = physicalAspect.GetPosition()
			obj.Heading = tankAspect.GetHeading()
			obj.Radius = physicalAspect.GetRadius()
			obj.Player = tankAspect.GetPlayerIdx()

		case KindAmmo:
			qr := game.getEntity(id, game.ammoComponent, game.ownedComponent)
			ammoAspect := game.CastAmmo(qr.Components[game.ammoComponent])

			obj.Position = ammoAspect.GetPosition()
			obj.Heading = ammoAspect.GetVelocity().Unit()
			obj.Radius = ammoAspect.GetRadius()
			obj.Height = ammoAspect.GetHeight(*lifecycleAspect)
			obj.Player = game.CastOwned(qr.Components[game.ownedComponent]).GetPlayerIdx()

		case KindTarget:
			qr := game.getEntity(id, game.targetComponent)
			targetAspect := game.CastTarget(qr.Components[game.targetComponent])

			obj.Position = targetAspect.GetPosition()
			obj.Radius = targetAspect.GetRadius()

		case KindPowerUp:
			qr := game.getEntity(id, game.powerUpComponent)
			obj.Position = game.CastPowerUp(qr.Components[game.powerUpComponent]).GetPosition()
			obj.Radius = PowerUpRadius

		default:
			utils.Assertf(false, "cannot draw entity kind %d", int(renderAspect.GetKind()))
		}

		msg.Objects = append(msg.Objects, obj)
	}

	for _, score := range game.GetScores() {
		msg.Scores = append(msg.Scores, commontypes.VizMessageScore{
			Player: score.PlayerIdx,
			Name:   score.Name,
			Score:  score.Score,
		})
	}

	return msg
}

func (game *TankArenaGame) GetVizFrameJson() []byte {
	res, _ := json.Marshal(game.GetVizFrame())
	return res
}
