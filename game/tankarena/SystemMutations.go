package tankarena

import (
	"strconv"

	"github.com/bytearena/tankarena/arenaserver/protocol"
	"github.com/bytearena/tankarena/common/utils"
)

func systemMutations(game *TankArenaGame, mutations []protocol.AgentMutationBatch) {

	for _, batch := range mutations {

		entityresult := game.getPlayerTank(batch.PlayerIdx, game.tankComponent, game.physicalBodyComponent)
		if entityresult == nil {
			utils.Debug("tankarena-mutation", "Discarding mutations for unknown player "+strconv.Itoa(batch.PlayerIdx))
			continue
		}

		tankAspect := game.CastTank(entityresult.Components[game.tankComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		// Ordering actions
		// This is important because shooting is taken from the position of the tank before it moves
		// 1. Non-movement actions (shoot)
		// 2. Movement actions (turn, then move so that it overrides the heading goal)
		for _, method := range protocol.MutationApplicationOrder {

			mutation, ok := protocol.FindLastMutation(batch.Mutations, method)
			if !ok {
				continue
			}

			arg, err := mutation.GetVector()
			if err != nil {
				utils.Debug("tankarena-mutation", "Failed to decode mutation coming from agent "+batch.AgentId.String()+"; "+err.Error())
				continue
			}

			switch method {
			case protocol.MutationMethod.Shoot:
				tankAspect.PushShot(arg)
			case protocol.MutationMethod.Turn:
				tankAspect.SetTurnGoal(arg)
			case protocol.MutationMethod.Move:
				tankAspect.SetMoveGoal(physicalAspect.GetPosition(), arg)
			}
		}
	}
}
