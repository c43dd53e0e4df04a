package tankarena

import (
	"math"

	"github.com/bytearena/tankarena/common/utils/vector"
)

func systemPhysics(game *TankArenaGame, dt float64) {

	game.PhysicalWorld.Step(
		dt,
		8, // velocity iterations
		3, // position iterations
	)

	for _, entityresult := range sortedResults(game.tanksView) {
		tankAspect := game.CastTank(entityresult.Components[game.tankComponent])
		playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		///////////////////////////////////////////////////////////////////////
		// Tanks never leave the field
		///////////////////////////////////////////////////////////////////////
		position := physicalAspect.GetPosition()
		clamped := game.field.Clamp(position, TankBodyHalfSize)
		if clamped != position {
			physicalAspect.SetPosition(clamped)
			tankAspect.kick = vector.MakeNullVector2()
			position = clamped
		}

		///////////////////////////////////////////////////////////////////////
		// Heading
		///////////////////////////////////////////////////////////////////////
		if tankAspect.landing {
			tankAspect.heading = tankAspect.landingHeading
			physicalAspect.SetOrientation(tankAspect.heading.Angle())
			physicalAspect.SetAngularVelocity(0)

			if goal, ok := tankAspect.GetMoveGoal(); ok {
				// facing the goal now; report the drive that starts next tick
				drive := tankAspect.heading.Scale(math.Min(TankSpeed, goal.Distance(position)/dt))
				physicalAspect.SetVelocity(drive.Add(tankAspect.kick))
			}
		} else {
			tankAspect.heading = vector.MakeVector2FromAngle(physicalAspect.GetOrientation())
		}

		///////////////////////////////////////////////////////////////////////
		// Arrival and stall detection
		///////////////////////////////////////////////////////////////////////
		if goal, ok := tankAspect.GetMoveGoal(); ok && tankAspect.driving {
			if tankAspect.arriving && position.Distance(goal) <= arrivalEpsilon {
				physicalAspect.SetPosition(goal)
				tankAspect.ClearMoveGoal()
				position = goal
			} else if position.Distance(tankAspect.lastPosition) < stallEpsilon {
				tankAspect.stallCount++
				if tankAspect.stallCount >= StallTicks {
					// blocked; giving up
					tankAspect.ClearMoveGoal()
				}
			} else {
				tankAspect.stallCount = 0
			}

			tankAspect.lastPosition = position
		}

		_, moving := tankAspect.GetMoveGoal()
		_, turning := tankAspect.GetTurnGoal()
		if !moving && !turning && tankAspect.kick.IsNull() {
			// nothing left to do; reports exact zero velocities
			physicalAspect.Stop()
		}

		playerAspect.Stats.DistanceTravelled += position.Distance(tankAspect.positionBeforeStep)
	}
}
