package tankarena

import (
	"math"

	"github.com/bytearena/tankarena/common/utils/trigo"
	"github.com/bytearena/tankarena/common/utils/vector"
)

// systemSteering turns the goals of each tank into body velocities.
// A tank always faces its move direction before driving.
func systemSteering(game *TankArenaGame, dt float64) {
	for _, entityresult := range sortedResults(game.tanksView) {
		tankAspect := game.CastTank(entityresult.Components[game.tankComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		position := physicalAspect.GetPosition()

		tankAspect.positionBeforeStep = position
		tankAspect.landing = false
		tankAspect.driving = false
		tankAspect.arriving = false

		drive := vector.MakeNullVector2()
		angularVelocity := 0.0

		var desired vector.Vector2
		hasDesired := false
		distance := 0.0

		if goal, ok := tankAspect.GetMoveGoal(); ok {
			offset := goal.Sub(position)
			distance = offset.Mag()

			if distance <= arrivalEpsilon {
				physicalAspect.SetPosition(goal)
				tankAspect.ClearMoveGoal()
			} else {
				desired = offset.Unit()
				hasDesired = true
			}
		} else if goal, ok := tankAspect.GetTurnGoal(); ok {
			desired = goal
			hasDesired = true
		}

		if hasDesired {
			diff := trigo.SignedAngleBetween(tankAspect.GetHeading(), desired)

			if math.Abs(diff) > headingEpsilon {
				if math.Abs(diff) <= TankTurnRate*dt {
					// lands exactly on the desired heading at the end of this tick
					angularVelocity = diff / dt
					tankAspect.landing = true
					tankAspect.landingHeading = desired
				} else {
					angularVelocity = math.Copysign(TankTurnRate, diff)
				}
			} else {
				tankAspect.heading = desired

				if tankAspect.hasTurnGoal {
					tankAspect.hasTurnGoal = false
				}

				if tankAspect.hasMoveGoal {
					speed := math.Min(TankSpeed, distance/dt)
					drive = desired.Scale(speed)
					tankAspect.driving = true
					tankAspect.arriving = distance <= TankSpeed*dt
				}
			}
		}

		physicalAspect.
			SetVelocity(drive.Add(tankAspect.kick)).
			SetAngularVelocity(angularVelocity)

		tankAspect.kick = decayKick(tankAspect.kick, dt)
	}
}

func decayKick(kick vector.Vector2, dt float64) vector.Vector2 {
	kick = kick.Scale(math.Max(1-KickBackDamping*dt, 0))
	if kick.MagSq() < 1e-6 {
		return vector.MakeNullVector2()
	}

	return kick
}
