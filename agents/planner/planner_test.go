package planner_test

import (
	"testing"

	"github.com/bytearena/tankarena/agents/planner"
	"github.com/bytearena/tankarena/arenaserver/protocol"
	"github.com/bytearena/tankarena/common/utils/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(perception protocol.AgentPerception) []protocol.AgentMutationMessage {
	queue := protocol.NewMutationQueue()
	planner.MakePlannerAgent().Update(perception, queue)
	return queue.Resolve()
}

func restingTank(x, y float64) protocol.TankSnapshot {
	return protocol.TankSnapshot{
		Position:  vector.MakeVector2(x, y),
		Heading:   vector.MakeVector2(1, 0),
		ShotRange: 5,
	}
}

func TestMovesToFirstWayPoint(t *testing.T) {
	mutations := update(protocol.AgentPerception{
		Tank: restingTank(0, 0),
		PowerUps: []protocol.PowerUpSnapshot{
			{Position: vector.MakeVector2(10, 10), Type: "P"},
			{Position: vector.MakeVector2(2, 6), Type: "R"},
		},
	})

	require.Len(t, mutations, 1)
	assert.Equal(t, protocol.MutationMethod.Move, mutations[0].GetMethod())

	// (2, 6) first; the x offset is the smaller one so the tank goes to (2, 0)
	move, err := mutations[0].GetVector()
	require.NoError(t, err)
	assert.True(t, move.Equals(vector.MakeVector2(2, 0)), move.String())
}

func TestDoesNotReplanWhileMoving(t *testing.T) {
	tank := restingTank(0, 0)
	tank.Velocity = vector.MakeVector2(2, 0)

	mutations := update(protocol.AgentPerception{
		Tank:     tank,
		PowerUps: []protocol.PowerUpSnapshot{{Position: vector.MakeVector2(10, 10), Type: "P"}},
	})
	assert.Empty(t, mutations)

	tank.Velocity = vector.MakeNullVector2()
	tank.AngularVelocity = 0.1
	mutations = update(protocol.AgentPerception{
		Tank:     tank,
		PowerUps: []protocol.PowerUpSnapshot{{Position: vector.MakeVector2(10, 10), Type: "P"}},
	})
	assert.Empty(t, mutations)
}

func TestShootsLastTargetInRange(t *testing.T) {
	tank := restingTank(0, 0)
	tank.Velocity = vector.MakeVector2(0, 1)

	mutations := update(protocol.AgentPerception{
		Tank: tank,
		Targets: []protocol.TargetSnapshot{
			{Id: "a", Position: vector.MakeVector2(3, 0)},
			{Id: "b", Position: vector.MakeVector2(0, -4)},
			{Id: "c", Position: vector.MakeVector2(20, 0)},
		},
	})

	require.Len(t, mutations, 1)
	assert.Equal(t, protocol.MutationMethod.Shoot, mutations[0].GetMethod())
	shot, _ := mutations[0].GetVector()
	assert.True(t, shot.Equals(vector.MakeVector2(0, -4)))
}

func TestStillMovesWithManyTargetsInRange(t *testing.T) {
	targets := make([]protocol.TargetSnapshot, 0)
	for i := 0; i < protocol.MaxMutationsPerTick+2; i++ {
		targets = append(targets, protocol.TargetSnapshot{Position: vector.MakeVector2(1, 0.1*float64(i))})
	}

	queue := protocol.NewMutationQueue()
	planner.MakePlannerAgent().Update(protocol.AgentPerception{
		Tank:     restingTank(0, 0),
		Targets:  targets,
		PowerUps: []protocol.PowerUpSnapshot{{Position: vector.MakeVector2(6, 0), Type: "P"}},
	}, queue)

	assert.Equal(t, 0, queue.Dropped())

	mutations := queue.Resolve()
	require.Len(t, mutations, 2)
	assert.Equal(t, protocol.MutationMethod.Shoot, mutations[0].GetMethod())
	assert.Equal(t, protocol.MutationMethod.Move, mutations[1].GetMethod())

	shot, _ := mutations[0].GetVector()
	assert.True(t, shot.Equals(targets[len(targets)-1].Position), shot.String())

	move, _ := mutations[1].GetVector()
	assert.True(t, move.Equals(vector.MakeVector2(6, 0)), move.String())
}

func TestIdentity(t *testing.T) {
	a := planner.MakePlannerAgent()
	assert.Equal(t, "planner", a.GetName())
	assert.Equal(t, 5, a.GetPeriod())
}

func TestPatrolsWithoutObjectives(t *testing.T) {
	mutations := update(protocol.AgentPerception{Tank: restingTank(3, 3)})

	require.Len(t, mutations, 1)
	move, _ := mutations[0].GetVector()
	assert.True(t, move.Equals(vector.MakeVector2(1, 0)))

	// standing on the only power-up gives no move either
	mutations = update(protocol.AgentPerception{
		Tank:     restingTank(3, 3),
		PowerUps: []protocol.PowerUpSnapshot{{Position: vector.MakeVector2(3, 3), Type: "P"}},
	})
	require.Len(t, mutations, 1)
	move, _ = mutations[0].GetVector()
	assert.True(t, move.Equals(vector.MakeVector2(1, 0)))
}
