package agent

import (
	"strconv"

	"github.com/bytearena/tankarena/arenaserver/protocol"
)

// AgentInterface is implemented by every tank AI. Update is called once per tick
// with a snapshot of the arena and pushes its commands on queue; it must not block.
type AgentInterface interface {
	GetName() string
	GetPeriod() int
	Update(perception protocol.AgentPerception, queue *protocol.MutationQueue)
}

// AgentImp provides the identification part of AgentInterface.
type AgentImp struct {
	name   string
	period int
}

func MakeAgentImp(name string, period int) AgentImp {
	return AgentImp{
		name:   name,
		period: period,
	}
}

func (agent AgentImp) GetName() string {
	return agent.name
}

// GetPeriod is informational (shown on scoreboards); it does not change how often Update is called.
func (agent AgentImp) GetPeriod() int {
	return agent.period
}

func (agent AgentImp) String() string {
	return "<Agent(" + agent.name + ", " + strconv.Itoa(agent.period) + ")>"
}
