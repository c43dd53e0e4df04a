package agent

import (
	"strconv"

	"github.com/bytearena/tankarena/arenaserver/protocol"
	"github.com/bytearena/tankarena/common/utils"
	uuid "github.com/satori/go.uuid"
)

// AgentProxy binds an agent to the tank it drives in the arena.
type AgentProxy struct {
	proxyUUID uuid.UUID
	playerIdx int
	agent     AgentInterface
	queue     *protocol.MutationQueue
}

func MakeAgentProxy(agent AgentInterface, playerIdx int) *AgentProxy {
	return &AgentProxy{
		proxyUUID: uuid.NewV4(), // random uuid
		playerIdx: playerIdx,
		agent:     agent,
		queue:     protocol.NewMutationQueue(),
	}
}

func (proxy AgentProxy) GetProxyUUID() uuid.UUID {
	return proxy.proxyUUID
}

func (proxy AgentProxy) GetPlayerIdx() int {
	return proxy.playerIdx
}

func (proxy AgentProxy) GetAgent() AgentInterface {
	return proxy.agent
}

// Think runs one decision step of the agent and returns its resolved commands.
func (proxy *AgentProxy) Think(perception protocol.AgentPerception) protocol.AgentMutationBatch {
	proxy.queue.Reset()
	proxy.agent.Update(perception, proxy.queue)

	if dropped := proxy.queue.Dropped(); dropped > 0 {
		utils.Debug("agent", proxy.String()+" exceeded the command limit; "+strconv.Itoa(dropped)+" command(s) dropped")
	}

	return protocol.AgentMutationBatch{
		AgentId:   proxy.proxyUUID,
		PlayerIdx: proxy.playerIdx,
		Mutations: proxy.queue.Resolve(),
	}
}

func (proxy AgentProxy) String() string {
	return "<AgentProxy(" + proxy.agent.GetName() + "#" + strconv.Itoa(proxy.playerIdx) + ", " + proxy.proxyUUID.String() + ")>"
}
