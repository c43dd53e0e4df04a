package game

import (
	"github.com/bytearena/tankarena/arenaserver/protocol"
)

// GameInterface is what the arena server drives, one Step per tick.
type GameInterface interface {
	ImplementsGameInterface()
	Step(ticknum int, dt float64, mutations []protocol.AgentMutationBatch)
	GetPerception(playerIdx int) (protocol.AgentPerception, bool)
	GetVizFrameJson() []byte
	PopNewLogLines() []string
}
