package arenaserver

import (
	"strconv"
	"sync"

	"github.com/bytearena/tankarena/arenaserver/agent"
	"github.com/bytearena/tankarena/arenaserver/protocol"
	"github.com/bytearena/tankarena/common/types"
	"github.com/bytearena/tankarena/common/utils"
	"github.com/bytearena/tankarena/game"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// Frames not yet read by a slow observer are dropped beyond this count.
const observerBufferSize = 16

type Server struct {
	gameDescription types.GameDescriptionInterface
	game            game.GameInterface

	tickspersec int
	dt          float64
	maxticks    int

	agentproxies []*agent.AgentProxy

	currentturn      int
	currentturnmutex *sync.Mutex

	stopticking chan bool
	finished    chan struct{}
	stopOnce    sync.Once

	running      bool
	runningmutex *sync.Mutex

	stateobservers      []chan []byte
	stateobserversmutex *sync.Mutex

	debugNbMutations int
	debugNbUpdates   int
	debugmutex       *sync.Mutex

	tearDownCallbacks      []types.TearDownCallback
	tearDownCallbacksMutex *sync.Mutex
}

// NewServer binds agents[i] to player i of the game.
func NewServer(gameDescription types.GameDescriptionInterface, arena game.GameInterface, agents []agent.AgentInterface) (*Server, error) {

	if gameDescription.GetTps() <= 0 {
		return nil, errors.Errorf("invalid tps %d", gameDescription.GetTps())
	}

	if len(agents) != len(gameDescription.GetContestants()) {
		return nil, errors.Errorf("%d agent(s) for %d contestant(s)", len(agents), len(gameDescription.GetContestants()))
	}

	maxticks := 0
	if duration := gameDescription.GetDuration(); duration > 0 {
		maxticks = int(duration.Seconds() * float64(gameDescription.GetTps()))
	}

	s := &Server{
		gameDescription: gameDescription,
		game:            arena,

		tickspersec: gameDescription.GetTps(),
		dt:          1.0 / float64(gameDescription.GetTps()),
		maxticks:    maxticks,

		agentproxies: make([]*agent.AgentProxy, len(agents)),

		currentturnmutex: &sync.Mutex{},

		stopticking: make(chan bool),
		finished:    make(chan struct{}),

		runningmutex: &sync.Mutex{},

		stateobservers:      make([]chan []byte, 0),
		stateobserversmutex: &sync.Mutex{},

		debugmutex: &sync.Mutex{},

		tearDownCallbacks:      make([]types.TearDownCallback, 0),
		tearDownCallbacksMutex: &sync.Mutex{},
	}

	for playerIdx, ag := range agents {
		s.agentproxies[playerIdx] = agent.MakeAgentProxy(ag, playerIdx)
	}

	return s, nil
}

func (server *Server) GetTicksPerSecond() int {
	return server.tickspersec
}

func (server *Server) GetGameDescription() types.GameDescriptionInterface {
	return server.gameDescription
}

func (server *Server) GetGame() game.GameInterface {
	return server.game
}

func (server *Server) GetAgentProxies() []*agent.AgentProxy {
	return server.agentproxies
}

// GetMaxTicks returns 0 when the game runs until stopped.
func (server *Server) GetMaxTicks() int {
	return server.maxticks
}

func (server *Server) getTurn() int {
	server.currentturnmutex.Lock()
	defer server.currentturnmutex.Unlock()

	return server.currentturn
}

func (server *Server) nextTurn() int {
	server.currentturnmutex.Lock()
	defer server.currentturnmutex.Unlock()

	server.currentturn++
	return server.currentturn
}

// GetTurn is the number of ticks played so far.
func (server *Server) GetTurn() int {
	return server.getTurn()
}

// IsOver reports whether the game has played all of its ticks.
func (server *Server) IsOver() bool {
	return server.maxticks > 0 && server.getTurn() >= server.maxticks
}

// DoTick runs one tick: every agent decides on the perception of the previous
// tick, then the game steps once with all of their commands.
func (server *Server) DoTick() {

	turn := server.nextTurn()

	dolog := (turn % server.tickspersec) == 0

	if dolog {
		utils.Debug("core-loop", "######## Tick ######## "+strconv.Itoa(turn))
	}

	///////////////////////////////////////////////////////////////////////////
	// Les agents décident, chacun sur sa perception
	///////////////////////////////////////////////////////////////////////////
	batches := make([]protocol.AgentMutationBatch, 0, len(server.agentproxies))
	nbmutations := 0

	for _, proxy := range server.agentproxies {
		perception, ok := server.game.GetPerception(proxy.GetPlayerIdx())
		if !ok {
			utils.Debug("core-loop", "No perception for "+proxy.String())
			continue
		}

		if dolog && utils.IsDebug() {
			utils.Debug("perception", proxy.String()+"\n"+spew.Sdump(perception))
		}

		batch := proxy.Think(perception)
		nbmutations += len(batch.Mutations)
		batches = append(batches, batch)
	}

	///////////////////////////////////////////////////////////////////////////
	// Le jeu avance d'un pas
	///////////////////////////////////////////////////////////////////////////
	server.game.Step(turn, server.dt, batches)

	for _, line := range server.game.PopNewLogLines() {
		utils.Debug("game", line)
	}

	server.debugmutex.Lock()
	server.debugNbMutations += nbmutations
	server.debugNbUpdates++
	server.debugmutex.Unlock()

	///////////////////////////////////////////////////////////////////////////
	// On pousse l'état aux observateurs (viz)
	///////////////////////////////////////////////////////////////////////////
	server.stateobserversmutex.Lock()
	observers := server.stateobservers
	server.stateobserversmutex.Unlock()

	if len(observers) > 0 {
		frame := server.game.GetVizFrameJson()
		for _, observer := range observers {
			select {
			case observer <- frame:
			default:
				// observer lagging behind; frame dropped
			}
		}
	}
}

// SubscribeStateObservation returns a channel receiving the viz frame of every tick.
// It is closed when the server tears down.
func (server *Server) SubscribeStateObservation() chan []byte {
	ch := make(chan []byte, observerBufferSize)

	server.stateobserversmutex.Lock()
	server.stateobservers = append(server.stateobservers, ch)
	server.stateobserversmutex.Unlock()

	return ch
}

func (server *Server) closeStateObservers() {
	server.stateobserversmutex.Lock()
	defer server.stateobserversmutex.Unlock()

	for _, observer := range server.stateobservers {
		close(observer)
	}

	server.stateobservers = make([]chan []byte, 0)
}
