package arenaserver

import (
	"runtime"
	"strconv"
	"time"

	"github.com/bytearena/tankarena/common/types"
	"github.com/bytearena/tankarena/common/utils"
	"github.com/pkg/errors"
)

// Start runs the game in real time, one tick every 1/tps second. The returned
// channel is closed once the game is over or Stop has been called.
func (server *Server) Start() (chan struct{}, error) {

	if !server.markRunning() {
		return nil, errors.New("server already started")
	}

	utils.Debug("arena", "Starting game "+server.gameDescription.GetId()+" at "+strconv.Itoa(server.tickspersec)+" tps")

	stopChannel := make(chan bool)
	go server.monitoring(stopChannel)

	server.AddTearDownCall(func() error {
		close(stopChannel)
		return nil
	})

	server.startTicking()

	return server.finished, nil
}

func (server *Server) startTicking() {

	tickduration := time.Duration((1000000 / time.Duration(server.tickspersec)) * time.Microsecond)
	ticker := time.NewTicker(tickduration)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-server.stopticking:
				{
					utils.Debug("core-loop", "Received stop ticking signal")
					server.TearDown()
					return
				}
			case <-ticker.C:
				{
					server.DoTick()

					if server.IsOver() {
						utils.Debug("core-loop", "Game over after "+strconv.Itoa(server.getTurn())+" ticks")
						server.TearDown()
						return
					}

					if (server.getTurn() % server.tickspersec) == 0 {
						// Debug : Nombre de goroutines
						utils.Debug("core-loop", "Goroutines in flight : "+strconv.Itoa(runtime.NumGoroutine()))
					}
				}
			}
		}
	}()
}

// RunHeadless plays every tick of the game back to back, without waiting between
// ticks. progress, when not nil, is called after each tick.
func (server *Server) RunHeadless(progress func(turn int)) error {

	if server.maxticks <= 0 {
		return errors.New("a headless game needs a duration")
	}

	if !server.markRunning() {
		return errors.New("server already started")
	}

	defer server.TearDown()

	for !server.IsOver() {
		server.DoTick()

		if progress != nil {
			progress(server.getTurn())
		}
	}

	return nil
}

// Stop interrupts a game started with Start; it does not block.
func (server *Server) Stop() {
	utils.Debug("arena-server", "TearDown from stop")

	if server.markRunning() {
		// never started; it cannot be started anymore either
		server.TearDown()
		return
	}

	go func() {
		select {
		case server.stopticking <- true:
		case <-server.finished:
		}
	}()
}

// markRunning returns false when the server was already started or stopped.
func (server *Server) markRunning() bool {
	server.runningmutex.Lock()
	defer server.runningmutex.Unlock()

	if server.running {
		return false
	}

	server.running = true
	return true
}

func (server *Server) AddTearDownCall(fn types.TearDownCallback) {
	server.tearDownCallbacksMutex.Lock()
	defer server.tearDownCallbacksMutex.Unlock()

	server.tearDownCallbacks = append(server.tearDownCallbacks, fn)
}

// TearDown runs the teardown callbacks once, closes the observers and releases the
// channel returned by Start.
func (server *Server) TearDown() {
	server.stopOnce.Do(func() {
		utils.Debug("arena", "teardown")

		server.tearDownCallbacksMutex.Lock()

		for i := len(server.tearDownCallbacks) - 1; i >= 0; i-- {
			utils.Debug("teardown", "Executing TearDownCallback")
			if err := server.tearDownCallbacks[i](); err != nil {
				utils.Debug("teardown", "TearDownCallback failed: "+err.Error())
			}
		}

		// Reset to avoid calling teardown callback multiple times
		server.tearDownCallbacks = make([]types.TearDownCallback, 0)

		server.tearDownCallbacksMutex.Unlock()

		server.closeStateObservers()
		close(server.finished)
	})
}
