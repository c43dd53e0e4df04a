package types

import (
	"fmt"

	"github.com/bytearena/tankarena/common/types"
	"github.com/bytearena/tankarena/common/types/mapcontainer"
	"github.com/bytearena/tankarena/common/utils"
)

type VizGame struct {
	gameDescription types.GameDescriptionInterface
	pool            *WatcherMap
	done            chan struct{}
}

func NewVizGame(gameDescription types.GameDescriptionInterface) *VizGame {
	return &VizGame{
		pool:            NewWatcherMap(),
		gameDescription: gameDescription,
		done:            make(chan struct{}),
	}
}

func (vizgame *VizGame) GetGame() types.GameDescriptionInterface {
	return vizgame.gameDescription
}

func (vizgame *VizGame) GetId() string {
	return vizgame.gameDescription.GetId()
}

func (vizgame *VizGame) GetName() string {
	return vizgame.gameDescription.GetName()
}

func (vizgame *VizGame) GetTps() int {
	return vizgame.gameDescription.GetTps()
}

type VizInitMessageData struct {
	GameId string                     `json:"gameid"`
	Tps    int                        `json:"tps"`
	Map    *mapcontainer.MapContainer `json:"map"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

// SetWatcher greets the watcher with the map, then streams it every frame.
func (vizgame *VizGame) SetWatcher(watcher *Watcher) {
	initMsg := VizInitMessage{
		Type: "init",
		Data: VizInitMessageData{
			GameId: vizgame.GetId(),
			Tps:    vizgame.GetTps(),
			Map:    vizgame.gameDescription.GetMapContainer(),
		},
	}

	err := watcher.WriteJSON(initMsg)
	if err != nil {
		utils.Debug("viz-server", "Could not send VizInitMessage JSON;"+err.Error())
		return
	}

	vizgame.pool.Set(watcher.GetId(), watcher)
}

func (vizgame *VizGame) RemoveWatcher(watcherid string) {
	vizgame.pool.Remove(watcherid)
}

func (vizgame *VizGame) GetNumberWatchers() int {
	return vizgame.pool.Size()
}

// Broadcast sends a frame (a JSON encoded VizMessage) to every watcher; watchers
// that cannot be written to are dropped.
func (vizgame *VizGame) Broadcast(frame []byte) {
	msg := []byte(fmt.Sprintf("{\"type\":\"frame\", \"data\": %s}", frame))

	vizgame.pool.Each(func(id string, item interface{}) {
		watcher, ok := item.(*Watcher)
		if !ok {
			return
		}

		if err := watcher.WriteMessage(msg); err != nil {
			utils.Debug("viz-server", "Dropping watcher "+id+"; "+err.Error())
			vizgame.pool.Remove(id)
			watcher.Close()
		}
	})
}

// Follow broadcasts every frame received on frames, until the channel is closed.
func (vizgame *VizGame) Follow(frames <-chan []byte) {
	defer close(vizgame.done)

	for frame := range frames {
		vizgame.Broadcast(frame)
	}

	vizgame.pool.Each(func(id string, item interface{}) {
		if watcher, ok := item.(*Watcher); ok {
			watcher.WriteJSON(map[string]string{"type": "end"})
		}
	})
}

// Done is closed when the followed game has ended.
func (vizgame *VizGame) Done() <-chan struct{} {
	return vizgame.done
}
