package handler

import (
	"log"
	"net/http"

	"github.com/bytearena/tankarena/common/utils"
	"github.com/bytearena/tankarena/vizserver/types"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func Websocket(vizgames *types.VizGameMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		vizgame := vizgames.Get(vars["id"])

		if vizgame == nil {
			http.Error(w, "GAME NOT FOUND !", http.StatusNotFound)
			return
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		watcher := types.NewWatcher(c)
		vizgame.SetWatcher(watcher)

		defer func() {
			vizgame.RemoveWatcher(watcher.GetId())
			watcher.Close()
			utils.Debug("viz-server", "Watcher "+watcher.GetId()+" left")
		}()

		// Reading is mandatory to notice when the websocket is closed client side;
		// the viz sends nothing we care about.
		clientclosedsocket := make(chan struct{})
		go func(client *websocket.Conn) {
			defer close(clientclosedsocket)
			for {
				if _, _, err := client.ReadMessage(); err != nil {
					return
				}
			}
		}(c)

		select {
		case <-clientclosedsocket:
		case <-vizgame.Done():
		}
	}
}
