package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bytearena/tankarena/vizserver/types"
	"github.com/gorilla/mux"
)

type gameInfo struct {
	Id          string      `json:"id"`
	Name        string      `json:"name"`
	Tps         int         `json:"tps"`
	Watchers    int         `json:"watchers"`
	Contestants interface{} `json:"contestants"`
	Map         interface{} `json:"map"`
}

// Game describes a game as JSON; the websocket endpoint lives at the same path + /ws.
func Game(vizgames *types.VizGameMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		vizgame := vizgames.Get(vars["id"])

		if vizgame == nil {
			http.Error(w, "GAME NOT FOUND !", http.StatusNotFound)
			return
		}

		description := vizgame.GetGame()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(gameInfo{
			Id:          description.GetId(),
			Name:        description.GetName(),
			Tps:         description.GetTps(),
			Watchers:    vizgame.GetNumberWatchers(),
			Contestants: description.GetContestants(),
			Map:         description.GetMapContainer(),
		})
	}
}
