package handler

import (
	"html"
	"net/http"
	"strconv"

	"github.com/bytearena/tankarena/vizserver/types"
)

func Home(vizgames *types.VizGameMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<h2>Tank arena</h2>"))

		for _, vizgame := range vizgames.ToArray() {
			w.Write([]byte("<a href='/arena/" + vizgame.GetId() + "'>" + html.EscapeString(vizgame.GetName()) + " (" + strconv.Itoa(vizgame.GetNumberWatchers()) + " watchers right now)</a><br />"))
		}
	}
}
