package vizserver

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/bytearena/tankarena/common/healthcheck"
	"github.com/bytearena/tankarena/common/types"
	apphandler "github.com/bytearena/tankarena/vizserver/handler"
	viztypes "github.com/bytearena/tankarena/vizserver/types"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type VizService struct {
	addr       string
	vizgames   *viztypes.VizGameMap
	health     *healthcheck.HealthCheck
	httpserver *http.Server
}

func NewVizService(addr string) *VizService {
	viz := &VizService{
		addr:     addr,
		vizgames: viztypes.NewVizGameMap(),
		health:   healthcheck.NewHealthCheck(),
	}

	viz.health.Register("games", func() (error, bool) {
		return nil, viz.vizgames.Size() > 0
	})

	viz.httpserver = &http.Server{
		Addr:    addr,
		Handler: viz.Router(),
	}

	return viz
}

// AddGame publishes a game; frames is typically the channel returned by the
// arena server's SubscribeStateObservation.
func (viz *VizService) AddGame(gameDescription types.GameDescriptionInterface, frames <-chan []byte) *viztypes.VizGame {
	vizgame := viztypes.NewVizGame(gameDescription)
	viz.vizgames.Set(gameDescription.GetId(), vizgame)

	go vizgame.Follow(frames)

	return vizgame
}

// RegisterHealthCheck adds a check to the /health endpoint.
func (viz *VizService) RegisterHealthCheck(name string, handler healthcheck.HealthCheckHandler) {
	viz.health.Register(name, handler)
}

func (viz *VizService) GetGames() []*viztypes.VizGame {
	return viz.vizgames.ToArray()
}

func (viz *VizService) Router() http.Handler {
	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(viz.vizgames)),
	)).Methods("GET")

	router.HandleFunc("/health", viz.health.HttpHandler).Methods("GET")

	router.Handle("/arena/{id:[a-zA-Z0-9\\-]+}", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Game(viz.vizgames)),
	)).Methods("GET")

	router.Handle("/arena/{id:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(viz.vizgames)),
	)).Methods("GET")

	return router
}

// ListenAndServe blocks until the service is stopped; it then returns http.ErrServerClosed.
func (viz *VizService) ListenAndServe() error {
	log.Println("VIZ Listening on " + viz.addr)

	return viz.httpserver.ListenAndServe()
}

func (viz *VizService) Stop(ctx context.Context) error {
	return viz.httpserver.Shutdown(ctx)
}
