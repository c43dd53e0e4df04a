package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bytearena/tankarena/common/utils"
	"github.com/bytearena/tankarena/vizserver"
	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
)

func runAction(config gameConfig, vizAddr string) error {

	m, err := newMatch(config, config.seed)
	if err != nil {
		return err
	}

	var vizservice *vizserver.VizService
	if vizAddr != "" {
		vizservice = vizserver.NewVizService(vizAddr)
		vizservice.AddGame(m.description, m.server.SubscribeStateObservation())
		vizservice.RegisterHealthCheck("game", func() (error, bool) {
			return nil, !m.server.IsOver()
		})

		go func() {
			if err := vizservice.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				utils.WarnWith(errors.Wrap(err, "visualisation server stopped"))
			}
		}()

		fmt.Println(chalk.Blue.Color("\nGame " + m.description.GetId() + " streamed on ws://" + vizAddr + "/arena/" + m.description.GetId() + "/ws\n"))
	}

	finished, err := m.server.Start()
	if err != nil {
		return errors.Wrap(err, "could not start game")
	}

	// Wait until the game ends or someone asks for shutdown
	select {
	case <-finished:
	case <-signalHandler():
		utils.Debug("main", "Shutdown...")
		m.server.Stop()

		select {
		case <-finished:
		case <-time.After(TIME_BEFORE_FORCE_QUIT):
			return errors.New("forced shutdown")
		}
	}

	if vizservice != nil {
		ctx, cancel := context.WithTimeout(context.Background(), TIME_BEFORE_FORCE_QUIT)
		defer cancel()

		if err := vizservice.Stop(ctx); err != nil {
			utils.WarnWith(errors.Wrap(err, "could not stop visualisation server"))
		}
	}

	printScores(m.game.GetScores())

	return nil
}
