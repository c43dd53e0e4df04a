package main

import (
	"github.com/bytearena/tankarena/agents"
	"github.com/bytearena/tankarena/arenaserver"
	"github.com/bytearena/tankarena/arenaserver/agent"
	"github.com/bytearena/tankarena/common/types"
	"github.com/bytearena/tankarena/game/tankarena"
	"github.com/pkg/errors"
)

type match struct {
	description *types.GameDescription
	game        *tankarena.TankArenaGame
	server      *arenaserver.Server
}

func newMatch(config gameConfig, seed int64) (*match, error) {
	arenaMap, err := loadMap(config.mapFile)
	if err != nil {
		return nil, err
	}

	players := make([]agent.AgentInterface, len(config.agents))
	specs := make([]tankarena.PlayerSpec, len(config.agents))

	for i, name := range config.agents {
		player, err := agents.New(name)
		if err != nil {
			return nil, errors.Wrapf(err, "could not create contestant #%d", i)
		}

		players[i] = player
		specs[i] = tankarena.PlayerSpec{
			Name:   player.GetName(),
			Period: player.GetPeriod(),
		}
	}

	description, err := types.NewGameDescription("", config.tps, config.duration, seed, config.agents, arenaMap)
	if err != nil {
		return nil, errors.Wrap(err, "invalid game")
	}

	game := tankarena.NewTankArenaGame(description, specs)

	server, err := arenaserver.NewServer(description, game, players)
	if err != nil {
		return nil, errors.Wrap(err, "could not create arena server")
	}

	return &match{
		description: description,
		game:        game,
		server:      server,
	}, nil
}
