package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/bytearena/tankarena/agents"
	"github.com/bytearena/tankarena/common/types/mapcontainer"
	"github.com/bytearena/tankarena/common/utils"
	"github.com/pkg/errors"
)

const (
	TIME_BEFORE_FORCE_QUIT = 10 * time.Second
)

func main() {
	app := makeapp()

	if err := app.Run(os.Args); err != nil {
		utils.FailWith(err)
	}
}

var gameFlags = []cli.Flag{
	cli.StringFlag{Name: "map", Value: "", Usage: "Map file (JSON); the built-in map when empty"},
	cli.IntFlag{Name: "tps", Value: 20, Usage: "Number of ticks per second"},
	cli.StringSliceFlag{Name: "agent", Usage: "Agent driving a tank, once per tank (" + strings.Join(agents.Names(), ", ") + ")"},
	cli.DurationFlag{Name: "duration", Value: 60 * time.Second, Usage: "Game duration; 0 runs until interrupted"},
	cli.Int64Flag{Name: "seed", Value: 1, Usage: "Seed of the respawn placement"},
	cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Description = "Tank arena simulation"
	app.Name = "tankarena"
	app.Usage = "Run AI driven tanks in an arena"

	app.Commands = []cli.Command{
		{
			Name:    "run",
			Aliases: []string{"r"},
			Usage:   "Run a game in real time",
			Flags: append([]cli.Flag{
				cli.StringFlag{Name: "viz", Value: "", Usage: "Address serving the visualisation websocket (eg :8080); disabled when empty"},
			}, gameFlags...),
			Action: func(c *cli.Context) error {
				utils.SetDebug(c.Bool("debug"))
				return runAction(gameConfigFromContext(c), c.String("viz"))
			},
		},
		{
			Name:    "headless",
			Aliases: []string{"h"},
			Usage:   "Play games as fast as possible and report the scores",
			Flags: append([]cli.Flag{
				cli.IntFlag{Name: "matches", Value: 1, Usage: "Number of games; game n is played with seed+n"},
			}, gameFlags...),
			Action: func(c *cli.Context) error {
				utils.SetDebug(c.Bool("debug"))
				return headlessAction(gameConfigFromContext(c), c.Int("matches"))
			},
		},
		{
			Name:  "plan",
			Usage: "Print the shortest tour from a tank through objectives",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "tank", Value: "0,0", Usage: "Tank position, as x,y"},
				cli.StringSliceFlag{Name: "objective", Usage: "Objective position, as x,y; repeatable"},
				cli.BoolFlag{Name: "dump", Usage: "Dump the plan structure"},
			},
			Action: func(c *cli.Context) error {
				return planAction(c.String("tank"), c.StringSlice("objective"), c.Bool("dump"))
			},
		},
	}

	return app
}

type gameConfig struct {
	mapFile  string
	tps      int
	agents   []string
	duration time.Duration
	seed     int64
}

func gameConfigFromContext(c *cli.Context) gameConfig {
	config := gameConfig{
		mapFile:  c.String("map"),
		tps:      c.Int("tps"),
		agents:   c.StringSlice("agent"),
		duration: c.Duration("duration"),
		seed:     c.Int64("seed"),
	}

	if len(config.agents) == 0 {
		config.agents = []string{"hunter", "planner"}
	}

	return config
}

func loadMap(filename string) (*mapcontainer.MapContainer, error) {
	if filename == "" {
		return mapcontainer.DefaultMap(), nil
	}

	arenaMap, err := mapcontainer.Load(filename)
	if err != nil {
		return nil, errors.Wrap(err, "could not load map")
	}

	return arenaMap, nil
}

func signalHandler() chan os.Signal {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	return c
}
