package types

import (
	"time"

	"github.com/bytearena/tankarena/common/types/mapcontainer"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type GameDescriptionInterface interface {
	GetId() string
	GetName() string
	GetTps() int
	GetDuration() time.Duration
	GetSeed() int64
	GetContestants() []Contestant
	GetMapContainer() *mapcontainer.MapContainer
}

type Contestant struct {
	AgentName string `json:"agent"`
	StartId   string `json:"start"`
}

type GameDescription struct {
	id           string
	name         string
	tps          int
	duration     time.Duration
	seed         int64
	contestants  []Contestant
	mapContainer *mapcontainer.MapContainer
}

// NewGameDescription assigns one map start to each agent, in order.
// A zero duration means the game runs until stopped.
func NewGameDescription(name string, tps int, duration time.Duration, seed int64, agentNames []string, mapContainer *mapcontainer.MapContainer) (*GameDescription, error) {

	if mapContainer == nil {
		return nil, errors.New("no map given")
	}

	if tps <= 0 {
		return nil, errors.Errorf("tps must be positive, got %d", tps)
	}

	if duration < 0 {
		return nil, errors.Errorf("duration must not be negative, got %s", duration)
	}

	if len(agentNames) == 0 {
		return nil, errors.New("at least one contestant is required")
	}

	starts := mapContainer.Data.Starts
	if len(agentNames) > len(starts) {
		return nil, errors.Errorf("map %q has %d start(s) but %d contestants were given", mapContainer.Meta.Name, len(starts), len(agentNames))
	}

	contestants := make([]Contestant, len(agentNames))
	for i, agentName := range agentNames {
		if agentName == "" {
			return nil, errors.Errorf("contestant #%d has no agent name", i)
		}

		contestants[i] = Contestant{
			AgentName: agentName,
			StartId:   starts[i].Id,
		}
	}

	if name == "" {
		name = mapContainer.Meta.Name
	}

	return &GameDescription{
		id:           uuid.NewV4().String(),
		name:         name,
		tps:          tps,
		duration:     duration,
		seed:         seed,
		contestants:  contestants,
		mapContainer: mapContainer,
	}, nil
}

func (d *GameDescription) GetId() string {
	return d.id
}

func (d *GameDescription) GetName() string {
	return d.name
}

func (d *GameDescription) GetTps() int {
	return d.tps
}

// GetDt is the simulated duration of one tick, in seconds.
func (d *GameDescription) GetDt() float64 {
	return 1.0 / float64(d.tps)
}

func (d *GameDescription) GetDuration() time.Duration {
	return d.duration
}

// GetMaxTicks returns 0 when the game is not bounded in time.
func (d *GameDescription) GetMaxTicks() int {
	if d.duration <= 0 {
		return 0
	}

	return int(d.duration.Seconds() * float64(d.tps))
}

func (d *GameDescription) GetSeed() int64 {
	return d.seed
}

func (d *GameDescription) GetContestants() []Contestant {
	return d.contestants
}

func (d *GameDescription) GetMapContainer() *mapcontainer.MapContainer {
	return d.mapContainer
}
