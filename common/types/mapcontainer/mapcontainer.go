package mapcontainer

import (
	"encoding/json"
	"io/ioutil"

	"github.com/bytearena/tankarena/common/utils/number"
	"github.com/bytearena/tankarena/common/utils/vector"
	"github.com/pkg/errors"
)

type MapContainer struct {
	Meta struct {
		Name           string `json:"name"`
		Readme         string `json:"readme"`
		MaxContestants int    `json:"maxcontestants"`
		Date           string `json:"date"`
	} `json:"meta"`
	Data struct {
		Field    MapField     `json:"field"`
		Starts   []MapStart   `json:"starts"`
		Targets  []MapPoint   `json:"targets"`
		PowerUps []MapPowerUp `json:"powerups"`
	} `json:"data"`
}

type MapPoint struct {
	X float64
	Y float64
}

func MakeMapPoint(x, y float64) MapPoint {
	return MapPoint{X: x, Y: y}
}

func (p MapPoint) ToVector2() vector.Vector2 {
	return vector.MakeVector2(p.X, p.Y)
}

func (p MapPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{
		number.ToFixed(p.X, 5),
		number.ToFixed(p.Y, 5),
	})
}

func (a *MapPoint) UnmarshalJSON(b []byte) error {
	var floats []float64
	if err := json.Unmarshal(b, &floats); err != nil {
		return err
	}

	if len(floats) != 2 {
		return errors.Errorf("a map point has exactly 2 coordinates, got %d", len(floats))
	}

	a.X = floats[0]
	a.Y = floats[1]

	return nil
}

// MapField is the playable rectangle; entities never leave it.
type MapField struct {
	Min MapPoint `json:"min"`
	Max MapPoint `json:"max"`
}

func (f MapField) Contains(p vector.Vector2) bool {
	return p.GetX() >= f.Min.X && p.GetX() <= f.Max.X &&
		p.GetY() >= f.Min.Y && p.GetY() <= f.Max.Y
}

// Clamp returns p moved inside the field shrunk by margin on each side.
func (f MapField) Clamp(p vector.Vector2, margin float64) vector.Vector2 {
	return vector.MakeVector2(
		number.Clamp(p.GetX(), f.Min.X+margin, f.Max.X-margin),
		number.Clamp(p.GetY(), f.Min.Y+margin, f.Max.Y-margin),
	)
}

type MapStart struct {
	Id      string   `json:"id"`
	Point   MapPoint `json:"point"`
	Heading MapPoint `json:"heading"`
}

const (
	PowerUpTypePoints = "P"
	PowerUpTypeRange  = "R"
)

type MapPowerUp struct {
	Point MapPoint `json:"point"`
	Type  string   `json:"type"`
}

func (m *MapContainer) Validate() error {
	field := m.Data.Field

	if field.Max.X <= field.Min.X || field.Max.Y <= field.Min.Y {
		return errors.Errorf("map field is empty: min %v, max %v", field.Min, field.Max)
	}

	if len(m.Data.Starts) == 0 {
		return errors.New("map has no start point")
	}

	for _, start := range m.Data.Starts {
		if !field.Contains(start.Point.ToVector2()) {
			return errors.Errorf("start %q lies outside the field", start.Id)
		}
	}

	for i, target := range m.Data.Targets {
		if !field.Contains(target.ToVector2()) {
			return errors.Errorf("target #%d lies outside the field", i)
		}
	}

	for i, powerup := range m.Data.PowerUps {
		if powerup.Type != PowerUpTypePoints && powerup.Type != PowerUpTypeRange {
			return errors.Errorf("power-up #%d has unknown type %q (expected %q or %q)", i, powerup.Type, PowerUpTypePoints, PowerUpTypeRange)
		}

		if !field.Contains(powerup.Point.ToVector2()) {
			return errors.Errorf("power-up #%d lies outside the field", i)
		}
	}

	return nil
}

func Parse(data []byte) (*MapContainer, error) {
	var m MapContainer
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "could not parse map JSON")
	}

	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid map")
	}

	return &m, nil
}

func Load(filename string) (*MapContainer, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read map %s", filename)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load map %s", filename)
	}

	return m, nil
}

// DefaultMap is the built-in 20x20 arena used when no map file is given.
func DefaultMap() *MapContainer {
	m := &MapContainer{}

	m.Meta.Name = "square"
	m.Meta.Readme = "Built-in 20x20 arena"
	m.Meta.MaxContestants = 2

	m.Data.Field = MapField{
		Min: MakeMapPoint(0, 0),
		Max: MakeMapPoint(20, 20),
	}

	m.Data.Starts = []MapStart{
		{Id: "one", Point: MakeMapPoint(3, 3), Heading: MakeMapPoint(1, 0)},
		{Id: "two", Point: MakeMapPoint(17, 17), Heading: MakeMapPoint(-1, 0)},
	}

	m.Data.Targets = []MapPoint{
		MakeMapPoint(6, 14),
		MakeMapPoint(10, 10),
		MakeMapPoint(14, 6),
		MakeMapPoint(4, 10),
		MakeMapPoint(16, 10),
	}

	m.Data.PowerUps = []MapPowerUp{
		{Point: MakeMapPoint(3, 17), Type: PowerUpTypePoints},
		{Point: MakeMapPoint(17, 3), Type: PowerUpTypePoints},
		{Point: MakeMapPoint(10, 4), Type: PowerUpTypeRange},
		{Point: MakeMapPoint(10, 16), Type: PowerUpTypeRange},
	}

	return m
}

/*
{
    "meta": {
        "name": "square",
        "readme": "Built-in 20x20 arena",
        "maxcontestants": 2
    },
    "data": {
        "field": { "min": [0, 0], "max": [20, 20] },
        "starts": [
            { "id": "one", "point": [3, 3], "heading": [1, 0] },
            { "id": "two", "point": [17, 17], "heading": [-1, 0] }
        ],
        "targets": [[6, 14], [10, 10]],
        "powerups": [
            { "point": [3, 17], "type": "P" },
            { "point": [10, 4], "type": "R" }
        ]
    }
}
*/
