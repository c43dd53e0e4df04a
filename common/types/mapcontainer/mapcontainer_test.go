package mapcontainer_test

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytearena/tankarena/common/types/mapcontainer"
	"github.com/bytearena/tankarena/common/utils/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallMap = `{
	"meta": { "name": "small", "maxcontestants": 1 },
	"data": {
		"field": { "min": [0, 0], "max": [10, 5] },
		"starts": [{ "id": "one", "point": [1, 1], "heading": [0, 1] }],
		"targets": [[5, 2.5]],
		"powerups": [{ "point": [9, 4], "type": "R" }]
	}
}`

func TestParse(t *testing.T) {
	m, err := mapcontainer.Parse([]byte(smallMap))
	require.NoError(t, err)

	assert.Equal(t, "small", m.Meta.Name)
	assert.Equal(t, 10.0, m.Data.Field.Max.X)
	require.Len(t, m.Data.Starts, 1)
	assert.True(t, m.Data.Starts[0].Heading.ToVector2().Equals(vector.MakeVector2(0, 1)))
	require.Len(t, m.Data.PowerUps, 1)
	assert.Equal(t, mapcontainer.PowerUpTypeRange, m.Data.PowerUps[0].Type)
}

func TestParseRejectsInvalidMaps(t *testing.T) {
	_, err := mapcontainer.Parse([]byte(`{"data": {"field": {"min": [0,0], "max": [0,10]}}}`))
	assert.Error(t, err)

	_, err = mapcontainer.Parse([]byte(`{"data": {"field": {"min": [0,0], "max": [10,10]}, "starts": []}}`))
	assert.Error(t, err)

	_, err = mapcontainer.Parse([]byte(`{"data": {"field": {"min": [0,0], "max": [10,10]}, "starts": [{"id":"a","point":[1,1]}], "powerups": [{"point":[2,2],"type":"X"}]}}`))
	assert.Error(t, err)

	_, err = mapcontainer.Parse([]byte(`{"data": {"field": {"min": [0,0], "max": [10,10]}, "starts": [{"id":"a","point":[11,1]}]}}`))
	assert.Error(t, err)

	_, err = mapcontainer.Parse([]byte(`{"data": {"field": {"min": [0,0,0], "max": [10,10]}}}`))
	assert.Error(t, err)

	_, err = mapcontainer.Parse([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "tankarena-map")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	filename := filepath.Join(dir, "map.json")
	require.NoError(t, ioutil.WriteFile(filename, []byte(smallMap), 0644))

	m, err := mapcontainer.Load(filename)
	require.NoError(t, err)
	assert.Len(t, m.Data.Targets, 1)

	_, err = mapcontainer.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestDefaultMapIsValidAndSerializable(t *testing.T) {
	m := mapcontainer.DefaultMap()
	require.NoError(t, m.Validate())

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	reparsed, err := mapcontainer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, len(m.Data.Targets), len(reparsed.Data.Targets))
	assert.Equal(t, len(m.Data.PowerUps), len(reparsed.Data.PowerUps))
}

func TestFieldClamp(t *testing.T) {
	field := mapcontainer.MapField{Min: mapcontainer.MakeMapPoint(0, 0), Max: mapcontainer.MakeMapPoint(20, 20)}

	assert.True(t, field.Clamp(vector.MakeVector2(-3, 25), 0.5).Equals(vector.MakeVector2(0.5, 19.5)))
	assert.True(t, field.Clamp(vector.MakeVector2(4, 4), 0.5).Equals(vector.MakeVector2(4, 4)))
	assert.True(t, field.Contains(vector.MakeVector2(20, 0)))
	assert.False(t, field.Contains(vector.MakeVector2(20.01, 0)))
}
