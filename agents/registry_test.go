package agents_test

import (
	"testing"

	"github.com/bytearena/tankarena/agents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, name := range agents.Names() {
		a, err := agents.New(name)
		require.NoError(t, err)
		assert.Equal(t, name, a.GetName())
	}

	assert.Equal(t, []string{"hunter", "planner"}, agents.Names())

	_, err := agents.New("camper")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "camper")
}
