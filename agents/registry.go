package agents

import (
	"sort"

	"github.com/bytearena/tankarena/agents/hunter"
	"github.com/bytearena/tankarena/agents/planner"
	"github.com/bytearena/tankarena/arenaserver/agent"
	"github.com/pkg/errors"
)

var builders = map[string]func() agent.AgentInterface{
	"hunter":  func() agent.AgentInterface { return hunter.MakeHunterAgent() },
	"planner": func() agent.AgentInterface { return planner.MakePlannerAgent() },
}

// New builds a fresh agent of the given kind.
func New(name string) (agent.AgentInterface, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, errors.Errorf("unknown agent %q (known agents: %v)", name, Names())
	}

	return builder(), nil
}

func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
