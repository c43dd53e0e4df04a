package protocol

import (
	"encoding/json"

	"github.com/bytearena/tankarena/common/utils/vector"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type _privateMutationMethod string

func (p _privateMutationMethod) String() string {
	return string(p)
}

var MutationMethod = struct {
	Shoot _privateMutationMethod
	Turn  _privateMutationMethod
	Move  _privateMutationMethod
}{
	Shoot: _privateMutationMethod("shoot"),
	Turn:  _privateMutationMethod("turn"),
	Move:  _privateMutationMethod("move"),
}

// Order in which the resolved mutations of a tick are applied:
// non-movement actions (shoot) are taken from the position of the tank before it moves,
// and move comes after turn so that it overrides the heading goal.
var MutationApplicationOrder = []_privateMutationMethod{
	MutationMethod.Shoot,
	MutationMethod.Turn,
	MutationMethod.Move,
}

type AgentMutationMessage struct {
	Method    _privateMutationMethod `json:"method"`
	Arguments json.RawMessage        `json:"arguments"`
}

func makeVectorMutation(method _privateMutationMethod, v vector.Vector2) AgentMutationMessage {
	// Vector2 marshalling cannot fail
	args, _ := json.Marshal(v)

	return AgentMutationMessage{
		Method:    method,
		Arguments: args,
	}
}

func MakeShootMutation(direction vector.Vector2) AgentMutationMessage {
	return makeVectorMutation(MutationMethod.Shoot, direction)
}

func MakeTurnMutation(direction vector.Vector2) AgentMutationMessage {
	return makeVectorMutation(MutationMethod.Turn, direction)
}

func MakeMoveMutation(displacement vector.Vector2) AgentMutationMessage {
	return makeVectorMutation(MutationMethod.Move, displacement)
}

func (m AgentMutationMessage) GetMethod() _privateMutationMethod {
	return m.Method
}

func (m AgentMutationMessage) GetArguments() json.RawMessage {
	return m.Arguments
}

// GetVector decodes the [x, y] argument shared by every mutation kind.
func (m AgentMutationMessage) GetVector() (vector.Vector2, error) {
	var v vector.Vector2
	if err := json.Unmarshal(m.Arguments, &v); err != nil {
		return v, errors.Wrapf(err, "invalid arguments for %s mutation", m.Method)
	}

	return v, nil
}

func (m AgentMutationMessage) String() string {
	return m.Method.String() + string(m.Arguments)
}

// FindLastMutation returns the last mutation of the given method, if any.
func FindLastMutation(mutations []AgentMutationMessage, method _privateMutationMethod) (AgentMutationMessage, bool) {
	for i := len(mutations) - 1; i >= 0; i-- {
		if mutations[i].Method == method {
			return mutations[i], true
		}
	}

	return AgentMutationMessage{}, false
}

type AgentMutationBatch struct {
	AgentId   uuid.UUID
	PlayerIdx int
	Mutations []AgentMutationMessage `json:"mutations"`
}

type AgentMutationBatcherInterface interface {
	PushMutationBatch(batch AgentMutationBatch)
}
