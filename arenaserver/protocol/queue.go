package protocol

import (
	"github.com/bytearena/tankarena/common/utils/vector"
)

// Pushes beyond this count in a single tick are dropped.
const MaxMutationsPerTick = 8

// MutationQueue collects the commands an agent issues during one tick.
// Only the last command of each kind survives resolution.
type MutationQueue struct {
	mutations []AgentMutationMessage
	dropped   int
}

func NewMutationQueue() *MutationQueue {
	return &MutationQueue{
		mutations: make([]AgentMutationMessage, 0, MaxMutationsPerTick),
	}
}

// Push appends m; it returns false when the queue is full and m was dropped.
func (q *MutationQueue) Push(m AgentMutationMessage) bool {
	if len(q.mutations) >= MaxMutationsPerTick {
		q.dropped++
		return false
	}

	q.mutations = append(q.mutations, m)
	return true
}

func (q *MutationQueue) Shoot(direction vector.Vector2) bool {
	return q.Push(MakeShootMutation(direction))
}

func (q *MutationQueue) Turn(direction vector.Vector2) bool {
	return q.Push(MakeTurnMutation(direction))
}

func (q *MutationQueue) Move(displacement vector.Vector2) bool {
	return q.Push(MakeMoveMutation(displacement))
}

func (q *MutationQueue) Len() int {
	return len(q.mutations)
}

func (q *MutationQueue) Dropped() int {
	return q.dropped
}

func (q *MutationQueue) GetMutations() []AgentMutationMessage {
	return q.mutations
}

// Resolve returns at most one mutation per kind (the last one pushed),
// in MutationApplicationOrder.
func (q *MutationQueue) Resolve() []AgentMutationMessage {
	last := make(map[_privateMutationMethod]AgentMutationMessage)
	for _, m := range q.mutations {
		last[m.Method] = m
	}

	res := make([]AgentMutationMessage, 0, len(last))
	for _, method := range MutationApplicationOrder {
		if m, ok := last[method]; ok {
			res = append(res, m)
		}
	}

	return res
}

func (q *MutationQueue) Reset() {
	q.mutations = q.mutations[:0]
	q.dropped = 0
}
