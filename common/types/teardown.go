package types

// TearDownCallback releases something when a game stops; callbacks run in reverse registration order.
type TearDownCallback func() error
