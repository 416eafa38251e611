package core

import "lifeboard/pkg/core"

// Listener receives every grid the engine publishes. The grid is a snapshot
// and is safe to keep.
type Listener func(g core.Grid)

// Controller is the set of intents a display surface may send to the engine.
type Controller interface {
	Start()
	Stop()
	Running() bool
	Step()
	ToggleCell(row, col int) error
	Randomize()
	Clear()

	Grid() core.Grid
	Generation() int
	Subscribe(l Listener) (unsubscribe func())
	Parameters() ParameterSnapshot
}
