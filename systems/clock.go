package systems

import (
	"github.com/automoto/bladecore/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateClock returns the simulation clock. Systems read DT from it
// instead of taking a step length.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
