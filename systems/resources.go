package systems

import (
	"github.com/automoto/bladecore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStamina regenerates every actor's stamina pool.
func UpdateStamina(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT
	components.Ledger.Each(ecs.World, func(e *donburi.Entry) {
		components.Ledger.Get(e).RegenStamina(dt)
	})
}
