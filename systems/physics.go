package systems

import (
	"github.com/automoto/bladecore/components"
	"github.com/automoto/bladecore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity and bleeds off undriven horizontal speed.
// Movement itself happens in UpdateCollisions.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT
	world := components.ContextOf(ecs.World).Physics

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Static {
			return
		}

		if physics.Deceleration > 0 {
			physics.Velocity.X = gamemath.MoveTowards(physics.Velocity.X, 0, physics.Deceleration*dt)
		}

		physics.Velocity.Y += world.Gravity * physics.GravityScale * dt
		if world.MaxFallSpeed > 0 && physics.Velocity.Y > world.MaxFallSpeed {
			physics.Velocity.Y = world.MaxFallSpeed
		}
	})
}
