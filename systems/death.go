package systems

import (
	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Kill drives an actor into its terminal state. Calling it on a dead actor
// does nothing.
func Kill(ecs *ecs.ECS, e *donburi.Entry) {
	if components.Ledger.Get(e).Die() {
		onKilled(ecs, e)
	}
}

// onKilled runs the death side effects once, right after the ledger died.
// The body stops, stops colliding and stops acting; the entity stays in the
// world so its final state can still be read.
func onKilled(ecs *ecs.ECS, e *donburi.Entry) {
	physics := components.Physics.Get(e)
	physics.Velocity = math.Vec2{}
	physics.Static = true
	physics.Grounded = false

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		if obj := components.Object.Get(e); obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}

	if e.HasComponent(components.Behavior) {
		behavior := components.Behavior.Get(e)
		behavior.ExitChase(cfg.BehaviorDead)
		behavior.Target = donburi.Null
		behavior.StateTimer.Clear()
	}
	if e.HasComponent(components.Action) {
		components.Action.Get(e).End()
		loco := components.Locomotion.Get(e)
		loco.RollTween = nil
		loco.JumpAttacking = false
	}

	actor := components.Actor.Get(e)
	logger.Log.WithFields(logrus.Fields{
		"actor": actor.ID,
		"kind":  actor.Kind,
		"name":  actor.Name,
		"at":    GetOrCreateClock(ecs).Now,
	}).Info("actor died")

	PlaySFX(ecs, cfg.SoundDeath)
}
