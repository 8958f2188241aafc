package systems

import (
	"math"

	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// runThreshold is the horizontal speed below which a grounded player idles.
const runThreshold = 1.0

// UpdateStates derives each actor's animation state from its state machines
// and reports every change to the animation sink.
func UpdateStates(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT
	sink := components.ContextOf(ecs.World).Animation

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		loco := components.Locomotion.Get(e)
		action := components.Action.Get(e)
		physics := components.Physics.Get(e)
		loco.State = locomotionState(loco, action, physics)
		transition(e, playerState(e), dt, sink)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		transition(e, enemyState(e), dt, sink)
	})
}

func transition(e *donburi.Entry, next cfg.StateID, dt float64, sink components.AnimationSink) {
	state := components.State.Get(e)
	if next == state.CurrentState {
		state.StateTimer += dt
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
	sink.Notify(components.Actor.Get(e).ID, cfg.StateToTrigger[next])
}

func playerState(e *donburi.Entry) cfg.StateID {
	if components.Ledger.Get(e).Dead {
		return cfg.Die
	}
	loco := components.Locomotion.Get(e)
	action := components.Action.Get(e)
	physics := components.Physics.Get(e)

	switch {
	case action.Kind == cfg.ActionHurt:
		return cfg.Hurt
	case loco.JumpAttacking:
		return cfg.JumpAttack
	case action.Kind == cfg.ActionAttack:
		return cfg.AttackState(cfg.ModeStanding, action.Step)
	case action.Kind == cfg.ActionCrouchAttack:
		return cfg.AttackState(cfg.ModeCrouching, action.Step)
	case loco.Rolling():
		return cfg.Roll
	case !physics.Grounded && physics.Velocity.Y < 0:
		return cfg.Jump
	case !physics.Grounded:
		return cfg.Fall
	case loco.Crouched:
		return cfg.Crouch
	case math.Abs(physics.Velocity.X) > runThreshold:
		return cfg.Run
	}
	return cfg.Idle
}

func enemyState(e *donburi.Entry) cfg.StateID {
	behavior := components.Behavior.Get(e)
	switch behavior.State {
	case cfg.BehaviorDead:
		return cfg.Die
	case cfg.BehaviorStunned:
		return cfg.Stunned
	case cfg.BehaviorDashWindup:
		return cfg.Dash
	case cfg.BehaviorMeleeAttack:
		if behavior.Variant >= 2 {
			return cfg.EnemyAttack2
		}
		return cfg.EnemyAttack1
	case cfg.BehaviorChase:
		return cfg.Run
	}
	return cfg.Idle
}
