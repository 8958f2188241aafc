package systems

import (
	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/logger"
	"github.com/automoto/bladecore/shared/gamemath"
	"github.com/automoto/bladecore/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion turns the player's intent into velocity: running, crouch,
// jumps and rolls. It runs before physics each tick.
func UpdateLocomotion(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		ledger := components.Ledger.Get(e)
		if ledger.Dead {
			return
		}

		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		loco := components.Locomotion.Get(e)
		action := components.Action.Get(e)
		rolls := components.RollPool.Get(e)
		intent := components.Intent.Get(e).Clamped()
		pc := &player.Config

		updateRoll(loco, physics, dt)
		rolls.Recharge(dt)

		if physics.Grounded {
			loco.DoubleJumped = false
		}
		locked := action.Locked() || loco.JumpAttacking

		if !locked && !loco.Rolling() && intent.MoveAxis != 0 {
			physics.Facing = gamemath.Sign(intent.MoveAxis)
		}

		wantCrouch := intent.CrouchHeld && physics.Grounded && !loco.Rolling() && !loco.JumpAttacking
		if wantCrouch != loco.Crouched {
			setCrouched(e, wantCrouch)
		}

		switch {
		case loco.Rolling():
			// The roll tween owns horizontal speed.
		case loco.JumpAttacking:
			// Momentum carries through the dive.
		default:
			axis := intent.MoveAxis
			if locked || loco.Crouched {
				axis = 0
			}
			physics.Velocity.X = gamemath.Approach(physics.Velocity.X, axis, pc.RunSpeed, pc.Acceleration, pc.Deceleration, dt)
		}

		if intent.Jump && !locked && !loco.Rolling() && !loco.Crouched {
			tryJump(ecs, loco, physics, pc)
		}

		if intent.Roll {
			if err := tryRoll(ecs, e, intent.MoveAxis); err != nil {
				logger.Log.WithError(err).Debug("roll rejected")
			}
		}

		// Re-asserted every tick so the flag can never outlive the roll.
		ledger.Invulnerable = loco.Rolling()
		loco.State = locomotionState(loco, action, physics)
	})
}

func tryJump(ecs *ecs.ECS, loco *components.LocomotionData, physics *components.PhysicsData, pc *cfg.PlayerConfig) {
	switch {
	case physics.Grounded:
		physics.Velocity.Y = -pc.JumpForce
		physics.Grounded = false
	case !loco.DoubleJumped:
		physics.Velocity.Y = -pc.JumpForce * pc.DoubleJumpMultiplier
		loco.DoubleJumped = true
	default:
		return
	}
	PlaySFX(ecs, cfg.SoundJump)
}

// tryRoll starts a roll if the player is grounded, free to act and holds a
// charge. It returns ErrActionLocked or ErrInsufficientResource otherwise.
func tryRoll(ecs *ecs.ECS, e *donburi.Entry, axis float64) error {
	physics := components.Physics.Get(e)
	loco := components.Locomotion.Get(e)
	action := components.Action.Get(e)

	if !physics.Grounded || action.Locked() || loco.Rolling() || loco.JumpAttacking {
		return components.ErrActionLocked
	}
	if err := components.RollPool.Get(e).Consume(); err != nil {
		return err
	}

	pc := &components.Player.Get(e).Config
	direction := gamemath.Sign(axis)
	if direction == 0 {
		direction = physics.Facing
	}
	speed := pc.RollSpeedMultiplier * pc.RunSpeed

	physics.Facing = direction
	physics.Velocity.X = direction * speed
	loco.RollDirection = direction
	loco.RollTween = gween.New(float32(speed), 0, float32(pc.RollDuration), ease.OutQuad)
	components.Ledger.Get(e).Invulnerable = true

	PlaySFX(ecs, cfg.SoundRoll)
	return nil
}

// updateRoll advances the roll tween; the roll ends when the tween does.
func updateRoll(loco *components.LocomotionData, physics *components.PhysicsData, dt float64) {
	if !loco.Rolling() {
		return
	}
	speed, finished := loco.RollTween.Update(float32(dt))
	physics.Velocity.X = loco.RollDirection * float64(speed)
	if finished {
		loco.RollTween = nil
	}
}

// setCrouched resizes the collider. Standing up is refused while a solid sits
// above the crouched collider.
func setCrouched(e *donburi.Entry, crouch bool) {
	player := components.Player.Get(e)
	obj := components.Object.Get(e)
	loco := components.Locomotion.Get(e)

	if crouch {
		obj.Resize(player.StandingHeight * player.Config.CrouchHeightRatio)
		loco.Crouched = true
		return
	}

	grow := player.StandingHeight - obj.H
	if grow > 0 {
		if _, blocked := sweepY(obj.Object, -grow); blocked {
			return
		}
	}
	obj.Resize(player.StandingHeight)
	loco.Crouched = false
}

// locomotionState derives the movement state; the first match wins.
func locomotionState(loco *components.LocomotionData, action *components.ActionData, physics *components.PhysicsData) cfg.LocomotionState {
	switch {
	case loco.Rolling():
		return cfg.Rolling
	case loco.JumpAttacking:
		return cfg.JumpAttackFalling
	case action.Locked():
		return cfg.ActionLocked
	case !physics.Grounded:
		return cfg.Airborne
	case loco.Crouched:
		return cfg.Crouching
	}
	return cfg.Grounded
}
