package systems

import (
	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/logger"
	"github.com/automoto/bladecore/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayerActions advances the combo and the current action, then turns
// an attack press into a combo step and resolves it.
func UpdatePlayerActions(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if components.Ledger.Get(e).Dead {
			return
		}
		combo := components.Combo.Get(e)
		action := components.Action.Get(e)
		loco := components.Locomotion.Get(e)

		combo.Tick(clock.DT)

		// A jump attack has no duration; landing ends it.
		if action.Locked() && action.Kind != cfg.ActionJumpAttack {
			action.Remaining.Tick(clock.DT)
			if action.Remaining.Ready() {
				action.End()
			}
		}

		if components.Intent.Get(e).Attack {
			if _, err := PlayerAttack(ecs, e); err != nil {
				logger.Log.WithError(err).Debug("attack rejected")
			}
		}

		combo.Decay()
		loco.State = locomotionState(loco, action, components.Physics.Get(e))
	})
}

// PlayerAttack attempts one attack at the current clock time. The mode comes
// from locomotion: airborne attacks dive, crouched ones use the crouch chain.
// On error nothing changed.
func PlayerAttack(ecs *ecs.ECS, e *donburi.Entry) ([]Hit, error) {
	now := GetOrCreateClock(ecs).Now
	physics := components.Physics.Get(e)
	loco := components.Locomotion.Get(e)
	action := components.Action.Get(e)
	combo := components.Combo.Get(e)
	ledger := components.Ledger.Get(e)

	if ledger.Dead {
		return nil, components.ErrTargetAlreadyDead
	}
	if action.Locked() || loco.Rolling() || loco.JumpAttacking {
		return nil, components.ErrActionLocked
	}

	mode := cfg.ModeStanding
	switch {
	case !physics.Grounded:
		mode = cfg.ModeAir
	case loco.Crouched:
		mode = cfg.ModeCrouching
	}

	step, err := combo.TryAttack(mode, now, ledger)
	if err != nil {
		return nil, err
	}

	pc := &components.Player.Get(e).Config
	center := components.Object.Get(e).Position()
	attack := AttackAction{
		Attacker: e,
		Layer:    tags.OpposingLayer(tags.ResolvPlayer),
	}

	if step.Mode == cfg.ModeAir {
		action.Kind = cfg.ActionJumpAttack
		action.Mode = step.Mode
		action.Step = step.Step
		loco.JumpAttacking = true
		physics.GravityScale = pc.JumpAttackGravityScale

		attack.Points = attackPoints(center, physics.Facing,
			[]cfg.AttackPoint{{X: pc.JumpAttackOffsetX, Y: pc.JumpAttackOffsetY}}, 0)
		attack.Radius = combo.Config.AirAttackRange
		attack.Damage = combo.Damage(combo.Config.AirAttackDamage, step.Step)
		attack.Knockback = combo.Config.AirKnockback
		PlaySFX(ecs, cfg.SoundJumpAttack)
	} else {
		kind := cfg.ActionAttack
		drop := 0.0
		if mode == cfg.ModeCrouching {
			kind = cfg.ActionCrouchAttack
			drop = pc.CrouchAttackDrop
		}
		action.Start(kind, combo.Config.AttackDuration)
		action.Mode = step.Mode
		action.Step = step.Step

		attack.Points = attackPoints(center, physics.Facing,
			[]cfg.AttackPoint{{X: pc.AttackOffsetX, Y: pc.AttackOffsetY}}, drop)
		attack.Radius = combo.Config.AttackRange
		attack.Damage = combo.Damage(combo.Config.AttackDamage, step.Step)
		PlaySFX(ecs, cfg.SoundAttack)
	}

	hits := ResolveAttack(ecs, attack)
	logger.Log.WithFields(logrus.Fields{
		"mode":    step.Mode,
		"step":    step.Step,
		"cost":    step.Cost,
		"hits":    len(hits),
		"stamina": ledger.Stamina,
	}).Debug("player attack")

	return hits, nil
}

// playerEntry returns the first player, dead or alive.
func playerEntry(world donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(world)
}

// livingPlayer returns the player if it is alive.
func livingPlayer(world donburi.World) (*donburi.Entry, bool) {
	e, ok := playerEntry(world)
	if !ok || components.Ledger.Get(e).Dead {
		return nil, false
	}
	return e, true
}

func actorPosition(e *donburi.Entry) math.Vec2 {
	return components.Object.Get(e).Position()
}
