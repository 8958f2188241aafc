package systems

import (
	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/logger"
	"github.com/automoto/bladecore/shared/gamemath"
	"github.com/automoto/bladecore/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs every enemy's behavior controller. Enemies chase the
// living player; without one they idle.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT
	player, hasTarget := livingPlayer(ecs.World)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Ledger.Get(e).Dead {
			return
		}
		behavior := components.Behavior.Get(e)
		typeCfg := &components.Enemy.Get(e).TypeConfig

		switch behavior.State {
		case cfg.BehaviorIdle:
			if hasTarget {
				behavior.EnterChase(player.Entity(), typeCfg)
			}

		case cfg.BehaviorChase:
			updateChase(ecs, e, behavior, typeCfg, dt)

		case cfg.BehaviorDashWindup:
			behavior.StateTimer.Tick(dt)
			if behavior.StateTimer.Ready() {
				releaseDash(e, typeCfg)
				resumeChase(ecs, behavior, typeCfg)
			}

		case cfg.BehaviorMeleeAttack:
			behavior.StateTimer.Tick(dt)
			elapsed := behavior.StateTimer.Duration - behavior.StateTimer.Remaining
			if !behavior.HitResolved && elapsed+1e-9 >= typeCfg.HitDelay {
				behavior.HitResolved = true
				enemyMeleeHit(ecs, e, typeCfg)
			}
			if behavior.StateTimer.Ready() {
				resumeChase(ecs, behavior, typeCfg)
			}

		case cfg.BehaviorStunned:
			behavior.StateTimer.Tick(dt)
			if behavior.StateTimer.Ready() {
				resumeChase(ecs, behavior, typeCfg)
			}
		}
	})
}

// updateChase walks toward the target, counts down the chase timers and acts
// on this tick's decision.
func updateChase(ecs *ecs.ECS, e *donburi.Entry, behavior *components.BehaviorData, typeCfg *cfg.EnemyTypeConfig, dt float64) {
	target, ok := chaseTarget(ecs.World, behavior)
	if !ok {
		behavior.ExitChase(cfg.BehaviorIdle)
		behavior.Target = donburi.Null
		return
	}

	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	pos := obj.Position()
	targetPos := actorPosition(target)

	if facing := gamemath.Sign(targetPos.X - pos.X); facing != 0 {
		physics.Facing = facing
	}
	step := gamemath.MoveTowards(pos.X, targetPos.X, typeCfg.Speed*dt) - pos.X
	moveKinematic(obj, step)

	pos = obj.Position()
	distance := gamemath.Distance(pos.X, pos.Y, targetPos.X, targetPos.Y)
	crouching := components.Locomotion.Get(target).Crouched

	behavior.TickTimers(dt)
	behavior.Pending = behavior.Decide(distance, crouching, typeCfg)

	switch behavior.Pending {
	case components.DecideDash, components.DecidePunishDash:
		logger.Log.WithFields(logrus.Fields{
			"enemy":    components.Actor.Get(e).ID,
			"decision": behavior.Pending,
			"distance": distance,
		}).Debug("enemy dash")
		behavior.ExitChase(cfg.BehaviorDashWindup)
		behavior.StateTimer.Start(typeCfg.DashWindup)
		PlaySFX(ecs, cfg.SoundDash)

	case components.DecideMelee:
		variants := typeCfg.AttackVariants
		if variants < 1 {
			variants = 1
		}
		variant := 1 + components.ContextOf(ecs.World).Random.IntN(variants)
		behavior.ExitChase(cfg.BehaviorMeleeAttack)
		behavior.Variant = variant
		behavior.HitResolved = false
		behavior.StateTimer.Start(typeCfg.AttackDuration)
	}
}

// resumeChase re-enters Chase after an action, or idles if the target is gone.
// Re-entry restarts the dash cooldown and clears the crouch-punish timer.
func resumeChase(ecs *ecs.ECS, behavior *components.BehaviorData, typeCfg *cfg.EnemyTypeConfig) {
	if target, ok := chaseTarget(ecs.World, behavior); ok {
		behavior.EnterChase(target.Entity(), typeCfg)
		return
	}
	if player, ok := livingPlayer(ecs.World); ok {
		behavior.EnterChase(player.Entity(), typeCfg)
		return
	}
	behavior.ExitChase(cfg.BehaviorIdle)
	behavior.Target = donburi.Null
}

func chaseTarget(world donburi.World, behavior *components.BehaviorData) (*donburi.Entry, bool) {
	if behavior.Target == donburi.Null || !world.Valid(behavior.Target) {
		return nil, false
	}
	target := world.Entry(behavior.Target)
	if components.Ledger.Get(target).Dead {
		return nil, false
	}
	return target, true
}

// releaseDash launches the enemy toward its target at the end of the windup.
func releaseDash(e *donburi.Entry, typeCfg *cfg.EnemyTypeConfig) {
	physics := components.Physics.Get(e)
	direction := physics.Facing
	if target, ok := chaseTarget(e.World, components.Behavior.Get(e)); ok {
		if d := gamemath.Sign(actorPosition(target).X - actorPosition(e).X); d != 0 {
			direction = d
		}
	}
	physics.Facing = direction
	physics.Velocity.X = direction * typeCfg.DashForce
}

// enemyMeleeHit resolves every attack socket of the enemy's type.
func enemyMeleeHit(ecs *ecs.ECS, e *donburi.Entry, typeCfg *cfg.EnemyTypeConfig) {
	physics := components.Physics.Get(e)
	hits := ResolveAttack(ecs, AttackAction{
		Attacker: e,
		Points:   attackPoints(actorPosition(e), physics.Facing, typeCfg.AttackPoints, 0),
		Radius:   typeCfg.AttackRadius,
		Damage:   typeCfg.AttackDamage,
		Layer:    tags.OpposingLayer(tags.ResolvEnemy),
	})
	PlaySFX(ecs, cfg.SoundEnemyAttack)

	logger.Log.WithFields(logrus.Fields{
		"enemy":   components.Actor.Get(e).ID,
		"variant": components.Behavior.Get(e).Variant,
		"hits":    len(hits),
	}).Debug("enemy attack")
}
