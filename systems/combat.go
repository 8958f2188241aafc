package systems

import (
	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// AttackAction describes one resolved swing: the points it strikes from, the
// circle radius at each point and what a hit does.
type AttackAction struct {
	Attacker *donburi.Entry
	Points   []math.Vec2
	Radius   float64
	Damage   int
	// Knockback is the speed added along the point-to-target direction.
	// Zero applies none.
	Knockback float64
	// Layer is the resolv tag of the actors this attack can hit.
	Layer string
}

// Hit records what one attack point did to one target.
type Hit struct {
	Target  *donburi.Entry
	Point   math.Vec2
	Damage  int
	Outcome components.DamageOutcome
}

// ResolveAttack applies an attack to every live actor on the target layer
// within Radius of each point. Points resolve in order and targets in actor
// ID order. A target inside several circles is hit once per circle.
func ResolveAttack(ecs *ecs.ECS, attack AttackAction) []Hit {
	overlap := components.ContextOf(ecs.World).Overlap
	if overlap == nil {
		return nil
	}

	var hits []Hit
	for _, point := range attack.Points {
		for _, target := range overlap.QueryCircle(point, attack.Radius, attack.Layer) {
			if attack.Attacker != nil && target.Entity() == attack.Attacker.Entity() {
				continue
			}
			if !target.HasComponent(components.Ledger) || components.Ledger.Get(target).Dead {
				continue
			}

			outcome := applyDamage(ecs, target, attack.Damage)
			hits = append(hits, Hit{Target: target, Point: point, Damage: attack.Damage, Outcome: outcome})

			if outcome == components.DamageApplied && attack.Knockback > 0 {
				applyKnockback(target, point, attack.Knockback)
			}
		}
	}
	return hits
}

// applyDamage runs TakeDamage and the reaction that goes with the outcome.
func applyDamage(ecs *ecs.ECS, target *donburi.Entry, amount int) components.DamageOutcome {
	outcome := components.Ledger.Get(target).TakeDamage(amount)
	switch outcome {
	case components.DamageApplied:
		onHurt(ecs, target)
	case components.DamageKilled:
		onKilled(ecs, target)
	}
	return outcome
}

func applyKnockback(target *donburi.Entry, from math.Vec2, speed float64) {
	if !target.HasComponent(components.Physics) {
		return
	}
	pos := components.Object.Get(target).Position()
	nx, ny := gamemath.Normalize(pos.X-from.X, pos.Y-from.Y)

	// Stacked hits from several points never push faster than one hit.
	physics := components.Physics.Get(target)
	physics.Velocity.X = gamemath.ClampSpeed(physics.Velocity.X+nx*speed, speed)
	physics.Velocity.Y += ny * speed
}

// onHurt interrupts whatever the target was doing. The player is locked in
// a hurt action; an enemy drops its current behavior and is stunned.
func onHurt(ecs *ecs.ECS, e *donburi.Entry) {
	switch {
	case e.HasComponent(components.Action):
		pc := components.Player.Get(e).Config
		components.Action.Get(e).Start(cfg.ActionHurt, pc.HurtDuration)
	case e.HasComponent(components.Behavior):
		behavior := components.Behavior.Get(e)
		enemy := components.Enemy.Get(e)
		behavior.ExitChase(cfg.BehaviorStunned)
		behavior.StateTimer.Start(enemy.TypeConfig.HitstunDuration)
		behavior.HitResolved = false
	}
	PlaySFX(ecs, cfg.SoundHurt)
}

// attackPoints places sockets around center, mirrored by facing.
func attackPoints(center math.Vec2, facing float64, offsets []cfg.AttackPoint, drop float64) []math.Vec2 {
	if facing == 0 {
		facing = 1
	}
	points := make([]math.Vec2, 0, len(offsets))
	for _, o := range offsets {
		points = append(points, math.Vec2{
			X: center.X + o.X*facing,
			Y: center.Y + o.Y + drop,
		})
	}
	return points
}
