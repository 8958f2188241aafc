package systems

import (
	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactSlop is the penetration tolerated before a solid counts as overlapping.
const contactSlop = 0.01

// UpdateCollisions moves every body by its velocity against the solids and
// records ground contact.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT
	probe := components.ContextOf(ecs.World).Physics.GroundProbe

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.Landed = false
		if physics.Static {
			return
		}
		obj := components.Object.Get(e)

		wasGrounded := physics.Grounded
		resolveHorizontalCollision(physics, obj.Object, physics.Velocity.X*dt)
		physics.Grounded = resolveVerticalCollision(physics, obj.Object, physics.Velocity.Y*dt, probe)
		obj.Update()

		if physics.Grounded && !wasGrounded {
			physics.Landed = true
			if e.HasComponent(components.Locomotion) {
				onPlayerLanded(ecs, e)
			}
		}
	})
}

// resolveHorizontalCollision moves object by dx, stopping flush against the
// nearest solid in the way.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	if moved, blocked := sweepX(object, dx); blocked {
		physics.Velocity.X = 0
		object.X += moved
		return
	}
	object.X += dx
}

// resolveVerticalCollision moves object by dy and reports ground contact.
// Falling or resting bodies look probe pixels further down so a body standing
// on a floor stays grounded.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy, probe float64) bool {
	checkDistance := dy
	if dy >= 0 {
		checkDistance += probe
	}
	if checkDistance == 0 {
		return false
	}

	moved, blocked := sweepY(object, checkDistance)
	if !blocked {
		object.Y += dy
		return false
	}

	object.Y += moved
	physics.Velocity.Y = 0
	return checkDistance > 0
}

// sweepX returns how far object can move toward dx before touching a solid
// and whether a solid was in the way.
func sweepX(object *resolv.Object, dx float64) (float64, bool) {
	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		return dx, false
	}

	blocked := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !spansOverlap(object.Y, object.H, solid.Y, solid.H) {
			continue
		}
		if gap := check.ContactWithObject(solid).X(); closerGap(gap, dx) {
			dx = gap
			blocked = true
		}
	}
	return dx, blocked
}

// sweepY is sweepX for vertical movement.
func sweepY(object *resolv.Object, dy float64) (float64, bool) {
	check := object.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		return dy, false
	}

	blocked := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !spansOverlap(object.X, object.W, solid.X, solid.W) {
			continue
		}
		if gap := check.ContactWithObject(solid).Y(); closerGap(gap, dy) {
			dy = gap
			blocked = true
		}
	}
	return dy, blocked
}

// closerGap reports whether a solid gap away stops a move of d. Solids behind
// the mover are ignored.
func closerGap(gap, d float64) bool {
	if d > 0 {
		return gap >= -contactSlop && gap <= d
	}
	return gap <= contactSlop && gap >= d
}

// spansOverlap reports whether [a, a+al) and [b, b+bl) overlap by more than
// contactSlop.
func spansOverlap(a, al, b, bl float64) bool {
	return a+contactSlop < b+bl && b+contactSlop < a+al
}

// moveKinematic shifts an actor horizontally without touching its velocity,
// stopping at solids.
func moveKinematic(obj *components.ObjectData, dx float64) {
	if dx == 0 {
		return
	}
	moved, _ := sweepX(obj.Object, dx)
	obj.X += moved
	obj.Update()
}

// onPlayerLanded ends a jump attack on ground contact and restores normal
// gravity.
func onPlayerLanded(ecs *ecs.ECS, e *donburi.Entry) {
	loco := components.Locomotion.Get(e)
	loco.DoubleJumped = false
	if !loco.JumpAttacking {
		PlaySFX(ecs, cfg.SoundLand)
		return
	}

	loco.JumpAttacking = false
	physics := components.Physics.Get(e)
	physics.GravityScale = components.Player.Get(e).Config.GravityScale
	action := components.Action.Get(e)
	if action.Kind == cfg.ActionJumpAttack {
		action.End()
	}
	PlaySFX(ecs, cfg.SoundLand)
}
