package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Velocity math.Vec2
	// GravityScale multiplies the global gravity.
	GravityScale float64
	// Deceleration bleeds off horizontal velocity that no input drives,
	// such as dash and knockback impulses on enemies.
	Deceleration float64
	Grounded     bool
	Landed       bool // became grounded this tick
	Facing       float64
	// Static bodies neither fall nor move.
	Static bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
