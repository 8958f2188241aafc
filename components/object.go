package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData is an actor's collider. The resolv object's position is its
// top-left corner; actor positions are reported at the collider center.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the resolv space shared by all colliders of a simulation.
var Space = donburi.NewComponentType[resolv.Space]()

// Position returns the collider center.
func (o ObjectData) Position() math.Vec2 {
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// Bottom returns the y of the collider's feet.
func (o ObjectData) Bottom() float64 {
	return o.Y + o.H
}

// Resize changes the collider height keeping the feet planted.
func (o ObjectData) Resize(height float64) {
	bottom := o.Bottom()
	o.H = height
	o.Y = bottom - height
	o.SetShape(resolv.NewRectangle(0, 0, o.W, o.H))
	o.Update()
}
