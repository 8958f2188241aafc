package netcomponents

import "github.com/yohamta/donburi"

// NetBodyData is an actor's collider center and velocity in pixels.
type NetBodyData struct {
	X, Y       float64
	VelX, VelY float64 // Client extrapolation between snapshots
}

var NetBody = donburi.NewComponentType[NetBodyData]()

// LerpNetBody interpolates between two snapshots of a body
func LerpNetBody(from, to NetBodyData, t float64) *NetBodyData {
	return &NetBodyData{
		X:    from.X + (to.X-from.X)*t,
		Y:    from.Y + (to.Y-from.Y)*t,
		VelX: from.VelX + (to.VelX-from.VelX)*t,
		VelY: from.VelY + (to.VelY-from.VelY)*t,
	}
}
