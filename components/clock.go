package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock (singleton component). It only moves
// when the simulation advances, so a paused simulation sees no time pass.
type ClockData struct {
	DT    float64
	Now   float64
	Frame uint64
}

var Clock = donburi.NewComponentType[ClockData]()

func (c *ClockData) Advance(dt float64) {
	c.DT = dt
	c.Now += dt
	c.Frame++
}
