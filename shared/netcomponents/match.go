package netcomponents

import (
	"github.com/automoto/bladecore/config"
	"github.com/yohamta/donburi"
)

// NetMatchData is the match-wide snapshot: clock, outcome and the player's
// HUD readout.
type NetMatchData struct {
	Time    float64
	Paused  bool
	Outcome config.Outcome

	RollCharges    int
	MaxRollCharges int
	RollTimer      float64
	RollInterval   float64
}

var NetMatch = donburi.NewComponentType[NetMatchData]()
