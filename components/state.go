package components

import (
	"github.com/automoto/bladecore/config"
	"github.com/yohamta/donburi"
)

// StateData is the animation-equivalent state derived each tick. Changes are
// reported to the animation sink; the core never reads it back for decisions.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64
}

var State = donburi.NewComponentType[StateData]()
