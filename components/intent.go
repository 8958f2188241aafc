package components

import "github.com/yohamta/donburi"

// IntentData is the input snapshot polled once per tick.
type IntentData struct {
	MoveAxis   float64
	Jump       bool
	Attack     bool
	Roll       bool
	CrouchHeld bool
}

var Intent = donburi.NewComponentType[IntentData]()

// Clamped returns the intent with MoveAxis limited to [-1, 1].
func (i IntentData) Clamped() IntentData {
	if i.MoveAxis > 1 {
		i.MoveAxis = 1
	} else if i.MoveAxis < -1 {
		i.MoveAxis = -1
	}
	return i
}
