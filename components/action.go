package components

import (
	"github.com/automoto/bladecore/config"
	"github.com/yohamta/donburi"
)

// ActionData is the action the player is committed to.
type ActionData struct {
	Kind config.ActionKind
	Mode config.AttackMode
	Step int
	// Remaining counts down to the end of the action. A jump attack has no
	// duration and ends on landing instead.
	Remaining Cooldown
}

var Action = donburi.NewComponentType[ActionData]()

func (a *ActionData) Start(kind config.ActionKind, duration float64) {
	a.Kind = kind
	a.Remaining.Start(duration)
}

func (a *ActionData) End() {
	*a = ActionData{}
}

// Locked reports whether the action discards movement input.
func (a *ActionData) Locked() bool {
	return a.Kind != config.ActionNone
}
