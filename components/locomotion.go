package components

import (
	"github.com/automoto/bladecore/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type LocomotionData struct {
	State        config.LocomotionState
	DoubleJumped bool
	Crouched     bool
	// JumpAttacking holds from an air attack until ground contact.
	JumpAttacking bool

	// RollTween eases the roll speed from the impulse down to zero; the roll
	// lasts until it finishes.
	RollTween     *gween.Tween
	RollDirection float64
}

var Locomotion = donburi.NewComponentType[LocomotionData]()

func (l *LocomotionData) Rolling() bool {
	return l.RollTween != nil
}
