package components

import (
	"errors"

	"github.com/automoto/bladecore/config"
)

// Failures the tick systems absorb. None of them crosses a tick boundary:
// the attempted action simply leaves no trace.
var (
	ErrInsufficientResource = errors.New("insufficient resource")
	ErrActionLocked         = errors.New("action locked")
	ErrTargetAlreadyDead    = errors.New("target already dead")
	ErrCooldown             = errors.New("cooldown active")
)

// ErrInvalidConfiguration is fatal: it is returned while building actors.
var ErrInvalidConfiguration = config.ErrInvalidConfiguration
