package components

import (
	"github.com/automoto/bladecore/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Config config.PlayerConfig
	// StandingHeight is the collider height when not crouched.
	StandingHeight float64
}

var Player = donburi.NewComponentType[PlayerData]()
