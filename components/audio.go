package components

import (
	cfg "github.com/automoto/bladecore/config"
	"github.com/yohamta/donburi"
)

// AudioData queues cues raised during a tick (singleton component).
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
