package netcomponents

import (
	"github.com/automoto/bladecore/config"
	"github.com/yohamta/donburi"
)

// NetActorData is the discrete part of an actor's snapshot. It is never
// interpolated.
type NetActorData struct {
	ActorID  uint32
	Kind     config.ActorKind
	TypeName string // "Player", "Knight", "Brute", ...
	StateID  config.StateID
	Facing   int // -1 left, 1 right

	Health      int
	MaxHealth   int
	HealthRatio float64 // 0..1, for health bars
	Stamina     int
	MaxStamina  int
	Dead        bool
}

var NetActor = donburi.NewComponentType[NetActorData]()
