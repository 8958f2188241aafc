package components

import (
	"github.com/automoto/bladecore/config"
	"github.com/yohamta/donburi"
)

// ActorID identifies an actor to the collaborator sinks. IDs are assigned in
// spawn order and are stable for the life of a simulation.
type ActorID uint32

type ActorData struct {
	ID   ActorID
	Kind config.ActorKind
	Name string
}

var Actor = donburi.NewComponentType[ActorData]()
