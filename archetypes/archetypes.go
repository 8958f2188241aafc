package archetypes

import (
	"github.com/automoto/bladecore/components"
	"github.com/automoto/bladecore/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Player,
		components.Object,
		components.Physics,
		components.Ledger,
		components.Combo,
		components.RollPool,
		components.Locomotion,
		components.Action,
		components.Intent,
		components.State,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Actor,
		components.Enemy,
		components.Object,
		components.Physics,
		components.Ledger,
		components.Behavior,
		components.State,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
