package factory

import (
	"github.com/automoto/bladecore/archetypes"
	"github.com/automoto/bladecore/components"
	"github.com/automoto/bladecore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSolid adds a static collision rectangle. x, y is the top-left corner.
func CreateSolid(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs.World)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = solid

	components.Object.SetValue(solid, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return solid
}
