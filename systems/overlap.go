package systems

import (
	"sort"

	"github.com/automoto/bladecore/components"
	"github.com/automoto/bladecore/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpaceOverlap answers circle queries against a resolv space. The space
// narrows candidates to nearby cells; each candidate collider is then
// tested exactly against the circle.
type SpaceOverlap struct {
	Space *resolv.Space
}

func (q SpaceOverlap) QueryCircle(center math.Vec2, radius float64, layer string) []*donburi.Entry {
	if q.Space == nil || radius <= 0 {
		return nil
	}

	area := resolv.NewObject(center.X-radius, center.Y-radius, radius*2, radius*2)
	q.Space.Add(area)
	defer q.Space.Remove(area)

	check := area.Check(0, 0, layer)
	if check == nil {
		return nil
	}

	var hits []*donburi.Entry
	for _, o := range check.Objects {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Actor) {
			continue
		}
		if !gamemath.CircleIntersectsRect(center.X, center.Y, radius, o.X, o.Y, o.W, o.H) {
			continue
		}
		hits = append(hits, entry)
	}

	sort.Slice(hits, func(i, j int) bool {
		return components.Actor.Get(hits[i]).ID < components.Actor.Get(hits[j]).ID
	})
	return hits
}
