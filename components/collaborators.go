package components

import (
	"github.com/automoto/bladecore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// OverlapQuery finds the actors on a collision layer whose collider
// intersects a circle. Results must come back in a deterministic order.
type OverlapQuery interface {
	QueryCircle(center math.Vec2, radius float64, layer string) []*donburi.Entry
}

// AnimationSink observes state changes. It is never queried back.
type AnimationSink interface {
	Notify(actor ActorID, trigger string)
}

// AudioSink plays cues. Its result is never consulted.
type AudioSink interface {
	Play(clip config.SoundID)
}

// RandomSource picks attack variants. *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// ContextData bundles the collaborators every system reaches through
// (singleton component).
type ContextData struct {
	Overlap   OverlapQuery
	Animation AnimationSink
	Audio     AudioSink
	Random    RandomSource

	Physics config.PhysicsConfig

	nextActorID ActorID
}

var Context = donburi.NewComponentType[ContextData]()

// NextActorID hands out actor IDs in spawn order, starting at 1.
func (c *ContextData) NextActorID() ActorID {
	c.nextActorID++
	return c.nextActorID
}

type nopAnimation struct{}

func (nopAnimation) Notify(ActorID, string) {}

type nopAudio struct{}

func (nopAudio) Play(config.SoundID) {}

type firstVariant struct{}

func (firstVariant) IntN(int) int { return 0 }

// ContextOf returns the world's context, creating one with no-op sinks when
// the world has none yet.
func ContextOf(w donburi.World) *ContextData {
	entry, ok := Context.First(w)
	if !ok {
		entry = w.Entry(w.Create(Context))
		Context.SetValue(entry, ContextData{
			Animation: nopAnimation{},
			Audio:     nopAudio{},
			Random:    firstVariant{},
			Physics:   config.Physics,
		})
	}
	return Context.Get(entry)
}
