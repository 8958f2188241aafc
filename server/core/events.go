package core

import (
	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/shared/messages"
)

// eventQueue is the simulation's animation and audio sink on the server. It
// collects state and sound events during a tick; the loop drains them to the
// controlling client after the snapshot goes out. Only the loop goroutine
// touches it.
type eventQueue struct {
	events []any
}

func (q *eventQueue) Notify(actor components.ActorID, trigger string) {
	q.events = append(q.events, messages.StateEvent{ActorID: uint32(actor), Trigger: trigger})
}

func (q *eventQueue) Play(clip cfg.SoundID) {
	q.events = append(q.events, messages.SoundEvent{Clip: clip.String()})
}

func (q *eventQueue) push(event any) {
	q.events = append(q.events, event)
}

// Drain returns the queued events in order and empties the queue.
func (q *eventQueue) Drain() []any {
	events := q.events
	q.events = nil
	return events
}
