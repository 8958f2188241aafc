package messages

// StateEvent is sent when an actor enters a new animation state
type StateEvent struct {
	ActorID uint32
	Trigger string
}

// SoundEvent is sent for every cue the simulation plays
type SoundEvent struct {
	Clip string
}

// OutcomeEvent is sent once when the match is decided
type OutcomeEvent struct {
	Outcome string // "victory" or "defeat"
	At      float64
}
