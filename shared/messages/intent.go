package messages

// PlayerIntent is sent from client to server each frame with the player's
// input snapshot. Press flags are edges: the server latches them until the
// next tick consumes them.
type PlayerIntent struct {
	Sequence   uint32  // Incrementing ID, stale intents are dropped
	MoveAxis   float64 // -1 left, 0 none, 1 right
	Jump       bool
	Attack     bool
	Roll       bool
	CrouchHeld bool
}

// PauseRequest asks the server to pause or resume the simulation.
type PauseRequest struct {
	Paused bool
}
