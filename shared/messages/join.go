package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest is sent by a client after connecting to request control of the
// player.
type JoinRequest struct {
	Version    string
	PlayerName string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
type JoinAccepted struct {
	NetworkID  esync.NetworkId // The player's synced entity
	ServerName string
	TickRate   int
	Arena      string
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
