package components

import (
	"github.com/automoto/bladecore/config"
	"github.com/yohamta/donburi"
)

// MatchData holds the match result (singleton component).
type MatchData struct {
	Outcome config.Outcome
	EndedAt float64
}

var Match = donburi.NewComponentType[MatchData]()
