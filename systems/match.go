package systems

import (
	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/logger"
	"github.com/automoto/bladecore/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch decides the outcome once: defeat when the player dies, victory
// when every enemy is dead. The simulation keeps running afterwards.
func UpdateMatch(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	if match.Outcome != cfg.OutcomeNone {
		return
	}

	player, ok := playerEntry(e.World)
	if !ok {
		return
	}

	switch {
	case components.Ledger.Get(player).Dead:
		match.Outcome = cfg.OutcomeDefeat
		PlaySFX(e, cfg.SoundGameOver)
	case allEnemiesDead(e.World):
		match.Outcome = cfg.OutcomeVictory
		PlaySFX(e, cfg.SoundVictory)
	default:
		return
	}

	match.EndedAt = GetOrCreateClock(e).Now
	logger.Log.WithFields(logrus.Fields{
		"outcome": match.Outcome,
		"at":      match.EndedAt,
	}).Info("match over")
}

func allEnemiesDead(world donburi.World) bool {
	count, alive := 0, 0
	tags.Enemy.Each(world, func(e *donburi.Entry) {
		count++
		if !components.Ledger.Get(e).Dead {
			alive++
		}
	})
	return count > 0 && alive == 0
}

func GetOrCreateMatch(e *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Match))
	}
	return components.Match.Get(entry)
}
