package systems

import (
	"math"

	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/tags"
	"github.com/yohamta/donburi"
)

// botReach is how close the bot walks before swinging, as a fraction of
// the attack offset plus range.
const botReach = 0.9

// BotIntent plays the player for demos and soak runs. It rolls away from a
// winding-up dash, swings when an enemy is in reach and the combo is ready,
// and otherwise walks toward the nearest living enemy.
func BotIntent(world donburi.World) components.IntentData {
	player, ok := livingPlayer(world)
	if !ok {
		return components.IntentData{}
	}
	pos := actorPosition(player)

	var nearest *donburi.Entry
	best := math.Inf(1)
	tags.Enemy.Each(world, func(e *donburi.Entry) {
		if components.Ledger.Get(e).Dead {
			return
		}
		if d := math.Abs(actorPosition(e).X - pos.X); d < best {
			best, nearest = d, e
		}
	})
	if nearest == nil {
		return components.IntentData{}
	}

	toward := 1.0
	if actorPosition(nearest).X < pos.X {
		toward = -1
	}

	behavior := components.Behavior.Get(nearest)
	typeCfg := components.Enemy.Get(nearest).TypeConfig
	if behavior.State == cfg.BehaviorDashWindup && best <= typeCfg.DashRange {
		if components.RollPool.Get(player).Charges > 0 {
			return components.IntentData{MoveAxis: -toward, Roll: true}
		}
		return components.IntentData{MoveAxis: -toward, Jump: true}
	}

	pc := components.Player.Get(player).Config
	combo := components.Combo.Get(player)
	reach := (pc.AttackOffsetX + combo.Config.AttackRange) * botReach
	if best <= reach {
		intent := components.IntentData{MoveAxis: toward * 0.01}
		now := 0.0
		if clock, ok := components.Clock.First(world); ok {
			now = components.Clock.Get(clock).Now
		}
		if combo.Ready(cfg.ModeStanding, now, components.Ledger.Get(player)) == nil {
			intent.Attack = true
		}
		return intent
	}

	return components.IntentData{MoveAxis: toward}
}
