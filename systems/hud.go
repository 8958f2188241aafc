package systems

import (
	"fmt"

	"github.com/automoto/bladecore/components"
	"github.com/yohamta/donburi"
)

// HUDSnapshot is the player's resource readout, read-only.
type HUDSnapshot struct {
	Health     int
	MaxHealth  int
	Stamina    int
	MaxStamina int

	RollCharges    int
	MaxRollCharges int
	RollTimer      float64
	RollInterval   float64

	Dead bool
}

// HUD reads the player's pools. It reports false when the world has no player.
func HUD(world donburi.World) (HUDSnapshot, bool) {
	e, ok := playerEntry(world)
	if !ok {
		return HUDSnapshot{}, false
	}
	ledger := components.Ledger.Get(e)
	rolls := components.RollPool.Get(e)

	return HUDSnapshot{
		Health:         ledger.Health,
		MaxHealth:      ledger.MaxHealth,
		Stamina:        ledger.Stamina,
		MaxStamina:     ledger.MaxStamina,
		RollCharges:    rolls.Charges,
		MaxRollCharges: rolls.Max,
		RollTimer:      rolls.Timer,
		RollInterval:   rolls.Interval,
		Dead:           ledger.Dead,
	}, true
}

// Lines formats the snapshot the way the text HUD shows it.
func (h HUDSnapshot) Lines() []string {
	return []string{
		fmt.Sprintf("Health: %d / %d", h.Health, h.MaxHealth),
		fmt.Sprintf("Stamina: %d / %d", h.Stamina, h.MaxStamina),
		fmt.Sprintf("Rolls Left: %d / %d", h.RollCharges, h.MaxRollCharges),
		fmt.Sprintf("Roll Cooldown: %.1fs / %.1fs", h.RollTimer, h.RollInterval),
	}
}
