package components

import (
	"github.com/automoto/bladecore/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string
	TypeConfig config.EnemyTypeConfig
}

var Enemy = donburi.NewComponentType[EnemyData]()

// Decision is the action a chasing enemy picked this tick.
type Decision int

const (
	DecideNone Decision = iota
	DecideDash
	DecidePunishDash
	DecideMelee
)

func (d Decision) String() string {
	switch d {
	case DecideDash:
		return "dash"
	case DecidePunishDash:
		return "punish-dash"
	case DecideMelee:
		return "melee"
	}
	return "none"
}

// BehaviorData is an enemy's controller state.
type BehaviorData struct {
	State  config.BehaviorState
	Target donburi.Entity

	DashTimer       Cooldown
	CrouchDashTimer Cooldown
	// StateTimer counts down the windup, attack and hitstun states.
	StateTimer Cooldown

	// Pending holds the decision latched this tick until the controller acts
	// on it. Leaving Chase clears it.
	Pending Decision
	// Variant is the melee variant in progress, starting at 1.
	Variant     int
	HitResolved bool
}

var Behavior = donburi.NewComponentType[BehaviorData]()

// EnterChase resets the chase timers for a new target.
func (b *BehaviorData) EnterChase(target donburi.Entity, cfg *config.EnemyTypeConfig) {
	b.State = config.BehaviorChase
	b.Target = target
	b.DashTimer.Start(cfg.DashCooldown)
	b.CrouchDashTimer = NewCooldown(cfg.CrouchDashInterval)
	b.Pending = DecideNone
}

// ExitChase drops any decision not yet acted on.
func (b *BehaviorData) ExitChase(next config.BehaviorState) {
	b.State = next
	b.Pending = DecideNone
}

// TickTimers counts both chase cooldowns down.
func (b *BehaviorData) TickTimers(dt float64) {
	b.DashTimer.Tick(dt)
	b.CrouchDashTimer.Tick(dt)
}

// Decide picks the chase action for this tick; the first match wins. A
// firing branch restarts its own cooldown.
func (b *BehaviorData) Decide(distance float64, targetCrouching bool, cfg *config.EnemyTypeConfig) Decision {
	switch {
	case distance >= cfg.DashRange && b.DashTimer.Ready():
		b.DashTimer.Start(cfg.DashCooldown)
		return DecideDash
	case targetCrouching && distance <= cfg.AttackRange && b.CrouchDashTimer.Ready():
		b.CrouchDashTimer.Start(cfg.CrouchDashInterval)
		return DecidePunishDash
	case distance <= cfg.AttackRange && !targetCrouching:
		return DecideMelee
	}
	return DecideNone
}
