package components

import (
	"github.com/automoto/bladecore/config"
	"github.com/yohamta/donburi"
)

// ComboData tracks the player's attack chain.
// Invariant: 0 <= Step <= MaxSteps(Mode). A chain finished under the
// lockout policy drops back to 0 while the lockout runs.
type ComboData struct {
	Step int
	// Mode of the last accepted step.
	Mode config.AttackMode
	// Timer is the time since the last accepted step.
	Timer float64
	// NextAttackAt is the clock time at which the attack rate allows
	// another attempt.
	NextAttackAt float64
	// Lockout is the post-combo lockout window.
	Lockout Cooldown

	Config config.ComboConfig
}

var Combo = donburi.NewComponentType[ComboData]()

// ComboStep describes an accepted attack attempt.
type ComboStep struct {
	Mode config.AttackMode
	Step int
	Cost int
	// Finished is set when the step completed the chain and engaged the
	// post-combo lockout.
	Finished bool
}

func NewCombo(cfg config.ComboConfig) ComboData {
	return ComboData{
		Config:  cfg,
		Lockout: NewCooldown(cfg.PostComboDelay),
	}
}

// EffectiveMode folds crouch attacks into the standing chain under the
// base policy.
func (c *ComboData) EffectiveMode(mode config.AttackMode) config.AttackMode {
	if mode == config.ModeCrouching && c.Config.Policy == config.ComboPolicyBase {
		return config.ModeStanding
	}
	return mode
}

func (c *ComboData) MaxSteps(mode config.AttackMode) int {
	switch c.EffectiveMode(mode) {
	case config.ModeCrouching:
		return c.Config.MaxCrouchSteps
	case config.ModeAir:
		return c.Config.MaxAirSteps
	}
	return c.Config.MaxStandingSteps
}

func (c *ComboData) Cost(mode config.AttackMode) int {
	switch c.EffectiveMode(mode) {
	case config.ModeCrouching:
		return c.Config.CrouchCost
	case config.ModeAir:
		return c.Config.AirCost
	}
	return c.Config.StandingCost
}

// Retune swaps in a new config. A chain longer than the new maximum
// restarts from zero.
func (c *ComboData) Retune(cfg config.ComboConfig) {
	c.Config = cfg
	c.Lockout.Duration = cfg.PostComboDelay
	if c.Lockout.Remaining > cfg.PostComboDelay {
		c.Lockout.Remaining = cfg.PostComboDelay
	}
	if c.Step > c.MaxSteps(c.Mode) {
		c.Step = 0
	}
}

// Tick advances the combo timer and the lockout.
func (c *ComboData) Tick(dt float64) {
	c.Timer += dt
	c.Lockout.Tick(dt)
}

// Ready reports why an attack in mode could not start at now, or nil.
// It never mutates the combo or the ledger.
func (c *ComboData) Ready(mode config.AttackMode, now float64, ledger *LedgerData) error {
	if now+timeEpsilon < c.NextAttackAt || !c.Lockout.Ready() {
		return ErrCooldown
	}
	return ledger.CanSpend(c.Cost(mode))
}

// TryAttack advances the chain and spends the stamina for one attack.
// On error neither the combo nor the ledger has changed.
func (c *ComboData) TryAttack(mode config.AttackMode, now float64, ledger *LedgerData) (ComboStep, error) {
	if err := c.Ready(mode, now, ledger); err != nil {
		return ComboStep{}, err
	}

	mode = c.EffectiveMode(mode)
	maxSteps := c.MaxSteps(mode)
	cost := c.Cost(mode)

	step := c.Step
	if c.Timer > c.Config.ComboMaxDelay {
		step = 0
	}
	step++
	if step > maxSteps {
		step = 1
	}

	if err := ledger.SpendStamina(cost); err != nil {
		return ComboStep{}, err
	}

	c.Step = step
	c.Mode = mode
	c.NextAttackAt = now + 1/c.Config.AttackRate
	c.Timer = 0

	result := ComboStep{Mode: mode, Step: step, Cost: cost}
	if step == maxSteps && c.Config.Policy == config.ComboPolicyLockout {
		c.engageLockout()
		c.Step = 0
		result.Finished = true
	}
	return result, nil
}

// Decay drops an idle chain back to step zero once the combo window has
// passed. It reports whether the chain was reset.
func (c *ComboData) Decay() bool {
	if c.Step == 0 || c.Timer <= c.Config.ComboMaxDelay {
		return false
	}
	c.Step = 0
	if c.Config.Policy == config.ComboPolicyLockout {
		c.Lockout.Start(c.Config.PostComboDelay)
	}
	return true
}

func (c *ComboData) engageLockout() {
	c.Lockout.Start(c.Config.PostComboDelay)
	c.NextAttackAt += c.Config.PostComboDelay
}

// Damage returns the damage of a step: base plus the per-step bonus.
func (c *ComboData) Damage(base, step int) int {
	return base + step*c.Config.PerStepBonus
}
