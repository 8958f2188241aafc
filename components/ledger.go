package components

import "github.com/yohamta/donburi"

// DamageOutcome reports what TakeDamage did.
type DamageOutcome int

const (
	DamageApplied DamageOutcome = iota
	DamageBlocked
	DamageKilled
	DamageAlreadyDead
)

func (o DamageOutcome) String() string {
	switch o {
	case DamageBlocked:
		return "blocked"
	case DamageKilled:
		return "killed"
	case DamageAlreadyDead:
		return "already dead"
	}
	return "applied"
}

// LedgerData holds an actor's health and stamina pools.
// Invariants: 0 <= Health <= MaxHealth and 0 <= Stamina <= MaxStamina.
// Once Dead is set no method mutates the pools again.
type LedgerData struct {
	Health     int
	MaxHealth  int
	Stamina    int
	MaxStamina int

	// RegenAccumulator is the time since the last stamina regen tick.
	RegenAccumulator float64
	RegenInterval    float64
	RegenAmount      int

	// Invulnerable is asserted by locomotion every tick the actor rolls.
	Invulnerable bool
	Dead         bool
}

var Ledger = donburi.NewComponentType[LedgerData]()

// NewLedger returns a ledger with both pools full.
func NewLedger(maxHealth, maxStamina int, regenInterval float64, regenAmount int) LedgerData {
	return LedgerData{
		Health:        maxHealth,
		MaxHealth:     maxHealth,
		Stamina:       maxStamina,
		MaxStamina:    maxStamina,
		RegenInterval: regenInterval,
		RegenAmount:   regenAmount,
	}
}

// CanSpend reports whether SpendStamina(amount) would succeed, without
// touching the ledger.
func (l *LedgerData) CanSpend(amount int) error {
	if l.Dead {
		return ErrTargetAlreadyDead
	}
	if amount < 0 || l.Stamina < amount {
		return ErrInsufficientResource
	}
	return nil
}

func (l *LedgerData) SpendStamina(amount int) error {
	if err := l.CanSpend(amount); err != nil {
		return err
	}
	l.Stamina -= amount
	return nil
}

// RegenStamina advances the regen accumulator and returns the stamina added.
// Time only accumulates while stamina is below max.
func (l *LedgerData) RegenStamina(dt float64) int {
	if l.Dead || l.RegenInterval <= 0 {
		return 0
	}
	if l.Stamina >= l.MaxStamina {
		l.RegenAccumulator = 0
		return 0
	}

	before := l.Stamina
	l.RegenAccumulator += dt
	for l.RegenAccumulator+timeEpsilon >= l.RegenInterval {
		l.RegenAccumulator -= l.RegenInterval
		l.Stamina += l.RegenAmount
		if l.Stamina >= l.MaxStamina {
			l.Stamina = l.MaxStamina
			l.RegenAccumulator = 0
			break
		}
	}
	if l.RegenAccumulator < 0 {
		l.RegenAccumulator = 0
	}
	return l.Stamina - before
}

// TakeDamage applies amount to health. Health reaching zero runs Die once;
// the health is clamped to zero there.
func (l *LedgerData) TakeDamage(amount int) DamageOutcome {
	if l.Dead {
		return DamageAlreadyDead
	}
	if l.Invulnerable {
		return DamageBlocked
	}
	if amount < 0 {
		amount = 0
	}

	l.Health -= amount
	if l.Health <= 0 {
		l.Die()
		return DamageKilled
	}
	return DamageApplied
}

// Die moves the ledger into its terminal state. It reports whether this call
// performed the transition; repeated calls change nothing.
func (l *LedgerData) Die() bool {
	if l.Dead {
		return false
	}
	l.Dead = true
	l.Health = 0
	l.Invulnerable = false
	l.RegenAccumulator = 0
	return true
}

// HealthRatio returns health as a fraction of max.
func (l *LedgerData) HealthRatio() float64 {
	if l.MaxHealth <= 0 {
		return 0
	}
	return float64(l.Health) / float64(l.MaxHealth)
}
