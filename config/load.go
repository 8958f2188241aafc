package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration marks a setup bug: the simulation refuses to start.
var ErrInvalidConfiguration = errors.New("invalid configuration")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// LoadTuning reads YAML overrides from path on top of base and validates the
// result. Keys missing from the file keep their base values, except inside
// enemy.types where each listed type replaces the base entry as a whole.
func LoadTuning(path string, base Tuning) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	return ParseTuning(data, base)
}

// ParseTuning applies YAML overrides in data on top of base.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks every section and returns the first problem found.
func (t Tuning) Validate() error {
	p := t.Player
	switch {
	case p.MaxHealth <= 0:
		return invalidf("player: maxHealth must be positive, got %d", p.MaxHealth)
	case p.MaxStamina < 0:
		return invalidf("player: maxStamina cannot be negative, got %d", p.MaxStamina)
	case p.StaminaRegenInterval <= 0:
		return invalidf("player: staminaRegenInterval must be positive, got %v", p.StaminaRegenInterval)
	case p.RunSpeed <= 0 || p.Acceleration <= 0 || p.Deceleration <= 0:
		return invalidf("player: runSpeed, acceleration and deceleration must be positive")
	case p.MaxRolls < 0:
		return invalidf("player: maxRolls cannot be negative, got %d", p.MaxRolls)
	case p.RollRechargeInterval <= 0:
		return invalidf("player: rollRechargeInterval must be positive, got %v", p.RollRechargeInterval)
	case p.RollDuration <= 0:
		return invalidf("player: rollDuration must be positive, got %v", p.RollDuration)
	case p.CrouchHeightRatio <= 0 || p.CrouchHeightRatio > 1:
		return invalidf("player: crouchHeightRatio must be in (0, 1], got %v", p.CrouchHeightRatio)
	case p.CollisionWidth <= 0 || p.CollisionHeight <= 0:
		return invalidf("player: collision size must be positive")
	}

	c := t.Combo
	switch {
	case c.MaxStandingSteps < 1 || c.MaxCrouchSteps < 1 || c.MaxAirSteps < 1:
		return invalidf("combo: every mode needs at least one step")
	case c.StandingCost < 0 || c.CrouchCost < 0 || c.AirCost < 0:
		return invalidf("combo: stamina costs cannot be negative")
	case c.AttackRate <= 0:
		return invalidf("combo: attackRate must be positive, got %v", c.AttackRate)
	case c.ComboMaxDelay <= 0:
		return invalidf("combo: comboMaxDelay must be positive, got %v", c.ComboMaxDelay)
	case c.PostComboDelay < 0:
		return invalidf("combo: postComboDelay cannot be negative, got %v", c.PostComboDelay)
	case c.AttackRange <= 0 || c.AirAttackRange <= 0:
		return invalidf("combo: attack ranges must be positive")
	}

	if len(t.Enemy.Types) == 0 {
		return invalidf("enemy: at least one enemy type is required")
	}
	if _, ok := t.Enemy.Types[t.Enemy.DefaultType]; !ok {
		return invalidf("enemy: default type %q is not defined", t.Enemy.DefaultType)
	}
	for name, e := range t.Enemy.Types {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("enemy %s: %w", name, err)
		}
	}

	switch {
	case t.Physics.Gravity < 0:
		return invalidf("physics: gravity cannot be negative, got %v", t.Physics.Gravity)
	case t.Sim.TickRate <= 0:
		return invalidf("sim: tickRate must be positive, got %d", t.Sim.TickRate)
	case t.Sim.CellSize <= 0:
		return invalidf("sim: cellSize must be positive, got %d", t.Sim.CellSize)
	}
	return nil
}

// Validate checks a single enemy type. An enemy without attack points could
// never hurt anyone and is rejected.
func (e EnemyTypeConfig) Validate() error {
	switch {
	case e.MaxHealth <= 0:
		return invalidf("maxHealth must be positive, got %d", e.MaxHealth)
	case len(e.AttackPoints) == 0:
		return invalidf("at least one attack point is required")
	case e.AttackVariants < 1:
		return invalidf("attackVariants must be at least 1, got %d", e.AttackVariants)
	case e.AttackRadius <= 0:
		return invalidf("attackRadius must be positive, got %v", e.AttackRadius)
	case e.Speed < 0 || e.DashForce < 0:
		return invalidf("speed and dashForce cannot be negative")
	case e.AttackDuration < e.HitDelay:
		return invalidf("attackDuration %v is shorter than hitDelay %v", e.AttackDuration, e.HitDelay)
	case e.CollisionWidth <= 0 || e.CollisionHeight <= 0:
		return invalidf("collision size must be positive")
	}
	return nil
}

// DT is the fixed step length in seconds.
func (s SimConfig) DT() float64 {
	return 1 / float64(s.TickRate)
}
