package config

// Distances are in pixels, times in seconds, speeds in pixels per second.
// Values tuned in world units are scaled by PixelsPerUnit.
const PixelsPerUnit = 32.0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Resources
	MaxHealth            int     `yaml:"maxHealth"`
	MaxStamina           int     `yaml:"maxStamina"`
	StaminaRegenInterval float64 `yaml:"staminaRegenInterval"`
	StaminaRegenAmount   int     `yaml:"staminaRegenAmount"`

	// Movement
	RunSpeed             float64 `yaml:"runSpeed"`
	Acceleration         float64 `yaml:"acceleration"`
	Deceleration         float64 `yaml:"deceleration"`
	JumpForce            float64 `yaml:"jumpForce"`
	DoubleJumpMultiplier float64 `yaml:"doubleJumpMultiplier"`

	// Gravity scales applied to Physics.Gravity
	GravityScale           float64 `yaml:"gravityScale"`
	JumpAttackGravityScale float64 `yaml:"jumpAttackGravityScale"`

	// Roll mechanics
	MaxRolls             int     `yaml:"maxRolls"`
	RollRechargeInterval float64 `yaml:"rollRechargeInterval"`
	RollSpeedMultiplier  float64 `yaml:"rollSpeedMultiplier"` // impulse = multiplier * RunSpeed
	RollDuration         float64 `yaml:"rollDuration"`

	// Crouch mechanics
	CrouchHeightRatio float64 `yaml:"crouchHeightRatio"`
	CrouchAttackDrop  float64 `yaml:"crouchAttackDrop"` // attack point shift while crouched

	HurtDuration float64 `yaml:"hurtDuration"`

	// Attack point relative to the collider center, facing right
	AttackOffsetX     float64 `yaml:"attackOffsetX"`
	AttackOffsetY     float64 `yaml:"attackOffsetY"`
	JumpAttackOffsetX float64 `yaml:"jumpAttackOffsetX"`
	JumpAttackOffsetY float64 `yaml:"jumpAttackOffsetY"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// ComboConfig contains the player's attack chain tuning
type ComboConfig struct {
	Policy ComboPolicy `yaml:"policy"`

	MaxStandingSteps int `yaml:"maxStandingSteps"`
	MaxCrouchSteps   int `yaml:"maxCrouchSteps"`
	MaxAirSteps      int `yaml:"maxAirSteps"`

	// Stamina costs per mode. CrouchCost is ignored under ComboPolicyBase.
	StandingCost int `yaml:"standingCost"`
	CrouchCost   int `yaml:"crouchCost"`
	AirCost      int `yaml:"airCost"`

	AttackRate     float64 `yaml:"attackRate"` // attacks per second
	ComboMaxDelay  float64 `yaml:"comboMaxDelay"`
	PostComboDelay float64 `yaml:"postComboDelay"`
	AttackDuration float64 `yaml:"attackDuration"` // action lock per ground attack

	AttackRange  float64 `yaml:"attackRange"`
	AttackDamage int     `yaml:"attackDamage"`
	PerStepBonus int     `yaml:"perStepBonus"`

	AirAttackRange  float64 `yaml:"airAttackRange"`
	AirAttackDamage int     `yaml:"airAttackDamage"`
	AirKnockback    float64 `yaml:"airKnockback"`
}

// AttackPoint is an attack socket offset from the collider center, facing right.
type AttackPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name      string `yaml:"name"`
	MaxHealth int    `yaml:"maxHealth"`

	// Chase behavior
	Speed              float64 `yaml:"speed"`
	AttackRange        float64 `yaml:"attackRange"`
	DashRange          float64 `yaml:"dashRange"`
	DashForce          float64 `yaml:"dashForce"`
	DashCooldown       float64 `yaml:"dashCooldown"`
	DashWindup         float64 `yaml:"dashWindup"`
	CrouchDashInterval float64 `yaml:"crouchDashInterval"`

	// Melee
	AttackDamage    int           `yaml:"attackDamage"`
	AttackRadius    float64       `yaml:"attackRadius"`
	AttackPoints    []AttackPoint `yaml:"attackPoints"`
	AttackVariants  int           `yaml:"attackVariants"`
	HitDelay        float64       `yaml:"hitDelay"`
	AttackDuration  float64       `yaml:"attackDuration"`
	HitstunDuration float64       `yaml:"hitstunDuration"`

	// Physics
	GravityScale float64 `yaml:"gravityScale"`
	Deceleration float64 `yaml:"deceleration"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig `yaml:"types"`
	DefaultType string                     `yaml:"defaultType"`
}

// PhysicsConfig contains global physics values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	GroundProbe  float64 `yaml:"groundProbe"`
}

// SimConfig contains simulation and arena defaults
type SimConfig struct {
	TickRate    int `yaml:"tickRate"`
	CellSize    int `yaml:"cellSize"`
	ArenaWidth  int `yaml:"arenaWidth"`
	ArenaHeight int `yaml:"arenaHeight"`
}

// Tuning bundles every tunable section so a simulation can be built from
// one value instead of the package globals.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Combo   ComboConfig   `yaml:"combo"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Physics PhysicsConfig `yaml:"physics"`
	Sim     SimConfig     `yaml:"sim"`
}

var Player PlayerConfig
var Combo ComboConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Sim SimConfig

func init() {
	Physics = PhysicsConfig{
		Gravity:      9.81 * PixelsPerUnit,
		MaxFallSpeed: 30 * PixelsPerUnit,
		GroundProbe:  1,
	}

	Player = PlayerConfig{
		MaxHealth:            100,
		MaxStamina:           100,
		StaminaRegenInterval: 1.0,
		StaminaRegenAmount:   1,

		RunSpeed:             6 * PixelsPerUnit,
		Acceleration:         30 * PixelsPerUnit,
		Deceleration:         40 * PixelsPerUnit,
		JumpForce:            15 * PixelsPerUnit,
		DoubleJumpMultiplier: 0.8,

		GravityScale:           3,
		JumpAttackGravityScale: 6,

		MaxRolls:             3,
		RollRechargeInterval: 10,
		RollSpeedMultiplier:  2.5,
		RollDuration:         0.4,

		CrouchHeightRatio: 0.75,
		CrouchAttackDrop:  0.2 * PixelsPerUnit,

		HurtDuration: 0.3,

		AttackOffsetX:     0.6 * PixelsPerUnit,
		AttackOffsetY:     0,
		JumpAttackOffsetX: 0.2 * PixelsPerUnit,
		JumpAttackOffsetY: 0.5 * PixelsPerUnit,

		CollisionWidth:  16,
		CollisionHeight: 40,
	}

	Combo = ComboConfig{
		Policy: ComboPolicyBase,

		MaxStandingSteps: 4,
		MaxCrouchSteps:   2,
		MaxAirSteps:      1,

		StandingCost: 5,
		CrouchCost:   5,
		AirCost:      20,

		AttackRate:     2,
		ComboMaxDelay:  0.7,
		PostComboDelay: 0.5,
		AttackDuration: 0.3,

		AttackRange:  0.5 * PixelsPerUnit,
		AttackDamage: 20,
		PerStepBonus: 0,

		AirAttackRange:  1.0 * PixelsPerUnit,
		AirAttackDamage: 30,
		AirKnockback:    10 * PixelsPerUnit,
	}

	Enemy = EnemyConfig{
		DefaultType: "Knight",
		Types: map[string]EnemyTypeConfig{
			"Knight": {
				Name:      "Knight",
				MaxHealth: 100,

				Speed:              2 * PixelsPerUnit,
				AttackRange:        3 * PixelsPerUnit,
				DashRange:          5 * PixelsPerUnit,
				DashForce:          15 * PixelsPerUnit,
				DashCooldown:       2,
				DashWindup:         0.2,
				CrouchDashInterval: 1.5,

				AttackDamage:    40,
				AttackRadius:    0.5 * PixelsPerUnit,
				AttackPoints:    []AttackPoint{{X: 0.8 * PixelsPerUnit, Y: 0}},
				AttackVariants:  2,
				HitDelay:        0.3,
				AttackDuration:  1 / 1.5,
				HitstunDuration: 0.4,

				GravityScale: 3,
				Deceleration: 40 * PixelsPerUnit,

				CollisionWidth:  20,
				CollisionHeight: 44,
			},
			// Two sockets: a target standing inside both takes two hits.
			"Brute": {
				Name:      "Brute",
				MaxHealth: 160,

				Speed:              1.5 * PixelsPerUnit,
				AttackRange:        2.5 * PixelsPerUnit,
				DashRange:          6 * PixelsPerUnit,
				DashForce:          12 * PixelsPerUnit,
				DashCooldown:       3,
				DashWindup:         0.35,
				CrouchDashInterval: 2,

				AttackDamage: 25,
				AttackRadius: 0.6 * PixelsPerUnit,
				AttackPoints: []AttackPoint{
					{X: 0.7 * PixelsPerUnit, Y: -0.3 * PixelsPerUnit},
					{X: 1.1 * PixelsPerUnit, Y: 0.3 * PixelsPerUnit},
				},
				AttackVariants:  1,
				HitDelay:        0.45,
				AttackDuration:  0.9,
				HitstunDuration: 0.25,

				GravityScale: 3,
				Deceleration: 30 * PixelsPerUnit,

				CollisionWidth:  28,
				CollisionHeight: 52,
			},
		},
	}

	Sim = SimConfig{
		TickRate:    60,
		CellSize:    16,
		ArenaWidth:  1280,
		ArenaHeight: 480,
	}
}

// Current returns the package-level tuning as one value.
// Enemy types are copied so callers may edit the map freely.
func Current() Tuning {
	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, t := range Enemy.Types {
		t.AttackPoints = append([]AttackPoint(nil), t.AttackPoints...)
		types[name] = t
	}
	enemy := Enemy
	enemy.Types = types

	return Tuning{
		Player:  Player,
		Combo:   Combo,
		Enemy:   enemy,
		Physics: Physics,
		Sim:     Sim,
	}
}

// Base is the flat-cost preset: crouch attacks cost the same as standing
// ones and a finished combo wraps straight back to step one.
func Base() Tuning {
	t := Current()
	t.Combo.Policy = ComboPolicyBase
	t.Combo.StandingCost = 5
	t.Combo.CrouchCost = 5
	t.Combo.AirCost = 20
	t.Combo.PerStepBonus = 0
	t.Player.StaminaRegenAmount = 1
	return t
}

// Advanced adds per-mode costs, combo damage scaling and a post-combo lockout.
func Advanced() Tuning {
	t := Current()
	t.Combo.Policy = ComboPolicyLockout
	t.Combo.StandingCost = 10
	t.Combo.CrouchCost = 5
	t.Combo.AirCost = 25
	t.Combo.PerStepBonus = 5
	t.Player.StaminaRegenAmount = 3
	return t
}

// Preset returns the named tuning preset.
func Preset(name string) (Tuning, error) {
	switch name {
	case "", "base":
		return Base(), nil
	case "advanced":
		return Advanced(), nil
	}
	return Tuning{}, invalidf("unknown preset %q", name)
}
