// Package sim assembles the gameplay core into a fixed-step simulation: one
// player, any number of enemies and the arena they fight in.
package sim

import (
	"fmt"
	"sort"

	"github.com/automoto/bladecore/components"
	"github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/logger"
	"github.com/automoto/bladecore/shared/leveldata"
	"github.com/automoto/bladecore/systems"
	"github.com/automoto/bladecore/systems/factory"
	"github.com/automoto/bladecore/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configure a Simulation. Nil sinks are replaced with no-ops and a
// nil Random always picks the first attack variant.
type Options struct {
	Tuning config.Tuning
	// Arena defaults to a walled box sized by Tuning.Sim.
	Arena *leveldata.Arena

	Animation components.AnimationSink
	Audio     components.AudioSink
	Random    components.RandomSource
}

// Simulation owns the world and runs the systems once per Advance.
type Simulation struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	tuning config.Tuning
	paused bool
}

// New validates the tuning and builds the arena. Configuration errors wrap
// config.ErrInvalidConfiguration.
func New(opts Options) (*Simulation, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, err
	}
	arena := opts.Arena
	if arena == nil {
		arena = leveldata.DefaultArena(opts.Tuning.Sim.ArenaWidth, opts.Tuning.Sim.ArenaHeight)
	}

	world := donburi.NewWorld()
	ecs := ecs.NewECS(world)

	ctx := components.ContextOf(world)
	ctx.Physics = opts.Tuning.Physics
	if opts.Animation != nil {
		ctx.Animation = opts.Animation
	}
	if opts.Audio != nil {
		ctx.Audio = opts.Audio
	}
	if opts.Random != nil {
		ctx.Random = opts.Random
	}

	systems.GetOrCreateClock(ecs)
	systems.GetOrCreateAudio(ecs)
	systems.GetOrCreateMatch(ecs)

	player, err := factory.CreateArena(ecs, arena, opts.Tuning)
	if err != nil {
		return nil, err
	}
	spaceEntry, _ := components.Space.First(world)
	components.ContextOf(world).Overlap = systems.SpaceOverlap{Space: components.Space.Get(spaceEntry)}

	ecs.AddSystem(systems.UpdateLocomotion)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdatePlayerActions)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateStamina)
	ecs.AddSystem(systems.UpdateMatch)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdateAudio)

	logger.Log.WithFields(logrus.Fields{
		"arena":   arena.Name,
		"enemies": len(arena.EnemySpawns),
		"policy":  opts.Tuning.Combo.Policy,
	}).Info("simulation ready")

	return &Simulation{
		ecs:    ecs,
		player: player,
		tuning: opts.Tuning,
	}, nil
}

// Advance runs one tick of length dt with the given intent. A paused
// simulation, or a dt that is not positive (NaN included), ignores the call
// and reports false.
func (s *Simulation) Advance(dt float64, intent components.IntentData) bool {
	if s.paused || !(dt > 0) {
		return false
	}
	systems.GetOrCreateClock(s.ecs).Advance(dt)
	components.Intent.SetValue(s.player, intent.Clamped())
	s.ecs.Update()
	return true
}

// Step advances by the configured fixed step.
func (s *Simulation) Step(intent components.IntentData) bool {
	return s.Advance(s.tuning.Sim.DT(), intent)
}

// SetPaused freezes the simulation clock; nothing moves or regenerates while
// paused.
func (s *Simulation) SetPaused(paused bool) {
	s.paused = paused
}

func (s *Simulation) Paused() bool {
	return s.paused
}

func (s *Simulation) Outcome() config.Outcome {
	return systems.GetOrCreateMatch(s.ecs).Outcome
}

func (s *Simulation) HUD() systems.HUDSnapshot {
	hud, _ := systems.HUD(s.ecs.World)
	return hud
}

// Now is the simulation time in seconds.
func (s *Simulation) Now() float64 {
	return systems.GetOrCreateClock(s.ecs).Now
}

func (s *Simulation) Tuning() config.Tuning {
	return s.tuning
}

func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

// ECS exposes the system runner for callers that drive systems directly.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Simulation) Player() *donburi.Entry {
	return s.player
}

// Enemies returns the enemy entries in actor ID order, dead ones included.
func (s *Simulation) Enemies() []*donburi.Entry {
	var enemies []*donburi.Entry
	tags.Enemy.Each(s.ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	sort.Slice(enemies, func(i, j int) bool {
		return components.Actor.Get(enemies[i]).ID < components.Actor.Get(enemies[j]).ID
	})
	return enemies
}

// ApplyTuning swaps in new tuning between ticks. Pools keep their current
// values clamped to the new maxima; a combo keeps its step unless the
// new chain is shorter.
func (s *Simulation) ApplyTuning(t config.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	enemies := s.Enemies()
	for _, e := range enemies {
		name := components.Enemy.Get(e).TypeName
		if _, ok := t.Enemy.Types[name]; !ok {
			return fmt.Errorf("%w: enemy type %q missing from new tuning", config.ErrInvalidConfiguration, name)
		}
	}

	components.ContextOf(s.ecs.World).Physics = t.Physics

	player := components.Player.Get(s.player)
	player.Config = t.Player
	ledger := components.Ledger.Get(s.player)
	ledger.MaxHealth = t.Player.MaxHealth
	ledger.MaxStamina = t.Player.MaxStamina
	ledger.RegenInterval = t.Player.StaminaRegenInterval
	ledger.RegenAmount = t.Player.StaminaRegenAmount
	clampLedger(ledger)

	rolls := components.RollPool.Get(s.player)
	rolls.Max = t.Player.MaxRolls
	rolls.Interval = t.Player.RollRechargeInterval
	if rolls.Charges > rolls.Max {
		rolls.Charges = rolls.Max
	}

	components.Combo.Get(s.player).Retune(t.Combo)
	physics := components.Physics.Get(s.player)
	if !components.Locomotion.Get(s.player).JumpAttacking {
		physics.GravityScale = t.Player.GravityScale
	}

	for _, e := range enemies {
		enemy := components.Enemy.Get(e)
		typeCfg := t.Enemy.Types[enemy.TypeName]
		typeCfg.AttackPoints = append([]config.AttackPoint(nil), typeCfg.AttackPoints...)
		enemy.TypeConfig = typeCfg
		enemyLedger := components.Ledger.Get(e)
		enemyLedger.MaxHealth = typeCfg.MaxHealth
		clampLedger(enemyLedger)
		enemyPhysics := components.Physics.Get(e)
		enemyPhysics.GravityScale = typeCfg.GravityScale
		enemyPhysics.Deceleration = typeCfg.Deceleration
	}

	s.tuning = t
	logger.Log.WithField("policy", t.Combo.Policy).Info("tuning applied")
	return nil
}

func clampLedger(l *components.LedgerData) {
	if l.Dead {
		return
	}
	if l.Health > l.MaxHealth {
		l.Health = l.MaxHealth
	}
	if l.Stamina > l.MaxStamina {
		l.Stamina = l.MaxStamina
	}
}
