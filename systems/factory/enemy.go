package factory

import (
	"fmt"

	"github.com/automoto/bladecore/archetypes"
	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the named type with its feet at x, y. An
// empty name selects the default type. Unknown types and types that fail
// validation are rejected with ErrInvalidConfiguration.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyTypeName string, enemies cfg.EnemyConfig) (*donburi.Entry, error) {
	if enemyTypeName == "" {
		enemyTypeName = enemies.DefaultType
	}
	enemyType, exists := enemies.Types[enemyTypeName]
	if !exists {
		return nil, fmt.Errorf("%w: unknown enemy type %q", components.ErrInvalidConfiguration, enemyTypeName)
	}
	if err := enemyType.Validate(); err != nil {
		return nil, fmt.Errorf("enemy %s: %w", enemyTypeName, err)
	}
	enemyType.AttackPoints = append([]cfg.AttackPoint(nil), enemyType.AttackPoints...)

	enemy := archetypes.Enemy.Spawn(ecs.World)
	ctx := components.ContextOf(ecs.World)

	w, h := enemyType.CollisionWidth, enemyType.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Actor.SetValue(enemy, components.ActorData{
		ID:   ctx.NextActorID(),
		Kind: cfg.KindEnemy,
		Name: enemyTypeName,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   enemyTypeName,
		TypeConfig: enemyType,
	})
	components.Behavior.SetValue(enemy, components.BehaviorData{
		State:  cfg.BehaviorIdle,
		Target: donburi.Null,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		GravityScale: enemyType.GravityScale,
		Deceleration: enemyType.Deceleration,
		Facing:       -1,
		Grounded:     true,
	})
	// Enemies have no stamina pool.
	components.Ledger.SetValue(enemy, components.NewLedger(enemyType.MaxHealth, 0, 0, 0))
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})

	return enemy, nil
}
