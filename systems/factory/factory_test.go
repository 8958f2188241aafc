package factory

import (
	"errors"
	"testing"

	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 640, 480, 16, 16)
	return e
}

func TestCreateEnemyTypes(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		wantName string
		wantErr  error
	}{
		{"default type", "", "Knight", nil},
		{"named type", "Brute", "Brute", nil},
		{"unknown type", "Dragon", "", cfg.ErrInvalidConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			enemy, err := CreateEnemy(e, 100, 448, tt.typeName, cfg.Current().Enemy)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if err != nil {
				return
			}
			if got := components.Enemy.Get(enemy).TypeName; got != tt.wantName {
				t.Errorf("expected type %q, got %q", tt.wantName, got)
			}
			if got := components.Ledger.Get(enemy).Health; got != cfg.Enemy.Types[tt.wantName].MaxHealth {
				t.Errorf("expected full health, got %d", got)
			}
		})
	}
}

func TestCreateEnemyRejectsMissingAttackPoints(t *testing.T) {
	enemies := cfg.Current().Enemy
	knight := enemies.Types["Knight"]
	knight.AttackPoints = nil
	enemies.Types["Knight"] = knight

	if _, err := CreateEnemy(newTestECS(), 100, 448, "Knight", enemies); !errors.Is(err, cfg.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestCreatePlayerStandsOnSpawn(t *testing.T) {
	e := newTestECS()
	player := CreatePlayer(e, 100, 448, cfg.Player, cfg.Combo)
	obj := components.Object.Get(player)

	if obj.Bottom() != 448 || obj.Position().X != 100 {
		t.Errorf("expected feet at (100, 448), got center x %v bottom %v", obj.Position().X, obj.Bottom())
	}
	if rolls := components.RollPool.Get(player); rolls.Charges != cfg.Player.MaxRolls {
		t.Errorf("expected a full roll pool, got %d", rolls.Charges)
	}
}

func TestCreateArenaAssignsIDsInSpawnOrder(t *testing.T) {
	e := newTestECS()
	arena := leveldata.DefaultArena(640, 480)
	arena.EnemySpawns = append(arena.EnemySpawns, leveldata.EnemySpawn{
		SpawnPoint: leveldata.SpawnPoint{X: 500, Y: 448},
		Type:       "Brute",
	})

	player, err := CreateArena(e, arena, cfg.Current())
	if err != nil {
		t.Fatalf("CreateArena failed: %v", err)
	}
	if id := components.Actor.Get(player).ID; id != 1 {
		t.Errorf("expected the player to be actor 1, got %d", id)
	}

	var ids []components.ActorID
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		ids = append(ids, components.Actor.Get(entry).ID)
	})
	if len(ids) != 2 {
		t.Fatalf("expected two enemies, got %d", len(ids))
	}

	bad := leveldata.DefaultArena(640, 480)
	bad.EnemySpawns[0].Type = "Dragon"
	if _, err := CreateArena(newTestECS(), bad, cfg.Current()); !errors.Is(err, cfg.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration for an unknown spawn type, got %v", err)
	}
}
