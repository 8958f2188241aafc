package factory

import (
	"fmt"

	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena builds the collision space, the solids, the player and every
// enemy of an arena, and returns the player entry.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena, tuning cfg.Tuning) (*donburi.Entry, error) {
	cell := tuning.Sim.CellSize
	CreateSpace(ecs, arena.Width, arena.Height, cell, cell)

	for _, s := range arena.Solids {
		CreateSolid(ecs, s.X, s.Y, s.W, s.H)
	}

	player := CreatePlayer(ecs, arena.PlayerSpawn.X, arena.PlayerSpawn.Y, tuning.Player, tuning.Combo)

	for i, spawn := range arena.EnemySpawns {
		if _, err := CreateEnemy(ecs, spawn.X, spawn.Y, spawn.Type, tuning.Enemy); err != nil {
			return nil, fmt.Errorf("arena %s, enemy spawn %d: %w", arena.Name, i, err)
		}
	}

	return player, nil
}
