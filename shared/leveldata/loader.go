package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	SolidLayer  = "solids"
	SolidGroup  = "Solids"
	PlayerGroup = "PlayerSpawn"
	EnemyGroup  = "EnemySpawn"
)

// ErrNoPlayerSpawn is returned for arenas without a PlayerSpawn object.
var ErrNoPlayerSpawn = errors.New("arena has no player spawn")

// LoadArena parses a TMX file. Solid tiles come from the "solids" tile layer
// and rectangles from the "Solids" object group; both may be present. It takes
// an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				arena.Solids = append(arena.Solids, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
	}

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SolidGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Solids = append(arena.Solids, SolidRect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case PlayerGroup:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.PlayerSpawn = SpawnPoint{X: o.X, Y: o.Y}
				foundPlayer = true
			}
		case EnemyGroup:
			for _, o := range og.Objects {
				arena.EnemySpawns = append(arena.EnemySpawns, EnemySpawn{
					SpawnPoint: SpawnPoint{X: o.X, Y: o.Y},
					Type:       o.Properties.GetString("type"),
				})
			}
		}
	}
	if !foundPlayer {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Left-to-right so actor IDs follow the map layout
	sort.SliceStable(arena.EnemySpawns, func(i, j int) bool {
		return arena.EnemySpawns[i].X < arena.EnemySpawns[j].X
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}

// DefaultArena is a walled box with a floor, the player on the left quarter
// and one enemy of the default type on the right quarter.
func DefaultArena(width, height int) *Arena {
	const thickness = 32.0
	w, h := float64(width), float64(height)
	floor := h - thickness

	return &Arena{
		Name:   "default",
		Width:  width,
		Height: height,
		Solids: []SolidRect{
			{X: 0, Y: floor, W: w, H: thickness},
			{X: 0, Y: 0, W: thickness, H: floor},
			{X: w - thickness, Y: 0, W: thickness, H: floor},
		},
		PlayerSpawn: SpawnPoint{X: w / 4, Y: floor},
		EnemySpawns: []EnemySpawn{{SpawnPoint: SpawnPoint{X: w * 3 / 4, Y: floor}}},
	}
}
