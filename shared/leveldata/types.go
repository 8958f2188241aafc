// Package leveldata parses TMX arenas into plain data. It has no dependencies
// on donburi or resolv so loaders and tools can share it.
package leveldata

// Arena holds everything the simulation needs from a level file.
type Arena struct {
	Name        string
	Width       int
	Height      int
	Solids      []SolidRect
	PlayerSpawn SpawnPoint
	EnemySpawns []EnemySpawn
}

// SolidRect is a static collision rectangle, top-left anchored.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint is the point between an actor's feet.
type SpawnPoint struct {
	X, Y float64
}

// EnemySpawn places an enemy of the named type. An empty type selects the
// configured default.
type EnemySpawn struct {
	SpawnPoint
	Type string
}
