package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Solid  = donburi.NewTag().SetName("Solid")
)

// Resolv tags for physics collision and overlap layers
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
)

// OpposingLayer returns the overlap layer an actor on layer attacks.
func OpposingLayer(layer string) string {
	if layer == ResolvPlayer {
		return ResolvEnemy
	}
	return ResolvPlayer
}
