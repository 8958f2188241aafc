package factory

import (
	"github.com/automoto/bladecore/archetypes"
	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing with its feet at x, y.
func CreatePlayer(ecs *ecs.ECS, x, y float64, p cfg.PlayerConfig, c cfg.ComboConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs.World)
	ctx := components.ContextOf(ecs.World)

	w, h := p.CollisionWidth, p.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Actor.SetValue(player, components.ActorData{
		ID:   ctx.NextActorID(),
		Kind: cfg.KindPlayer,
		Name: "Player",
	})
	components.Player.SetValue(player, components.PlayerData{
		Config:         p,
		StandingHeight: h,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		GravityScale: p.GravityScale,
		Facing:       1,
		Grounded:     true,
	})
	components.Ledger.SetValue(player, components.NewLedger(
		p.MaxHealth, p.MaxStamina, p.StaminaRegenInterval, p.StaminaRegenAmount,
	))
	components.Combo.SetValue(player, components.NewCombo(c))
	components.RollPool.SetValue(player, components.NewRollPool(p.MaxRolls, p.RollRechargeInterval))
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})

	return player
}
