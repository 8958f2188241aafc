package core

import (
	"github.com/automoto/bladecore/components"
	"github.com/automoto/bladecore/shared/netcomponents"
	"github.com/automoto/bladecore/sim"
	"github.com/yohamta/donburi"
)

// attachNetComponents gives every actor a body and actor snapshot and creates
// the match entity. Components are added before the first tick so the
// simulation's archetypes never change mid-query.
func attachNetComponents(s *sim.Simulation) (actors []*donburi.Entry, match *donburi.Entry) {
	actors = append(actors, s.Player())
	actors = append(actors, s.Enemies()...)
	for _, e := range actors {
		e.AddComponent(netcomponents.NetBody)
		e.AddComponent(netcomponents.NetActor)
	}

	world := s.World()
	match = world.Entry(world.Create(netcomponents.NetMatch))
	return actors, match
}

// publishActor mirrors an actor's simulation state into its net components.
func publishActor(e *donburi.Entry) {
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	ledger := components.Ledger.Get(e)
	actor := components.Actor.Get(e)

	pos := obj.Position()
	netcomponents.NetBody.SetValue(e, netcomponents.NetBodyData{
		X:    pos.X,
		Y:    pos.Y,
		VelX: physics.Velocity.X,
		VelY: physics.Velocity.Y,
	})

	facing := 1
	if physics.Facing < 0 {
		facing = -1
	}
	netcomponents.NetActor.SetValue(e, netcomponents.NetActorData{
		ActorID:     uint32(actor.ID),
		Kind:        actor.Kind,
		TypeName:    actor.Name,
		StateID:     components.State.Get(e).CurrentState,
		Facing:      facing,
		Health:      ledger.Health,
		MaxHealth:   ledger.MaxHealth,
		HealthRatio: ledger.HealthRatio(),
		Stamina:     ledger.Stamina,
		MaxStamina:  ledger.MaxStamina,
		Dead:        ledger.Dead,
	})
}

// publishMatch mirrors the clock, outcome and roll readout.
func publishMatch(s *sim.Simulation, match *donburi.Entry) {
	hud := s.HUD()
	netcomponents.NetMatch.SetValue(match, netcomponents.NetMatchData{
		Time:           s.Now(),
		Paused:         s.Paused(),
		Outcome:        s.Outcome(),
		RollCharges:    hud.RollCharges,
		MaxRollCharges: hud.MaxRollCharges,
		RollTimer:      hud.RollTimer,
		RollInterval:   hud.RollInterval,
	})
}
