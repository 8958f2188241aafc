package systems

import (
	"math"
	"testing"

	"github.com/automoto/bladecore/components"
	cfg "github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/systems/factory"
	"github.com/automoto/bladecore/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const testFloor = 448.0

// newTestECS builds a 640x480 world with a floor and a player at x=100.
func newTestECS(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 480, 16, 16)
	factory.CreateSolid(e, 0, testFloor, 640, 32)

	spaceEntry, _ := components.Space.First(e.World)
	ctx := components.ContextOf(e.World)
	ctx.Overlap = SpaceOverlap{Space: components.Space.Get(spaceEntry)}
	ctx.Physics = cfg.Physics

	GetOrCreateClock(e)
	player := factory.CreatePlayer(e, 100, testFloor, cfg.Player, cfg.Combo)
	return e, player
}

func spawnEnemy(t *testing.T, e *ecs.ECS, x float64, typeName string) *donburi.Entry {
	t.Helper()
	enemy, err := factory.CreateEnemy(e, x, testFloor, typeName, cfg.Enemy)
	if err != nil {
		t.Fatalf("CreateEnemy failed: %v", err)
	}
	return enemy
}

func tick(e *ecs.ECS, fns ...func(*ecs.ECS)) {
	GetOrCreateClock(e).Advance(1.0 / 60)
	for _, fn := range fns {
		fn(e)
	}
}

func countSFX(e *ecs.ECS, sound cfg.SoundID) int {
	n := 0
	for _, s := range GetOrCreateAudio(e).PendingSFX {
		if s == sound {
			n++
		}
	}
	return n
}

func TestSpaceOverlapOrdersByActorID(t *testing.T) {
	e, _ := newTestECS(t)
	spawnEnemy(t, e, 140, "Knight")
	spawnEnemy(t, e, 60, "Knight")
	overlap := components.ContextOf(e.World).Overlap
	center := dmath.Vec2{X: 100, Y: 426}

	ids := func(entries []*donburi.Entry) []components.ActorID {
		var out []components.ActorID
		for _, entry := range entries {
			out = append(out, components.Actor.Get(entry).ID)
		}
		return out
	}

	tests := []struct {
		name   string
		radius float64
		layer  string
		want   []components.ActorID
	}{
		{"both enemies", 60, tags.ResolvEnemy, []components.ActorID{2, 3}},
		{"player layer", 60, tags.ResolvPlayer, []components.ActorID{1}},
		{"out of reach", 10, tags.ResolvEnemy, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(overlap.QueryCircle(center, tt.radius, tt.layer))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestResolveAttackHitsOncePerPoint(t *testing.T) {
	e, player := newTestECS(t)
	knight := spawnEnemy(t, e, 140, "Knight")

	attack := AttackAction{
		Attacker: player,
		Points:   []dmath.Vec2{{X: 140, Y: 420}, {X: 142, Y: 430}},
		Radius:   4,
		Damage:   10,
		Layer:    tags.ResolvEnemy,
	}

	hits := ResolveAttack(e, attack)
	if len(hits) != 2 {
		t.Fatalf("expected one hit per point, got %d", len(hits))
	}
	if got := components.Ledger.Get(knight).Health; got != 80 {
		t.Errorf("expected health 80, got %d", got)
	}
	if got := components.Behavior.Get(knight).State; got != cfg.BehaviorStunned {
		t.Errorf("a hit enemy should be stunned, got %v", got)
	}

	Kill(e, knight)
	Kill(e, knight)
	if countSFX(e, cfg.SoundDeath) != 1 {
		t.Error("death side effects ran more than once")
	}
	if !components.Physics.Get(knight).Static {
		t.Error("a dead enemy should be static")
	}
	if got := components.Behavior.Get(knight).State; got != cfg.BehaviorDead {
		t.Errorf("expected Dead behavior, got %v", got)
	}

	if hits := ResolveAttack(e, attack); len(hits) != 0 {
		t.Errorf("dead enemies cannot be hit, got %d hits", len(hits))
	}
}

func TestResolveAttackSkipsAttacker(t *testing.T) {
	e, player := newTestECS(t)
	pos := components.Object.Get(player).Position()

	hits := ResolveAttack(e, AttackAction{
		Attacker: player,
		Points:   []dmath.Vec2{pos},
		Radius:   8,
		Damage:   10,
		Layer:    tags.ResolvPlayer,
	})
	if len(hits) != 0 {
		t.Errorf("an attacker should never hit itself, got %d hits", len(hits))
	}
}

func TestKnockbackPushesAwayFromPoint(t *testing.T) {
	e, player := newTestECS(t)
	knight := spawnEnemy(t, e, 140, "Knight")
	pos := components.Object.Get(knight).Position()

	ResolveAttack(e, AttackAction{
		Attacker:  player,
		Points:    []dmath.Vec2{{X: pos.X - 12, Y: pos.Y}},
		Radius:    4,
		Damage:    1,
		Knockback: 300,
		Layer:     tags.ResolvEnemy,
	})

	v := components.Physics.Get(knight).Velocity
	if math.Abs(v.X-300) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Errorf("expected a push of 300 to the right, got %+v", v)
	}
}

func TestKnockbackDoesNotStackAcrossPoints(t *testing.T) {
	e, player := newTestECS(t)
	knight := spawnEnemy(t, e, 140, "Knight")
	pos := components.Object.Get(knight).Position()

	hits := ResolveAttack(e, AttackAction{
		Attacker:  player,
		Points:    []dmath.Vec2{{X: pos.X - 12, Y: pos.Y}, {X: pos.X - 10, Y: pos.Y}},
		Radius:    4,
		Damage:    1,
		Knockback: 300,
		Layer:     tags.ResolvEnemy,
	})
	if len(hits) != 2 {
		t.Fatalf("expected two hits, got %d", len(hits))
	}

	if vx := components.Physics.Get(knight).Velocity.X; math.Abs(vx-300) > 1e-9 {
		t.Errorf("stacked knockback should cap at 300, got %v", vx)
	}
}

func TestCollisionsLandOnFloor(t *testing.T) {
	e, player := newTestECS(t)
	obj := components.Object.Get(player)
	physics := components.Physics.Get(player)
	obj.Y = 200
	obj.Update()
	physics.Grounded = false

	landings := 0
	for i := 0; i < 120; i++ {
		tick(e, UpdatePhysics, UpdateCollisions)
		if physics.Landed {
			landings++
		}
	}

	if !physics.Grounded || landings != 1 {
		t.Fatalf("expected exactly one landing, grounded=%v landings=%d", physics.Grounded, landings)
	}
	if math.Abs(obj.Bottom()-testFloor) > 0.01 {
		t.Errorf("expected feet on the floor at %v, got %v", testFloor, obj.Bottom())
	}
	if physics.Velocity.Y != 0 {
		t.Errorf("a grounded body should have no vertical speed, got %v", physics.Velocity.Y)
	}
}

func TestSolidsBlockHorizontalMovement(t *testing.T) {
	e, player := newTestECS(t)
	factory.CreateSolid(e, 200, 300, 16, 148)
	obj := components.Object.Get(player)
	physics := components.Physics.Get(player)

	for i := 0; i < 60; i++ {
		physics.Velocity.X = 600
		tick(e, UpdatePhysics, UpdateCollisions)
	}

	if right := obj.X + obj.W; right > 200+contactSlop {
		t.Errorf("player passed into the wall, right edge %v", right)
	}
	if right := obj.X + obj.W; right < 199 {
		t.Errorf("player should reach the wall, right edge %v", right)
	}
	if physics.Velocity.X != 0 {
		t.Errorf("a blocked body should lose its horizontal speed, got %v", physics.Velocity.X)
	}
}

func TestEnemyIdlesWithoutLivingPlayer(t *testing.T) {
	e, player := newTestECS(t)
	knight := spawnEnemy(t, e, 500, "Knight")
	behavior := components.Behavior.Get(knight)

	tick(e, UpdateEnemies)
	if behavior.State != cfg.BehaviorChase || behavior.Target != player.Entity() {
		t.Fatalf("expected the knight to chase the player, got %v", behavior.State)
	}

	Kill(e, player)
	tick(e, UpdateEnemies)
	if behavior.State != cfg.BehaviorIdle || behavior.Target != donburi.Null {
		t.Errorf("expected Idle without a target, got %v", behavior.State)
	}
}

func TestLocomotionStatePriority(t *testing.T) {
	rolling := gween.New(1, 0, 1, ease.Linear)

	tests := []struct {
		name    string
		loco    components.LocomotionData
		action  components.ActionData
		physics components.PhysicsData
		want    cfg.LocomotionState
	}{
		{"grounded", components.LocomotionData{}, components.ActionData{}, components.PhysicsData{Grounded: true}, cfg.Grounded},
		{"airborne", components.LocomotionData{}, components.ActionData{}, components.PhysicsData{}, cfg.Airborne},
		{"crouching", components.LocomotionData{Crouched: true}, components.ActionData{}, components.PhysicsData{Grounded: true}, cfg.Crouching},
		{"attack locks", components.LocomotionData{Crouched: true}, components.ActionData{Kind: cfg.ActionCrouchAttack}, components.PhysicsData{Grounded: true}, cfg.ActionLocked},
		{"dive beats lock", components.LocomotionData{JumpAttacking: true}, components.ActionData{Kind: cfg.ActionHurt}, components.PhysicsData{}, cfg.JumpAttackFalling},
		{"roll beats all", components.LocomotionData{RollTween: rolling, JumpAttacking: true}, components.ActionData{Kind: cfg.ActionAttack}, components.PhysicsData{}, cfg.Rolling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := locomotionState(&tt.loco, &tt.action, &tt.physics); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHUDLines(t *testing.T) {
	e, player := newTestECS(t)
	components.Ledger.Get(player).Stamina = 42
	rolls := components.RollPool.Get(player)
	rolls.Charges = 1
	rolls.Timer = 3.5

	hud, ok := HUD(e.World)
	if !ok {
		t.Fatal("expected a HUD for the player")
	}

	want := []string{
		"Health: 100 / 100",
		"Stamina: 42 / 100",
		"Rolls Left: 1 / 3",
		"Roll Cooldown: 3.5s / 10.0s",
	}
	got := hud.Lines()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestBotIntentApproachesAndSwings(t *testing.T) {
	e, _ := newTestECS(t)
	spawnEnemy(t, e, 400, "Knight")

	intent := BotIntent(e.World)
	if intent.MoveAxis != 1 || intent.Attack {
		t.Errorf("expected the bot to walk right, got %+v", intent)
	}

	near, _ := newTestECS(t)
	spawnEnemy(t, near, 120, "Knight")
	intent = BotIntent(near.World)
	if !intent.Attack {
		t.Errorf("expected the bot to swing at a close enemy, got %+v", intent)
	}
}
