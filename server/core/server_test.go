package core

import (
	"testing"

	"github.com/automoto/bladecore/config"
	"github.com/automoto/bladecore/logger"
	"github.com/automoto/bladecore/shared/messages"
	"github.com/automoto/bladecore/shared/netcomponents"
	"github.com/automoto/bladecore/sim"
	"github.com/automoto/bladecore/systems"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

const testDT = 1.0 / 60

func newTestServer(t *testing.T, demo bool) *Server {
	t.Helper()
	s, err := newServer(Options{Name: "test", Demo: demo}, sim.Options{Tuning: config.Base()})
	if err != nil {
		t.Fatalf("newServer failed: %v", err)
	}
	return s
}

func TestMailboxLatchesPresses(t *testing.T) {
	var m intentMailbox

	m.Put(messages.PlayerIntent{Sequence: 1, MoveAxis: 1, Jump: true})
	m.Put(messages.PlayerIntent{Sequence: 2, MoveAxis: -1, CrouchHeld: true})

	first := m.Take()
	if !first.Jump || first.MoveAxis != -1 || !first.CrouchHeld {
		t.Errorf("expected the latched jump with the newest axis, got %+v", first)
	}

	second := m.Take()
	if second.Jump {
		t.Error("a press should be consumed by one tick")
	}
	if second.MoveAxis != -1 || !second.CrouchHeld {
		t.Errorf("held inputs should persist, got %+v", second)
	}
}

func TestMailboxDropsStaleIntents(t *testing.T) {
	tests := []struct {
		name   string
		seqs   []uint32
		accept []bool
	}{
		{"increasing", []uint32{1, 2, 3}, []bool{true, true, true}},
		{"repeat", []uint32{4, 4}, []bool{true, false}},
		{"out of order", []uint32{5, 3, 6}, []bool{true, false, true}},
		{"unsequenced", []uint32{0, 0}, []bool{true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m intentMailbox
			for i, seq := range tt.seqs {
				if got := m.Put(messages.PlayerIntent{Sequence: seq}); got != tt.accept[i] {
					t.Errorf("intent %d (seq %d): expected accepted=%v, got %v", i, seq, tt.accept[i], got)
				}
			}
		})
	}
}

func TestMailboxResetForgetsSequence(t *testing.T) {
	var m intentMailbox
	m.Put(messages.PlayerIntent{Sequence: 9, Attack: true})
	m.Reset()

	if got := m.Take(); got.Attack {
		t.Error("reset should drop latched presses")
	}
	if !m.Put(messages.PlayerIntent{Sequence: 1}) {
		t.Error("a new client should start its own sequence")
	}
}

func TestMailboxPause(t *testing.T) {
	var m intentMailbox
	if _, ok := m.TakePause(); ok {
		t.Fatal("no pause was requested")
	}

	m.RequestPause(true)
	paused, ok := m.TakePause()
	if !ok || !paused {
		t.Fatalf("expected a pause request, got paused=%v ok=%v", paused, ok)
	}
	if _, ok := m.TakePause(); ok {
		t.Error("a pause request should be consumed once")
	}
}

func TestPublishMirrorsActors(t *testing.T) {
	s := newTestServer(t, false)

	if len(s.actors) != 2 {
		t.Fatalf("expected the player and one enemy, got %d actors", len(s.actors))
	}
	player := netcomponents.NetActor.Get(s.actors[0])
	if player.ActorID != 1 || player.Kind != config.KindPlayer || player.Health != 100 {
		t.Errorf("unexpected player snapshot %+v", *player)
	}
	if player.HealthRatio != 1 {
		t.Errorf("expected a full health ratio, got %v", player.HealthRatio)
	}
	start := netcomponents.NetBody.Get(s.actors[0]).X

	for i := 0; i < 30; i++ {
		s.mailbox.Put(messages.PlayerIntent{MoveAxis: 1})
		s.advance(testDT)
	}

	body := netcomponents.NetBody.Get(s.actors[0])
	if body.X <= start || body.VelX <= 0 {
		t.Errorf("expected the player to move right, x %v -> %v, vx %v", start, body.X, body.VelX)
	}
	match := netcomponents.NetMatch.Get(s.match)
	if match.Time < 0.49 || match.MaxRollCharges != 3 {
		t.Errorf("unexpected match snapshot %+v", *match)
	}
}

func TestAdvanceQueuesEvents(t *testing.T) {
	s := newTestServer(t, false)

	s.mailbox.Put(messages.PlayerIntent{Jump: true})
	s.advance(testDT)

	var sawSound, sawState bool
	for _, event := range s.events.Drain() {
		switch e := event.(type) {
		case messages.SoundEvent:
			sawSound = sawSound || e.Clip == config.SoundJump.String()
		case messages.StateEvent:
			sawState = sawState || (e.ActorID == 1 && e.Trigger == "Jump")
		}
	}
	if !sawSound || !sawState {
		t.Errorf("expected jump sound and state events, sound=%v state=%v", sawSound, sawState)
	}
	if len(s.events.Drain()) != 0 {
		t.Error("drain should empty the queue")
	}
}

func TestOutcomeEventSentOnce(t *testing.T) {
	s := newTestServer(t, false)
	systems.Kill(s.sim.ECS(), s.sim.Player())

	outcomes := 0
	for i := 0; i < 3; i++ {
		s.advance(testDT)
		for _, event := range s.events.Drain() {
			if e, ok := event.(messages.OutcomeEvent); ok {
				outcomes++
				if e.Outcome != "defeat" {
					t.Errorf("expected defeat, got %q", e.Outcome)
				}
			}
		}
	}
	if outcomes != 1 {
		t.Errorf("expected one outcome event, got %d", outcomes)
	}
	if !netcomponents.NetActor.Get(s.actors[0]).Dead {
		t.Error("the snapshot should show the player dead")
	}
}

func TestPauseRequestFreezesClock(t *testing.T) {
	s := newTestServer(t, false)
	s.advance(testDT)
	before := s.sim.Now()

	s.mailbox.RequestPause(true)
	s.advance(testDT)
	if s.sim.Now() != before || !netcomponents.NetMatch.Get(s.match).Paused {
		t.Error("a paused server should not advance the clock")
	}

	s.mailbox.RequestPause(false)
	s.advance(testDT)
	if s.sim.Now() <= before {
		t.Error("resuming should advance the clock again")
	}
}

func TestDemoBotDrivesIdlePlayer(t *testing.T) {
	s := newTestServer(t, true)
	start := netcomponents.NetBody.Get(s.actors[0]).X

	for i := 0; i < 20; i++ {
		s.advance(testDT)
	}

	if x := netcomponents.NetBody.Get(s.actors[0]).X; x <= start {
		t.Errorf("expected the bot to walk toward the enemy, x %v -> %v", start, x)
	}
}

func TestApplyTuningLogsOnce(t *testing.T) {
	s := newTestServer(t, false)
	logger.Log.SetLevel(logrus.InfoLevel)
	hook := logtest.NewLocal(logger.Log)
	defer hook.Reset()

	next := config.Base()
	next.Player.MaxStamina = 80
	s.applyTuning(next)

	applied := 0
	for _, entry := range hook.AllEntries() {
		if entry.Message == "tuning applied" && entry.Level == logrus.InfoLevel {
			applied++
		}
	}
	if applied != 1 {
		t.Errorf("expected one tuning log entry, got %d", applied)
	}
	if got := s.Simulation().HUD().MaxStamina; got != 80 {
		t.Errorf("expected max stamina 80, got %d", got)
	}
}
