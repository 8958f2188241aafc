package core

import (
	"sync"

	"github.com/automoto/bladecore/components"
	"github.com/automoto/bladecore/shared/messages"
)

// intentMailbox holds the newest intent from the controlling client until
// the game loop takes it. Router callbacks write from necs goroutines.
type intentMailbox struct {
	mu      sync.Mutex
	latest  components.IntentData
	lastSeq uint32

	pauseSet bool
	paused   bool
}

// Put stores msg as the latest intent. Press flags are latched so a press
// that arrives between ticks is not lost. Intents older than the last one
// seen are dropped and Put reports false.
func (m *intentMailbox) Put(msg messages.PlayerIntent) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if msg.Sequence != 0 && msg.Sequence <= m.lastSeq {
		return false
	}
	m.lastSeq = msg.Sequence

	m.latest = components.IntentData{
		MoveAxis:   msg.MoveAxis,
		CrouchHeld: msg.CrouchHeld,
		Jump:       m.latest.Jump || msg.Jump,
		Attack:     m.latest.Attack || msg.Attack,
		Roll:       m.latest.Roll || msg.Roll,
	}
	return true
}

// Take returns the intent for this tick and clears the latched presses.
// Held inputs persist until the client reports otherwise.
func (m *intentMailbox) Take() components.IntentData {
	m.mu.Lock()
	defer m.mu.Unlock()

	intent := m.latest
	m.latest.Jump = false
	m.latest.Attack = false
	m.latest.Roll = false
	return intent
}

func (m *intentMailbox) RequestPause(paused bool) {
	m.mu.Lock()
	m.pauseSet, m.paused = true, paused
	m.mu.Unlock()
}

// TakePause returns the pending pause request, if any.
func (m *intentMailbox) TakePause() (paused, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	paused, ok = m.paused, m.pauseSet
	m.pauseSet = false
	return paused, ok
}

// Reset forgets the intent and sequence of a departed client.
func (m *intentMailbox) Reset() {
	m.mu.Lock()
	m.latest = components.IntentData{}
	m.lastSeq = 0
	m.pauseSet = false
	m.mu.Unlock()
}
