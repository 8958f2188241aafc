package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ActorKind distinguishes the two actor variants.
type ActorKind int

const (
	KindPlayer ActorKind = iota
	KindEnemy
)

func (k ActorKind) String() string {
	if k == KindEnemy {
		return "enemy"
	}
	return "player"
}

// LocomotionState is the player's movement state.
type LocomotionState int

const (
	Grounded LocomotionState = iota
	Airborne
	Crouching
	Rolling
	JumpAttackFalling
	ActionLocked
)

var locomotionNames = [...]string{"Grounded", "Airborne", "Crouching", "Rolling", "JumpAttackFalling", "ActionLocked"}

func (s LocomotionState) String() string {
	if int(s) < len(locomotionNames) {
		return locomotionNames[s]
	}
	return fmt.Sprintf("LocomotionState(%d)", int(s))
}

// ActionKind is the action an actor is committed to. Any kind other than
// ActionNone locks the player's horizontal input.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionAttack
	ActionCrouchAttack
	ActionJumpAttack
	ActionHurt
)

// BehaviorState is an enemy's controller state.
type BehaviorState int

const (
	BehaviorIdle BehaviorState = iota
	BehaviorChase
	BehaviorDashWindup
	BehaviorMeleeAttack
	BehaviorStunned
	BehaviorDead
)

var behaviorNames = [...]string{"Idle", "Chase", "DashWindup", "MeleeAttack", "Stunned", "Dead"}

func (s BehaviorState) String() string {
	if int(s) < len(behaviorNames) {
		return behaviorNames[s]
	}
	return fmt.Sprintf("BehaviorState(%d)", int(s))
}

// AttackMode selects the attack chain used by a combo attempt.
type AttackMode int

const (
	ModeStanding AttackMode = iota
	ModeCrouching
	ModeAir
)

func (m AttackMode) String() string {
	switch m {
	case ModeCrouching:
		return "crouching"
	case ModeAir:
		return "air"
	}
	return "standing"
}

// ComboPolicy selects how a finished or decayed combo is handled.
type ComboPolicy int

const (
	// ComboPolicyBase wraps back to step one with no lockout.
	ComboPolicyBase ComboPolicy = iota
	// ComboPolicyLockout engages a post-combo lockout after the final step
	// and whenever a combo decays.
	ComboPolicyLockout
)

func (p ComboPolicy) String() string {
	if p == ComboPolicyLockout {
		return "lockout"
	}
	return "base"
}

func (p *ComboPolicy) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "base":
		*p = ComboPolicyBase
	case "lockout", "advanced":
		*p = ComboPolicyLockout
	default:
		return invalidf("unknown combo policy %q", s)
	}
	return nil
}

func (p ComboPolicy) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// Outcome is the end state of a match.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	}
	return "none"
}

// StateID is the animation-equivalent state of an actor. The core derives it
// from its own state machines and reports changes to the animation sink.
type StateID int

const (
	StateNone StateID = iota

	Idle
	Run
	Jump
	Fall
	Crouch
	Roll
	Attack1
	Attack2
	Attack3
	Attack4
	CrouchAttack1
	CrouchAttack2
	JumpAttack
	Hurt
	Die

	// Enemy only
	Dash
	EnemyAttack1
	EnemyAttack2
	Stunned
)

// StateToTrigger maps each state to the animation trigger fired on entry.
var StateToTrigger = map[StateID]string{
	Idle:          "Idle",
	Run:           "Run",
	Jump:          "Jump",
	Fall:          "Fall",
	Crouch:        "Crouch",
	Roll:          "Roll",
	Attack1:       "Attack1",
	Attack2:       "Attack2",
	Attack3:       "Attack3",
	Attack4:       "Attack4",
	CrouchAttack1: "CrouchAttack",
	CrouchAttack2: "CrouchAttack2",
	JumpAttack:    "JumpAttack",
	Hurt:          "Hurt",
	Die:           "Die",
	Dash:          "Dash",
	EnemyAttack1:  "Attack1",
	EnemyAttack2:  "Attack2",
	Stunned:       "Hurt",
}

// AttackState returns the state for a ground attack at the given combo step.
func AttackState(mode AttackMode, step int) StateID {
	if mode == ModeCrouching {
		if step >= 2 {
			return CrouchAttack2
		}
		return CrouchAttack1
	}
	switch step {
	case 2:
		return Attack2
	case 3:
		return Attack3
	case 4:
		return Attack4
	}
	return Attack1
}
