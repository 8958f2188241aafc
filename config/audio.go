package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundAttack
	SoundJumpAttack
	SoundHurt
	SoundDeath
	SoundEnemyAttack
	SoundDash
	// Movement sounds
	SoundJump
	SoundLand
	SoundRoll
	// Match sounds
	SoundVictory
	SoundGameOver
)

// SoundConfig maps sound IDs to the clip names the audio sink plays
type SoundConfig struct {
	Clips map[SoundID]string
}

var Sound SoundConfig

func init() {
	Sound = SoundConfig{
		Clips: map[SoundID]string{
			SoundAttack:      "sfx/attack",
			SoundJumpAttack:  "sfx/jump_attack",
			SoundHurt:        "sfx/hurt",
			SoundDeath:       "sfx/death",
			SoundEnemyAttack: "sfx/enemy_attack",
			SoundDash:        "sfx/dash",
			SoundJump:        "sfx/jump",
			SoundLand:        "sfx/land",
			SoundRoll:        "sfx/roll",
			SoundVictory:     "sfx/victory",
			SoundGameOver:    "sfx/game_over",
		},
	}
}

// String returns the clip name for the sound, or "" for SoundNone.
func (s SoundID) String() string {
	return Sound.Clips[s]
}
