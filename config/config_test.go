package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsAreValid(t *testing.T) {
	for _, name := range []string{"base", "advanced"} {
		t.Run(name, func(t *testing.T) {
			tuning, err := Preset(name)
			if err != nil {
				t.Fatalf("Preset(%q) failed: %v", name, err)
			}
			if err := tuning.Validate(); err != nil {
				t.Errorf("preset %q is invalid: %v", name, err)
			}
		})
	}
}

func TestPresetCosts(t *testing.T) {
	tests := []struct {
		name                  string
		tuning                Tuning
		policy                ComboPolicy
		standing, crouch, air int
		regen                 int
	}{
		{"base", Base(), ComboPolicyBase, 5, 5, 20, 1},
		{"advanced", Advanced(), ComboPolicyLockout, 10, 5, 25, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.tuning.Combo
			if c.Policy != tt.policy {
				t.Errorf("policy: expected %v, got %v", tt.policy, c.Policy)
			}
			if c.StandingCost != tt.standing || c.CrouchCost != tt.crouch || c.AirCost != tt.air {
				t.Errorf("costs: expected %d/%d/%d, got %d/%d/%d",
					tt.standing, tt.crouch, tt.air, c.StandingCost, c.CrouchCost, c.AirCost)
			}
			if tt.tuning.Player.StaminaRegenAmount != tt.regen {
				t.Errorf("regen: expected %d, got %d", tt.regen, tt.tuning.Player.StaminaRegenAmount)
			}
		})
	}
}

func TestPresetUnknown(t *testing.T) {
	if _, err := Preset("nightmare"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestCurrentCopiesEnemyTypes(t *testing.T) {
	tuning := Current()
	knight := tuning.Enemy.Types["Knight"]
	knight.AttackPoints[0].X = -999
	tuning.Enemy.Types["Knight"] = knight
	delete(tuning.Enemy.Types, "Brute")

	if Enemy.Types["Knight"].AttackPoints[0].X == -999 {
		t.Error("editing a copied attack point changed the package default")
	}
	if _, ok := Enemy.Types["Brute"]; !ok {
		t.Error("deleting from a copied type map changed the package default")
	}
}

func TestParseTuningOverrides(t *testing.T) {
	data := []byte(`
player:
  maxHealth: 150
  maxRolls: 5
combo:
  policy: lockout
  standingCost: 12
sim:
  tickRate: 30
`)
	tuning, err := ParseTuning(data, Base())
	if err != nil {
		t.Fatalf("ParseTuning failed: %v", err)
	}

	if tuning.Player.MaxHealth != 150 {
		t.Errorf("maxHealth: expected 150, got %d", tuning.Player.MaxHealth)
	}
	if tuning.Player.MaxRolls != 5 {
		t.Errorf("maxRolls: expected 5, got %d", tuning.Player.MaxRolls)
	}
	if tuning.Player.MaxStamina != Player.MaxStamina {
		t.Errorf("maxStamina should keep its default %d, got %d", Player.MaxStamina, tuning.Player.MaxStamina)
	}
	if tuning.Combo.Policy != ComboPolicyLockout {
		t.Errorf("policy: expected lockout, got %v", tuning.Combo.Policy)
	}
	if tuning.Combo.StandingCost != 12 {
		t.Errorf("standingCost: expected 12, got %d", tuning.Combo.StandingCost)
	}
	if got := tuning.Sim.DT(); got != 1.0/30 {
		t.Errorf("DT: expected %v, got %v", 1.0/30, got)
	}
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero max health", "player:\n  maxHealth: 0\n"},
		{"negative rolls", "player:\n  maxRolls: -1\n"},
		{"crouch ratio above one", "player:\n  crouchHeightRatio: 1.5\n"},
		{"zero attack rate", "combo:\n  attackRate: 0\n"},
		{"unknown policy", "combo:\n  policy: chaos\n"},
		{"missing default enemy", "enemy:\n  defaultType: Dragon\n"},
		{"enemy without attack points", `
enemy:
  types:
    Knight:
      name: Knight
      maxHealth: 100
      attackVariants: 1
      attackRadius: 16
      collisionWidth: 20
      collisionHeight: 44
`},
		{"zero tick rate", "sim:\n  tickRate: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml), Base())
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if tt.name != "unknown policy" && !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestLoadTuning(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(tempDir, "tuning.yaml")
		if err := os.WriteFile(path, []byte("player:\n  runSpeed: 100\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		tuning, err := LoadTuning(path, Advanced())
		if err != nil {
			t.Fatalf("LoadTuning failed: %v", err)
		}
		if tuning.Player.RunSpeed != 100 {
			t.Errorf("runSpeed: expected 100, got %v", tuning.Player.RunSpeed)
		}
		if tuning.Combo.Policy != ComboPolicyLockout {
			t.Errorf("base preset policy should survive, got %v", tuning.Combo.Policy)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTuning(filepath.Join(tempDir, "nope.yaml"), Base()); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("player: [unclosed"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadTuning(path, Base()); err == nil {
			t.Error("expected a parse error")
		}
	})
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player:\n  maxHealth: 100\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	w, err := NewWatcher(path, Base())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("player:\n  maxHealth: 250\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite test config: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case tuning := <-w.Tunings:
			if tuning.Player.MaxHealth == 250 {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watcher reported an error: %v", err)
		case <-deadline:
			t.Fatal("timed out waiting for reloaded tuning")
		}
	}
}

func TestAttackState(t *testing.T) {
	tests := []struct {
		mode AttackMode
		step int
		want StateID
	}{
		{ModeStanding, 1, Attack1},
		{ModeStanding, 4, Attack4},
		{ModeCrouching, 1, CrouchAttack1},
		{ModeCrouching, 2, CrouchAttack2},
	}
	for _, tt := range tests {
		if got := AttackState(tt.mode, tt.step); got != tt.want {
			t.Errorf("AttackState(%v, %d): expected %v, got %v", tt.mode, tt.step, tt.want, got)
		}
	}
}
