package components

import "testing"

func TestCooldown(t *testing.T) {
	c := NewCooldown(2)
	if !c.Ready() {
		t.Fatal("new cooldown should be ready")
	}

	c.Reset()
	if c.Ready() || c.Remaining != 2 {
		t.Fatalf("reset cooldown: expected 2 remaining, got %v", c.Remaining)
	}

	for i := 0; i < 120; i++ {
		c.Tick(1.0 / 60)
	}
	if !c.Ready() || c.Remaining != 0 {
		t.Errorf("expected cooldown to reach exactly 0, got %v", c.Remaining)
	}

	c.Tick(5)
	if c.Remaining != 0 {
		t.Errorf("tick past zero should clamp, got %v", c.Remaining)
	}

	c.Start(0.5)
	if c.Duration != 0.5 || c.Remaining != 0.5 {
		t.Errorf("Start(0.5): got %+v", c)
	}
	c.Clear()
	if !c.Ready() {
		t.Error("cleared cooldown should be ready")
	}
}
