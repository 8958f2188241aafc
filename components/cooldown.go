package components

// timeEpsilon absorbs float drift from summing fixed steps.
const timeEpsilon = 1e-9

// Cooldown is a countdown clamped at zero.
type Cooldown struct {
	Remaining float64
	Duration  float64
}

func NewCooldown(duration float64) Cooldown {
	return Cooldown{Duration: duration}
}

func (c *Cooldown) Tick(dt float64) {
	c.Remaining -= dt
	if c.Remaining < timeEpsilon {
		c.Remaining = 0
	}
}

// Reset restarts the countdown from Duration.
func (c *Cooldown) Reset() {
	c.Remaining = c.Duration
}

// Start restarts the countdown with a new duration.
func (c *Cooldown) Start(duration float64) {
	c.Duration = duration
	c.Remaining = duration
}

func (c *Cooldown) Clear() {
	c.Remaining = 0
}

func (c Cooldown) Ready() bool {
	return c.Remaining <= 0
}
