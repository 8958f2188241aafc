package components

import "github.com/yohamta/donburi"

// RollPoolData is the player's stock of roll charges.
// Invariant: 0 <= Charges <= Max.
type RollPoolData struct {
	Charges  int
	Max      int
	Timer    float64
	Interval float64
}

var RollPool = donburi.NewComponentType[RollPoolData]()

func NewRollPool(max int, interval float64) RollPoolData {
	return RollPoolData{Charges: max, Max: max, Interval: interval}
}

// Consume takes one charge.
func (r *RollPoolData) Consume() error {
	if r.Charges <= 0 {
		return ErrInsufficientResource
	}
	r.Charges--
	return nil
}

// Recharge advances the timer while the pool is short and adds at most one
// charge per call, resetting the timer to zero when it does.
func (r *RollPoolData) Recharge(dt float64) bool {
	if r.Charges >= r.Max {
		r.Timer = 0
		return false
	}
	r.Timer += dt
	if r.Timer+timeEpsilon < r.Interval {
		return false
	}
	r.Charges++
	r.Timer = 0
	return true
}
