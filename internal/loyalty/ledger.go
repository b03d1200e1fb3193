// Package loyalty holds the pure reward-cycle arithmetic. Every order
// mutation (create, edit, delete) funnels its quantity change through
// ApplyDelta so the floor-division reward formula lives in exactly one place.
package loyalty

// State is a customer's current reward-cycle counters.
type State struct {
	TotalOrders      int
	TargetOrders     int
	RewardsAvailable int
}

// ApplyDelta moves a customer's cycle state by a signed item-unit quantity
// and credits or debits RewardsAvailable by the number of cycle boundaries
// crossed. TotalOrders and RewardsAvailable are clamped at zero; a
// non-positive TargetOrders freezes reward computation (counters still move).
// ApplyDelta never fails for valid numeric inputs.
func ApplyDelta(s State, deltaQty int) State {
	newTotal := s.TotalOrders + deltaQty
	if newTotal < 0 {
		newTotal = 0
	}

	out := State{
		TotalOrders:      newTotal,
		TargetOrders:     s.TargetOrders,
		RewardsAvailable: s.RewardsAvailable,
	}

	if s.TargetOrders <= 0 {
		return out
	}

	oldCycles := s.TotalOrders / s.TargetOrders
	newCycles := newTotal / s.TargetOrders
	cycleDelta := newCycles - oldCycles

	switch {
	case cycleDelta > 0:
		out.RewardsAvailable += cycleDelta
	case cycleDelta < 0:
		out.RewardsAvailable += cycleDelta
		if out.RewardsAvailable < 0 {
			out.RewardsAvailable = 0
		}
	}

	return out
}

// ResetCycle starts a fresh cycle after a claim is fulfilled: progress returns
// to zero and the target changes when a positive nextTarget is given.
func ResetCycle(s State, nextTarget int) State {
	target := s.TargetOrders
	if nextTarget > 0 {
		target = nextTarget
	}
	return State{
		TotalOrders:      0,
		TargetOrders:     target,
		RewardsAvailable: s.RewardsAvailable,
	}
}
