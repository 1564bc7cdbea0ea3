package components

import "github.com/lixenwraith/gridfall/core"

// VitalityComponent tracks entity health. Current always stays within
// [0, Max]; use Damage and Heal so the clamp is never skipped.
type VitalityComponent struct {
	Current, Max int

	// OnDeath, when set, is invoked once by the reaction pass when
	// Current reaches zero.
	OnDeath func(self core.Entity)
}

// Damage subtracts n from Current, clamping at zero, and reports
// whether this call brought Current to zero.
func (v *VitalityComponent) Damage(n int) (died bool) {
	if v.Current <= 0 {
		return false
	}
	v.Current -= n
	if v.Current <= 0 {
		v.Current = 0
		return true
	}
	return false
}

// Heal adds n to Current, clamping at Max.
func (v *VitalityComponent) Heal(n int) {
	v.Current += n
	if v.Current > v.Max {
		v.Current = v.Max
	}
	if v.Current < 0 {
		v.Current = 0
	}
}
