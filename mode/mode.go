// Package mode holds the toggle flags shared between the button interrupt
// path and the control loop, plus the debounce gate and event mailbox that
// connect the two.
//
// Every field that crosses the interrupt/loop boundary is a sync/atomic value.
// Nothing in this package blocks or allocates after construction, so Post
// and Accept are safe to call from an interrupt handler.
package mode

import "sync/atomic"

// Toggle identifies which flag an accepted button press flips.
type Toggle uint8

const (
	NoToggle Toggle = iota
	BorderToggle
	PwmToggle
)

func (t Toggle) String() string {
	switch t {
	case BorderToggle:
		return "border"
	case PwmToggle:
		return "pwm"
	default:
		return "none"
	}
}

// Flags is a plain copy of State, taken once per tick.
type Flags struct {
	PWMActive     bool
	BorderVisible bool
}

// State is the display/lighting mode record. The zero value is not ready
// for use; create it with NewState.
type State struct {
	pwmActive     atomic.Bool
	borderVisible atomic.Bool
}

// NewState returns a State with the power-on defaults: lights driven by the
// stick, border hidden.
func NewState() *State {
	s := &State{}
	s.pwmActive.Store(true)
	return s
}

func (s *State) PWMActive() bool     { return s.pwmActive.Load() }
func (s *State) BorderVisible() bool { return s.borderVisible.Load() }

// Snapshot returns the current flags. Each flag is read atomically.
func (s *State) Snapshot() Flags {
	return Flags{
		PWMActive:     s.pwmActive.Load(),
		BorderVisible: s.borderVisible.Load(),
	}
}

// Apply flips the flag associated with t. It reports whether this call
// turned pwmActive from true to false, in which case the caller must force
// the lights off in the same step.
func (s *State) Apply(t Toggle) (pwmTurnedOff bool) {
	switch t {
	case BorderToggle:
		flip(&s.borderVisible)
	case PwmToggle:
		return flip(&s.pwmActive)
	}
	return false
}

// flip inverts b and returns its previous value.
func flip(b *atomic.Bool) bool {
	for {
		old := b.Load()
		if b.CompareAndSwap(old, !old) {
			return old
		}
	}
}
