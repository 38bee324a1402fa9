package mode

import "sync/atomic"

// Cooldown is the debounce window in microseconds. It is shared by both
// buttons: an accepted press on either one suppresses the other as well.
const Cooldown uint32 = 300_000

// Source identifies the button that produced an edge.
type Source uint8

const (
	Primary   Source = iota + 1 // Stick push button.
	Secondary                   // Auxiliary button.
)

func (s Source) String() string {
	switch s {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Event is a single falling edge reported by a button.
type Event struct {
	Source Source
	// At is a free-running microsecond counter. It wraps roughly every
	// 71 minutes; Gate tolerates the wrap.
	At uint32
}

// Gate filters button edges so that at most one press is accepted per
// Cooldown window.
type Gate struct {
	lastAccepted atomic.Uint32
	cooldown     uint32
}

// NewGate returns a Gate using the default Cooldown.
func NewGate() *Gate {
	return &Gate{cooldown: Cooldown}
}

// Accept returns the toggle for ev and true if ev is outside the cooldown
// window of the last accepted press. The elapsed time is computed modulo
// 2^32 so counter wraparound is handled.
func (g *Gate) Accept(ev Event) (Toggle, bool) {
	last := g.lastAccepted.Load()
	if ev.At-last <= g.cooldown {
		return NoToggle, false
	}
	g.lastAccepted.Store(ev.At)
	switch ev.Source {
	case Primary:
		return BorderToggle, true
	case Secondary:
		return PwmToggle, true
	default:
		return NoToggle, false
	}
}

// LastAccepted returns the timestamp of the most recently accepted press.
func (g *Gate) LastAccepted() uint32 {
	return g.lastAccepted.Load()
}
