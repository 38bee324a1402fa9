package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const t0 uint32 = 1_000_000

func TestGateSuppressesBounceWithinCooldown(t *testing.T) {
	g := NewGate()

	toggle, ok := g.Accept(Event{Source: Primary, At: t0})
	assert.True(t, ok)
	assert.Equal(t, BorderToggle, toggle)

	_, ok = g.Accept(Event{Source: Primary, At: t0 + 299_999})
	assert.False(t, ok)
	assert.Equal(t, t0, g.LastAccepted())
}

func TestGateAcceptsAfterCooldown(t *testing.T) {
	g := NewGate()

	_, ok := g.Accept(Event{Source: Primary, At: t0})
	assert.True(t, ok)

	toggle, ok := g.Accept(Event{Source: Primary, At: t0 + 300_001})
	assert.True(t, ok)
	assert.Equal(t, BorderToggle, toggle)
	assert.Equal(t, t0+300_001, g.LastAccepted())
}

func TestGateExactCooldownIsSuppressed(t *testing.T) {
	g := NewGate()
	g.Accept(Event{Source: Secondary, At: t0})

	_, ok := g.Accept(Event{Source: Secondary, At: t0 + Cooldown})
	assert.False(t, ok)
}

func TestGateCooldownSharedAcrossSources(t *testing.T) {
	g := NewGate()

	_, ok := g.Accept(Event{Source: Primary, At: t0})
	assert.True(t, ok)

	_, ok = g.Accept(Event{Source: Secondary, At: t0 + 100_000})
	assert.False(t, ok, "secondary press inside the primary's cooldown")

	toggle, ok := g.Accept(Event{Source: Secondary, At: t0 + 400_000})
	assert.True(t, ok)
	assert.Equal(t, PwmToggle, toggle)
}

func TestGateSuppressedEventDoesNotExtendWindow(t *testing.T) {
	g := NewGate()
	g.Accept(Event{Source: Primary, At: t0})
	g.Accept(Event{Source: Primary, At: t0 + 200_000})

	_, ok := g.Accept(Event{Source: Primary, At: t0 + 300_001})
	assert.True(t, ok, "window is measured from the last accepted press")
}

func TestGateWraparound(t *testing.T) {
	t.Run("short interval across wrap is a bounce", func(t *testing.T) {
		g := NewGate()
		g.Accept(Event{Source: Primary, At: 1<<32 - 100})

		// 50 - (2^32 - 100) mod 2^32 = 150us.
		_, ok := g.Accept(Event{Source: Primary, At: 50})
		assert.False(t, ok)
	})

	t.Run("long interval across wrap is accepted", func(t *testing.T) {
		g := NewGate()
		g.Accept(Event{Source: Primary, At: 1<<32 - 100})

		toggle, ok := g.Accept(Event{Source: Secondary, At: 400_000})
		assert.True(t, ok)
		assert.Equal(t, PwmToggle, toggle)
	})
}

func TestGateFirstPressNearBoot(t *testing.T) {
	g := NewGate()

	// lastAccepted starts at zero, so presses in the first cooldown window
	// after boot are treated as bounces.
	_, ok := g.Accept(Event{Source: Primary, At: 250_000})
	assert.False(t, ok)

	_, ok = g.Accept(Event{Source: Primary, At: 300_001})
	assert.True(t, ok)
}

func TestGateUnknownSource(t *testing.T) {
	g := NewGate()

	toggle, ok := g.Accept(Event{Source: Source(9), At: t0})
	assert.False(t, ok)
	assert.Equal(t, NoToggle, toggle)
	assert.Equal(t, t0, g.LastAccepted(), "unknown edges still restart the cooldown")
}
