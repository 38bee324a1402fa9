// Package lights drives the two PWM indicator lights from the stick position.
package lights

import (
	"github.com/harveysanders/analogico/mode"
	"github.com/harveysanders/analogico/stick"
)

// Channel names one of the two PWM-driven lights.
type Channel uint8

const (
	Red  Channel = iota // follows the Y axis
	Blue                // follows the X axis
)

func (c Channel) String() string {
	if c == Red {
		return "red"
	}
	return "blue"
}

// Driver sets the duty level of a light. Level 0 is off, 255 fully on.
// Implementations must not block for long; they are called every tick.
type Driver interface {
	SetLevel(ch Channel, level uint8)
}

// Controller maps stick samples to light levels.
type Controller struct {
	drv Driver
}

func NewController(drv Driver) *Controller {
	return &Controller{drv: drv}
}

// Update drives both lights from s, or turns them off when PWM output is
// disabled in m. It is safe to call every tick.
func (c *Controller) Update(s stick.Sample, m mode.Flags) {
	if !m.PWMActive {
		c.Off()
		return
	}
	c.drv.SetLevel(Red, stick.Brightness(s.Y))
	c.drv.SetLevel(Blue, stick.Brightness(s.X))
}

// Off drives both lights to zero.
func (c *Controller) Off() {
	c.drv.SetLevel(Red, 0)
	c.drv.SetLevel(Blue, 0)
}
