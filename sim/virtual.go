package main

import (
	"sync/atomic"
	"time"

	"k8s.io/utils/clock"

	"github.com/harveysanders/analogico/lights"
	"github.com/harveysanders/analogico/stick"
)

// nudgeStep is how far one arrow key press moves an axis.
const nudgeStep = 256

// virtualStick stands in for the ADC. Axes are written by the keyboard or a
// scenario and read by the loop.
type virtualStick struct {
	x, y atomic.Uint32
}

func newVirtualStick() *virtualStick {
	v := &virtualStick{}
	v.Center()
	return v
}

func (v *virtualStick) Sample() stick.Sample {
	return stick.Sample{X: uint16(v.x.Load()), Y: uint16(v.y.Load())}
}

func (v *virtualStick) Set(x, y uint16) {
	v.x.Store(uint32(min(x, stick.MaxRaw)))
	v.y.Store(uint32(min(y, stick.MaxRaw)))
}

func (v *virtualStick) Center() {
	v.Set(stick.Center, stick.Center)
}

// Nudge moves each axis by the given number of counts, saturating at the
// ends of the ADC range.
func (v *virtualStick) Nudge(dx, dy int) {
	s := v.Sample()
	v.Set(saturate(int(s.X)+dx), saturate(int(s.Y)+dy))
}

func saturate(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > int(stick.MaxRaw) {
		return stick.MaxRaw
	}
	return uint16(v)
}

// ledPanel remembers the last level written to each light.
type ledPanel struct {
	levels [2]atomic.Uint32
}

func (p *ledPanel) SetLevel(ch lights.Channel, level uint8) {
	p.levels[ch].Store(uint32(level))
}

func (p *ledPanel) Level(ch lights.Channel) uint8 {
	return uint8(p.levels[ch].Load())
}

// greenLED mirrors the firmware's status light.
type greenLED struct {
	on atomic.Bool
}

func (g *greenLED) Set(on bool) { g.on.Store(on) }

// micros returns the free-running 32-bit microsecond counter used to
// timestamp button edges.
func micros(clk clock.PassiveClock, boot time.Time) uint32 {
	return uint32(clk.Since(boot) / time.Microsecond)
}
