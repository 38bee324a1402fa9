package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/harveysanders/analogico/mode"
	"github.com/harveysanders/analogico/stick"
)

func TestVirtualStickNudgeSaturates(t *testing.T) {
	v := newVirtualStick()
	assert.Equal(t, stick.Sample{X: stick.Center, Y: stick.Center}, v.Sample())

	for i := 0; i < 20; i++ {
		v.Nudge(nudgeStep, -nudgeStep)
	}
	assert.Equal(t, stick.Sample{X: stick.MaxRaw, Y: 0}, v.Sample())

	v.Center()
	assert.Equal(t, stick.Sample{X: stick.Center, Y: stick.Center}, v.Sample())
}

func TestVirtualStickSetClamps(t *testing.T) {
	v := newVirtualStick()
	v.Set(9000, 12)
	assert.Equal(t, stick.Sample{X: stick.MaxRaw, Y: 12}, v.Sample())
}

func TestMicrosWraps(t *testing.T) {
	boot := time.Unix(0, 0)
	clk := clocktesting.NewFakeClock(boot)

	clk.Step(1500 * time.Microsecond)
	assert.Equal(t, uint32(1500), micros(clk, boot))

	clk.SetTime(boot.Add((1<<32 + 7) * time.Microsecond))
	assert.Equal(t, uint32(7), micros(clk, boot))
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want keyAction
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), actionUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), actionDown},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), actionLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), actionRight},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), actionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), actionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), actionCenter},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), actionPrimary},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), actionSecondary},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), actionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, actionForKey(tt.ev), tt.ev.Name())
	}
}

func TestInputApply(t *testing.T) {
	boot := time.Unix(0, 0)
	clk := clocktesting.NewFakeClock(boot)
	in := &input{stick: newVirtualStick(), mailbox: &mode.Mailbox{}, clock: clk, boot: boot}

	assert.False(t, in.apply(actionUp))
	assert.Equal(t, stick.Center+nudgeStep, in.stick.Sample().X)

	assert.False(t, in.apply(actionRight))
	assert.Equal(t, stick.Center+nudgeStep, in.stick.Sample().Y)

	clk.Step(time.Second)
	in.apply(actionPrimary)
	in.apply(actionSecondary)

	var got []mode.Event
	in.mailbox.Drain(func(ev mode.Event) { got = append(got, ev) })
	assert.Equal(t, []mode.Event{
		{Source: mode.Primary, At: 1_000_000},
		{Source: mode.Secondary, At: 1_000_000},
	}, got)

	assert.True(t, in.apply(actionQuit))
}
