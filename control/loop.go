// Package control ties the stick, mode, lights and frame packages together
// into the fixed-period tick that runs for the lifetime of the device.
package control

import (
	"io"
	"log/slog"
	"time"

	"k8s.io/utils/clock"

	"github.com/harveysanders/analogico/frame"
	"github.com/harveysanders/analogico/lights"
	"github.com/harveysanders/analogico/mode"
	"github.com/harveysanders/analogico/stick"
)

// Period is the fixed tick interval.
const Period = 10 * time.Millisecond

// Sampler reads both stick axes. Values are 12-bit, in [0, stick.MaxRaw].
type Sampler interface {
	Sample() stick.Sample
}

// StatusLight is a plain on/off light that mirrors the border flag.
type StatusLight interface {
	Set(on bool)
}

// Config wires a Loop to its collaborators. Status and Logger are optional.
type Config struct {
	Sampler  Sampler
	Lights   *lights.Controller
	Renderer *frame.Renderer
	State    *mode.State
	Gate     *mode.Gate
	Mailbox  *mode.Mailbox
	Status   StatusLight
	Clock    clock.WithTicker
	Period   time.Duration
	Logger   *slog.Logger
}

// Loop runs one sample -> lights -> frame pass per tick.
type Loop struct {
	cfg   Config
	log   *slog.Logger
	ticks uint64

	handle func(mode.Event)
}

// New returns a Loop. Zero Clock and Period default to the real clock and
// Period.
func New(cfg Config) *Loop {
	if cfg.Clock == nil {
		cfg.Clock = clock.RealClock{}
	}
	if cfg.Period <= 0 {
		cfg.Period = Period
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	l := &Loop{cfg: cfg, log: cfg.Logger}
	// Bound once so draining the mailbox does not allocate a closure per tick.
	l.handle = l.handleEvent
	return l
}

// Ticks returns how many ticks have completed.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Run ticks every Period until stop is closed. A nil stop channel runs
// forever, which is how the firmware uses it.
func (l *Loop) Run(stop <-chan struct{}) {
	ticker := l.cfg.Clock.NewTicker(l.cfg.Period)
	defer ticker.Stop()
	l.log.Info("loop:start", slog.Duration("period", l.cfg.Period))
	for {
		select {
		case <-stop:
			l.log.Info("loop:stop", slog.Uint64("ticks", l.ticks))
			return
		case <-ticker.C():
			l.Tick()
		}
	}
}

// Tick performs a single iteration: apply pending button presses, then
// sample the stick, update the lights and render a frame.
func (l *Loop) Tick() {
	if l.cfg.Mailbox != nil {
		l.cfg.Mailbox.Drain(l.handle)
	}

	flags := l.cfg.State.Snapshot()
	s := l.cfg.Sampler.Sample()
	pos := stick.Cursor(s)
	l.cfg.Lights.Update(s, flags)
	l.cfg.Renderer.Render(pos, flags)
	l.ticks++
}

func (l *Loop) handleEvent(ev mode.Event) {
	toggle, ok := l.cfg.Gate.Accept(ev)
	if !ok {
		l.log.Debug("button:bounce", slog.String("source", ev.Source.String()), slog.Uint64("at", uint64(ev.At)))
		return
	}
	if l.cfg.State.Apply(toggle) {
		l.cfg.Lights.Off()
	}
	if toggle == mode.BorderToggle && l.cfg.Status != nil {
		l.cfg.Status.Set(l.cfg.State.BorderVisible())
	}
	l.log.Debug("button:toggle",
		slog.String("toggle", toggle.String()),
		slog.Bool("pwm", l.cfg.State.PWMActive()),
		slog.Bool("border", l.cfg.State.BorderVisible()),
	)
}
