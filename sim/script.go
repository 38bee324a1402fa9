package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/harveysanders/analogico/control"
	"github.com/harveysanders/analogico/frame"
	"github.com/harveysanders/analogico/lights"
	"github.com/harveysanders/analogico/mode"
	"github.com/harveysanders/analogico/stick"
)

var (
	errUnknownButton = errors.New("unknown button")
	errStepOrder     = errors.New("steps must be in time order")
	errAxisRange     = errors.New("axis value out of range")
)

// Duration is a time.Duration written as a string ("250ms") in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Scenario is a scripted sequence of stick moves and button presses.
//
//	ticks = 80
//
//	[[step]]
//	at = "400ms"
//	x = 0
//	y = 4095
//	press = "primary"
type Scenario struct {
	// Ticks is how many ticks to run. Zero runs until one tick past the
	// last step.
	Ticks int    `toml:"ticks"`
	Steps []Step `toml:"step"`
}

// Step happens at a fixed offset from boot. Unset axes keep their value.
type Step struct {
	At    Duration `toml:"at"`
	X     *uint16  `toml:"x"`
	Y     *uint16  `toml:"y"`
	Press string   `toml:"press"`
}

// LoadScenario reads a scenario from a TOML file.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeScenario(f)
}

// DecodeScenario reads and validates a scenario.
func DecodeScenario(r io.Reader) (*Scenario, error) {
	var sc Scenario
	if _, err := toml.NewDecoder(r).Decode(&sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	var prev time.Duration
	for i, st := range sc.Steps {
		if st.At.Duration < prev {
			return fmt.Errorf("step %d at %s: %w", i, st.At.Duration, errStepOrder)
		}
		prev = st.At.Duration
		if _, err := buttonSource(st.Press); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		for _, v := range []*uint16{st.X, st.Y} {
			if v != nil && *v > stick.MaxRaw {
				return fmt.Errorf("step %d: %d: %w", i, *v, errAxisRange)
			}
		}
	}
	if sc.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", sc.Ticks)
	}
	return nil
}

func buttonSource(name string) (mode.Source, error) {
	switch name {
	case "":
		return 0, nil
	case "primary":
		return mode.Primary, nil
	case "secondary":
		return mode.Secondary, nil
	}
	return 0, fmt.Errorf("%q: %w", name, errUnknownButton)
}

// tickCount resolves how many ticks a replay runs.
func (sc *Scenario) tickCount(period time.Duration) int {
	if sc.Ticks > 0 {
		return sc.Ticks
	}
	if len(sc.Steps) == 0 {
		return 1
	}
	last := sc.Steps[len(sc.Steps)-1].At.Duration
	return int(last/period) + 1
}

// Result is the observable state after a replay.
type Result struct {
	Ticks   uint64
	Flags   mode.Flags
	Red     uint8
	Blue    uint8
	Green   bool
	Dropped uint32
	Frame   *frame.Frame
}

// captureTransport keeps a pointer to the last frame sent.
type captureTransport struct {
	last *frame.Frame
}

func (c *captureTransport) Send(f *frame.Frame) error {
	c.last = f
	return nil
}

// Replay runs sc tick by tick on simulated time. A step at offset t is
// applied before the first tick that starts at or after t, so a button
// press is handled in the same tick its step is due.
func Replay(sc *Scenario, period time.Duration, logger *slog.Logger) (*Result, error) {
	if period <= 0 {
		return nil, fmt.Errorf("tick period must be positive, got %s", period)
	}

	vs := newVirtualStick()
	leds := &ledPanel{}
	green := &greenLED{}
	state := mode.NewState()
	mailbox := &mode.Mailbox{}
	transport := &captureTransport{}

	loop := control.New(control.Config{
		Sampler:  vs,
		Lights:   lights.NewController(leds),
		Renderer: frame.NewRenderer(transport, frame.Normal, logger),
		State:    state,
		Gate:     mode.NewGate(),
		Mailbox:  mailbox,
		Status:   green,
		Period:   period,
		Logger:   logger,
	})

	next := 0
	n := sc.tickCount(period)
	for i := 0; i < n; i++ {
		now := time.Duration(i) * period
		for ; next < len(sc.Steps) && sc.Steps[next].At.Duration <= now; next++ {
			st := sc.Steps[next]
			s := vs.Sample()
			if st.X != nil {
				s.X = *st.X
			}
			if st.Y != nil {
				s.Y = *st.Y
			}
			vs.Set(s.X, s.Y)

			source, _ := buttonSource(st.Press)
			if source != 0 {
				mailbox.Post(mode.Event{Source: source, At: uint32(st.At.Duration / time.Microsecond)})
			}
		}
		loop.Tick()
	}

	return &Result{
		Ticks:   loop.Ticks(),
		Flags:   state.Snapshot(),
		Red:     leds.Level(lights.Red),
		Blue:    leds.Level(lights.Blue),
		Green:   green.on.Load(),
		Dropped: mailbox.Dropped(),
		Frame:   transport.last,
	}, nil
}

// dumpFrame writes f as text, one character per pixel.
func dumpFrame(w io.Writer, f *frame.Frame) error {
	line := make([]byte, frame.Width+1)
	line[frame.Width] = '\n'
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			line[x] = '.'
			if f.Pixel(x, y) {
				line[x] = '#'
			}
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
