package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"k8s.io/utils/clock"

	"github.com/harveysanders/analogico/control"
	"github.com/harveysanders/analogico/frame"
	"github.com/harveysanders/analogico/lights"
	"github.com/harveysanders/analogico/mode"
)

// keyAction is what a key press asks the simulator to do.
type keyAction uint8

const (
	actionNone keyAction = iota
	actionQuit
	actionUp
	actionDown
	actionLeft
	actionRight
	actionCenter
	actionPrimary
	actionSecondary
)

func actionForKey(ev *tcell.EventKey) keyAction {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp:
		return actionUp
	case tcell.KeyDown:
		return actionDown
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return actionQuit
		case 'c':
			return actionCenter
		case ' ':
			return actionPrimary
		case 'p':
			return actionSecondary
		}
	}
	return actionNone
}

// input applies key actions to the virtual stick and button mailbox. It is
// the only producer on the mailbox.
type input struct {
	stick   *virtualStick
	mailbox *mode.Mailbox
	clock   clock.PassiveClock
	boot    time.Time
}

// apply performs act and reports whether the simulator should exit.
//
// The X axis is inverted on screen (larger samples move the cursor up), so
// up/down change X and left/right change Y.
func (in *input) apply(act keyAction) (quit bool) {
	switch act {
	case actionQuit:
		return true
	case actionUp:
		in.stick.Nudge(nudgeStep, 0)
	case actionDown:
		in.stick.Nudge(-nudgeStep, 0)
	case actionLeft:
		in.stick.Nudge(0, -nudgeStep)
	case actionRight:
		in.stick.Nudge(0, nudgeStep)
	case actionCenter:
		in.stick.Center()
	case actionPrimary:
		in.mailbox.Post(mode.Event{Source: mode.Primary, At: micros(in.clock, in.boot)})
	case actionSecondary:
		in.mailbox.Post(mode.Event{Source: mode.Secondary, At: micros(in.clock, in.boot)})
	}
	return false
}

// runInteractive drives the loop in real time against a terminal screen until
// the user quits.
func runInteractive(period time.Duration, level slog.Level) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(panelStyle)
	screen.Clear()

	messages := make(chan Message, 10)
	logger := slog.New(newMessageHandler(messages, level))

	clk := clock.RealClock{}
	boot := clk.Now()
	vs := newVirtualStick()
	leds := &ledPanel{}
	green := &greenLED{}
	state := mode.NewState()
	mailbox := &mode.Mailbox{}

	term := &terminal{
		screen:   screen,
		stick:    vs,
		leds:     leds,
		green:    green,
		state:    state,
		mailbox:  mailbox,
		messages: messages,
	}
	renderer := frame.NewRenderer(term, frame.Normal, logger)
	if err := renderer.Splash("analogico"); err != nil {
		return err
	}
	send(messages, "analogico simulator", fmt.Sprintf("tick=%s", period))

	loop := control.New(control.Config{
		Sampler:  vs,
		Lights:   lights.NewController(leds),
		Renderer: renderer,
		State:    state,
		Gate:     mode.NewGate(),
		Mailbox:  mailbox,
		Status:   green,
		Clock:    clk,
		Period:   period,
		Logger:   logger,
	})

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		loop.Run(stop)
		close(done)
	}()

	in := &input{stick: vs, mailbox: mailbox, clock: clk, boot: boot}
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if in.apply(actionForKey(ev)) {
				close(stop)
				<-done
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			// Screen finalized underneath us.
			close(stop)
			<-done
			return nil
		}
	}
}
