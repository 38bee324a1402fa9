//go:build tinygo

// Command firmware runs the joystick cursor demo on a Raspberry Pi Pico:
// the stick moves an 8x8 cursor on an SSD1306 OLED and dims two LEDs, the
// stick button toggles a border and the second button toggles the LEDs.
//
//	tinygo flash -target=pico ./firmware
package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/analogico/control"
	"github.com/harveysanders/analogico/frame"
	"github.com/harveysanders/analogico/lights"
	"github.com/harveysanders/analogico/mode"
)

func main() {
	boot := time.Now()
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: logLevel,
	}))

	leds, err := configureLights(lightsPWM)
	if err != nil {
		printErrForever(logger, "configure lights", slog.Any("reason", err))
	}
	status := configureStatusLight()

	// Events cross from the pin interrupt into the loop through the mailbox.
	mailbox := &mode.Mailbox{}
	err = configureButtons(mailbox, boot)
	if err != nil {
		printErrForever(logger, "configure buttons", slog.Any("reason", err))
	}

	display, err := configurePanel(panelBus)
	if err != nil {
		printErrForever(logger, "configure display", slog.Any("reason", err))
	}

	sampler := configureSampler()

	renderer := frame.NewRenderer(display, frame.Normal, logger)
	if err := renderer.Splash(splashTitle); err != nil {
		logger.Error("splash:send-failed", slog.Any("reason", err))
	}
	time.Sleep(splashDuration)

	loop := control.New(control.Config{
		Sampler:  sampler,
		Lights:   lights.NewController(leds),
		Renderer: renderer,
		State:    mode.NewState(),
		Gate:     mode.NewGate(),
		Mailbox:  mailbox,
		Status:   status,
		Logger:   logger,
	})
	logger.Info("setup complete", slog.Duration("elapsed", time.Since(boot)))

	// Never returns; the device has no shutdown path.
	loop.Run(nil)
}

// printErrForever logs msg at 1hz. It blocks forever so the message is
// still visible if the serial monitor attaches late.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
