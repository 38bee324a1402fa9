//go:build tinygo

package main

import (
	"log/slog"
	"machine"
	"time"
)

// Pin mapping for a Pico wired to the joystick, RGB LED and SSD1306 board.
const (
	stickXPin = machine.ADC0 // GP26
	stickYPin = machine.ADC1 // GP27

	primaryButtonPin   = machine.GP22 // stick push button
	secondaryButtonPin = machine.GP5

	redLEDPin   = machine.GP13
	blueLEDPin  = machine.GP12
	greenLEDPin = machine.GP11 // plain output, mirrors the border

	displaySDAPin = machine.GP14
	displaySCLPin = machine.GP15
)

const (
	// GP12 and GP13 both sit on PWM slice 6.
	pwmFrequency = 5000 // Hz

	i2cFrequency = 400 * machine.KHz
	panelWidth   = 128
	panelHeight  = 64

	// Raw ADC readings are 16-bit left-aligned; the stick math expects 12 bits.
	adcShift = 4

	splashTitle    = "analogico"
	splashDuration = 1500 * time.Millisecond

	logLevel = slog.LevelInfo
)

var (
	lightsPWM = machine.PWM6
	panelBus  = machine.I2C1

	// Common SSD1306 addresses, tried in order.
	panelAddrs = []uint16{0x3C, 0x3D}
)
