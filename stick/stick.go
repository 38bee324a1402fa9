// Package stick converts raw two-axis joystick samples into a cursor position
// on a 128x64 display and into 8-bit indicator light levels.
package stick

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	MaxRaw uint16 = 4095 // Full scale of the 12-bit ADC.
	Center uint16 = 2048 // Nominal rest position of either axis.

	// Samples strictly between these bounds read as "stick at rest".
	DeadZoneLow  uint16 = 2000
	DeadZoneHigh uint16 = 2100

	// The cursor glyph is 8x8 and must stay fully inside the 128x64 frame.
	// X addresses rows, Y addresses columns.
	GlyphSize        = 8
	MaxX     float32 = 64 - GlyphSize
	MaxY     float32 = 128 - GlyphSize
)

// Sample is one reading of both stick axes, each in [0, MaxRaw].
type Sample struct {
	X uint16
	Y uint16
}

// Position is the top-left corner of the cursor glyph.
// X is the row (0..MaxX) and Y the column (0..MaxY).
type Position struct {
	X float32
	Y float32
}

// Cursor maps a stick sample to a clamped cursor position.
// The X axis is inverted: pushing the stick towards full scale moves the
// cursor to the top of the frame.
func Cursor(s Sample) Position {
	rawX := 64 - (float32(s.X)/float32(MaxRaw))*64
	rawY := (float32(s.Y) / float32(MaxRaw)) * 128
	return Position{
		X: clamp(rawX, 0, MaxX),
		Y: clamp(rawY, 0, MaxY),
	}
}

// Brightness maps the deflection of one axis away from Center to a light
// level in [0, 255]. Samples inside the dead zone always map to 0.
func Brightness(adc uint16) uint8 {
	adc = min(adc, MaxRaw)
	if InDeadZone(adc) {
		return 0
	}
	deflection := math.Abs(float64(Center) - float64(adc))
	level := math.Round(deflection / float64(Center) * 255)
	return uint8(clamp(level, 0, 255))
}

// InDeadZone reports whether adc lies in the open interval
// (DeadZoneLow, DeadZoneHigh).
func InDeadZone(adc uint16) bool {
	return adc > DeadZoneLow && adc < DeadZoneHigh
}

// clamp constrains value within the lo and hi bounds.
func clamp[T constraints.Ordered](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
