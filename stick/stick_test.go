package stick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrightness(t *testing.T) {
	tests := []struct {
		name string
		adc  uint16
		want uint8
	}{
		{"center", 2048, 0},
		{"full low", 0, 255},
		{"full high", 4095, 255},
		{"half low", 1024, 128},
		{"just below dead zone", 2000, 6},
		{"just above dead zone", 2100, 6},
		{"dead zone lower edge", 2001, 0},
		{"dead zone upper edge", 2099, 0},
		{"out of range input", 65535, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Brightness(tt.adc))
		})
	}
}

func TestBrightnessDeadZone(t *testing.T) {
	for adc := DeadZoneLow + 1; adc < DeadZoneHigh; adc++ {
		assert.Zero(t, Brightness(adc), "adc=%d", adc)
	}
}

func TestBrightnessSymmetry(t *testing.T) {
	for d := uint16(100); d <= 2047; d += 97 {
		assert.Equal(t, Brightness(Center-d), Brightness(Center+d), "deflection=%d", d)
	}
}

func TestCursorExtremes(t *testing.T) {
	assert.Equal(t, Position{X: 56, Y: 0}, Cursor(Sample{X: 0, Y: 0}))

	p := Cursor(Sample{X: MaxRaw, Y: MaxRaw})
	assert.InDelta(t, 0, p.X, 1e-4)
	assert.InDelta(t, 120, p.Y, 1e-4)
}

func TestCursorAxisInversion(t *testing.T) {
	// X decreases as the raw sample grows, Y increases.
	low := Cursor(Sample{X: 1500, Y: 1500})
	high := Cursor(Sample{X: 2500, Y: 2500})
	assert.Greater(t, low.X, high.X)
	assert.Less(t, low.Y, high.Y)
}

func TestCursorMidpoint(t *testing.T) {
	p := Cursor(Sample{X: 2048, Y: 2048})
	assert.InDelta(t, 32, p.X, 0.05)
	assert.InDelta(t, 64, p.Y, 0.05)
}

func TestCursorStaysInBounds(t *testing.T) {
	for x := uint16(0); x <= MaxRaw; x += 15 {
		for y := uint16(0); y <= MaxRaw; y += 15 {
			p := Cursor(Sample{X: x, Y: y})
			if p.X < 0 || p.X > MaxX || p.Y < 0 || p.Y > MaxY {
				t.Fatalf("Cursor(%d, %d) = %+v out of bounds", x, y, p)
			}
		}
	}
}

func TestBrightnessRange(t *testing.T) {
	for adc := uint16(0); adc <= MaxRaw; adc++ {
		b := Brightness(adc)
		if InDeadZone(adc) && b != 0 {
			t.Fatalf("Brightness(%d) = %d inside dead zone", adc, b)
		}
	}
}
