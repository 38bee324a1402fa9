// Package frame composes the 128x64 monochrome image shown on the OLED and
// hands it to a display transport.
package frame

import (
	"image/color"

	"tinygo.org/x/drivers/pixel"
)

// Panel geometry in pixels.
const (
	Width  = 128
	Height = 64
)

// Frame is a Width x Height monochrome pixel buffer. It is allocated once
// and redrawn in place every tick.
type Frame struct {
	img pixel.Image[pixel.Monochrome]
}

// NewFrame allocates a blank frame.
func NewFrame() *Frame {
	return &Frame{img: pixel.NewImage[pixel.Monochrome](Width, Height)}
}

// Image returns the backing image. It shares memory with f.
func (f *Frame) Image() pixel.Image[pixel.Monochrome] {
	return f.img
}

// Bytes returns the packed pixel data. It shares memory with f.
func (f *Frame) Bytes() []byte {
	return f.img.RawBuffer()
}

// Pixel reports whether the pixel at column x, row y is lit. Out of range
// coordinates read as unlit.
func (f *Frame) Pixel(x, y int) bool {
	if !inBounds(x, y) {
		return false
	}
	return bool(f.img.Get(x, y))
}

// Set lights or clears a single pixel. Out of range coordinates are ignored.
func (f *Frame) Set(x, y int, on bool) {
	if !inBounds(x, y) {
		return
	}
	f.img.Set(x, y, pixel.Monochrome(on))
}

// Fill sets every pixel of the frame.
func (f *Frame) Fill(on bool) {
	f.img.FillSolidColor(pixel.Monochrome(on))
}

// FillRect sets every pixel of the w x h rectangle whose top-left corner is
// at column x, row y.
func (f *Frame) FillRect(x, y, w, h int, on bool) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			f.Set(col, row, on)
		}
	}
}

// Outline sets the one pixel wide edge of the w x h rectangle whose top-left
// corner is at column x, row y.
func (f *Frame) Outline(x, y, w, h int, on bool) {
	if w <= 0 || h <= 0 {
		return
	}
	for col := x; col < x+w; col++ {
		f.Set(col, y, on)
		f.Set(col, y+h-1, on)
	}
	for row := y; row < y+h; row++ {
		f.Set(x, row, on)
		f.Set(x+w-1, row, on)
	}
}

// Size implements drivers.Displayer.
func (f *Frame) Size() (int16, int16) {
	return Width, Height
}

// SetPixel implements drivers.Displayer so that generic drawing packages can
// render into a frame.
func (f *Frame) SetPixel(x, y int16, c color.RGBA) {
	f.Set(int(x), int(y), bool(pixel.NewMonochrome(c.R, c.G, c.B)))
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}
