package frame

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// canvas lets tinyfont draw into a Frame; Display pushes it through the
// transport.
type canvas struct {
	*Frame
	transport Transport
}

func (c canvas) Display() error {
	return c.transport.Send(c.Frame)
}

// Splash draws title centred inside a bordered frame and sends it once.
func (r *Renderer) Splash(title string) error {
	fg := r.color.foreground()
	ink := color.RGBA{A: 255}
	if fg {
		ink = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	r.frame.Fill(!fg)
	r.frame.Outline(0, 0, Width, Height, fg)

	font := &tinyfont.TomThumb
	_, w := tinyfont.LineWidth(font, title)
	x := (Width - int16(w)) / 2
	if x < 2 {
		x = 2
	}
	c := canvas{Frame: r.frame, transport: r.transport}
	tinyfont.WriteLine(c, font, x, Height/2+2, title, ink)
	return c.Display()
}
