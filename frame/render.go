package frame

import (
	"io"
	"log/slog"

	"github.com/harveysanders/analogico/mode"
	"github.com/harveysanders/analogico/stick"
)

// Transport pushes a finished frame to a panel. It may block until the
// transfer completes.
type Transport interface {
	Send(f *Frame) error
}

// ColorMode selects which pixel state is used for the foreground.
type ColorMode uint8

const (
	Normal   ColorMode = iota // lit pixels on a dark background
	Inverted                  // dark pixels on a lit background
)

func (c ColorMode) foreground() bool { return c == Normal }

// Renderer draws the cursor and optional border into its frame and sends it.
type Renderer struct {
	frame     *Frame
	transport Transport
	color     ColorMode
	logger    *slog.Logger

	sendFailing bool
}

// NewRenderer returns a Renderer that owns a freshly allocated frame.
func NewRenderer(t Transport, color ColorMode, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	return &Renderer{
		frame:     NewFrame(),
		transport: t,
		color:     color,
		logger:    logger,
	}
}

// Frame returns the frame the renderer draws into.
func (r *Renderer) Frame() *Frame {
	return r.frame
}

// Render composes one frame from the cursor position and mode flags and
// transmits it. Rendering the same inputs twice yields identical frames.
func (r *Renderer) Render(p stick.Position, m mode.Flags) {
	fg := r.color.foreground()
	bg := !fg

	r.frame.Fill(bg)
	// Drawing the border in the background tone when hidden erases any
	// border left from a previous frame.
	border := bg
	if m.BorderVisible {
		border = fg
	}
	r.frame.Outline(0, 0, Width, Height, border)

	// Cursor X is the row, cursor Y the column.
	r.frame.FillRect(int(p.Y), int(p.X), stick.GlyphSize, stick.GlyphSize, fg)

	r.send()
}

// send transmits the frame. Transport errors are not propagated; only
// changes between failing and healthy are logged to keep the tick quiet.
func (r *Renderer) send() {
	err := r.transport.Send(r.frame)
	switch {
	case err != nil && !r.sendFailing:
		r.sendFailing = true
		r.logger.Error("frame:send-failed", slog.Any("reason", err))
	case err == nil && r.sendFailing:
		r.sendFailing = false
		r.logger.Info("frame:send-recovered")
	}
}
