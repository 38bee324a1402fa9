package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/harveysanders/analogico/frame"
	"github.com/harveysanders/analogico/lights"
	"github.com/harveysanders/analogico/mode"
)

const (
	// Two pixel rows share one terminal cell using half-block glyphs.
	panelCols = frame.Width
	panelRows = frame.Height / 2

	originX = 1
	originY = 1

	gaugeWidth = 32

	minTermWidth  = panelCols + 2
	minTermHeight = panelRows + 8
)

var (
	panelStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	redStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	blueStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	greenStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	noticeStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// terminal is a frame.Transport that paints frames, light levels and mode
// flags onto a tcell screen.
type terminal struct {
	screen   tcell.Screen
	stick    *virtualStick
	leds     *ledPanel
	green    *greenLED
	state    *mode.State
	mailbox  *mode.Mailbox
	messages <-chan Message

	mu   sync.Mutex
	last Message
}

func (t *terminal) Send(f *frame.Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()

drain:
	for {
		select {
		case msg := <-t.messages:
			t.last = msg
		default:
			break drain
		}
	}

	w, h := t.screen.Size()
	if w < minTermWidth || h < minTermHeight {
		t.screen.Clear()
		drawText(t.screen, 0, 0, noticeStyle,
			fmt.Sprintf("terminal too small: need %dx%d, have %dx%d", minTermWidth, minTermHeight, w, h))
		t.screen.Show()
		return nil
	}

	drawPanel(t.screen, f, originX, originY)
	t.drawStatus(originX, originY+panelRows+1)
	t.screen.Show()
	return nil
}

func (t *terminal) drawStatus(x, y int) {
	s := t.stick.Sample()
	flags := t.state.Snapshot()

	drawText(t.screen, x, y, labelStyle,
		fmt.Sprintf("stick x=%4d y=%4d   pwm=%-3s border=%-3s   dropped=%d",
			s.X, s.Y, onOff(flags.PWMActive), onOff(flags.BorderVisible), t.mailbox.Dropped()))
	drawGauge(t.screen, x, y+1, "red ", t.leds.Level(lights.Red), redStyle)
	drawGauge(t.screen, x, y+2, "blue", t.leds.Level(lights.Blue), blueStyle)

	green := "green ○"
	if t.green.on.Load() {
		green = "green ●"
	}
	drawText(t.screen, x, y+3, greenStyle, green)

	drawText(t.screen, x, y+4, noticeStyle, pad(t.last.Line1, panelCols))
	drawText(t.screen, x, y+5, labelStyle, pad(t.last.Line2, panelCols))
	drawText(t.screen, x, y+6, labelStyle,
		"arrows: move   c: center   space: stick button   p: aux button   q: quit")
}

// drawPanel paints f with its top-left corner at terminal cell (x, y).
func drawPanel(s tcell.Screen, f *frame.Frame, x, y int) {
	for row := 0; row < panelRows; row++ {
		for col := 0; col < panelCols; col++ {
			s.SetContent(x+col, y+row, halfBlock(f.Pixel(col, 2*row), f.Pixel(col, 2*row+1)), nil, panelStyle)
		}
	}
}

func halfBlock(upper, lower bool) rune {
	switch {
	case upper && lower:
		return '█'
	case upper:
		return '▀'
	case lower:
		return '▄'
	default:
		return ' '
	}
}

func drawGauge(s tcell.Screen, x, y int, label string, level uint8, style tcell.Style) {
	filled := int(level) * gaugeWidth / 255
	bar := strings.Repeat("█", filled) + strings.Repeat("·", gaugeWidth-filled)
	drawText(s, x, y, labelStyle, label)
	drawText(s, x+len(label)+1, y, style, bar)
	drawText(s, x+len(label)+2+gaugeWidth, y, labelStyle, fmt.Sprintf("%3d", level))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func pad(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
