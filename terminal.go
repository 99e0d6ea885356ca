package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Terminal draws frames into a tcell screen and turns key presses into
// intents. World coordinates are scaled to fit the screen.
type Terminal struct {
	screen tcell.Screen
	extent BBox
	events chan tcell.Event
	bg     tcell.Style
}

// NewTerminal initialises the screen and starts the event pump. The pump
// only forwards events; all state changes happen in Poll.
func NewTerminal(extent BBox) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		extent: extent,
		events: make(chan tcell.Event, 64),
		bg:     tcell.StyleDefault.Background(tcell.ColorBlack),
	}
	go t.pump()
	return t, nil
}

func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		t.events <- ev
	}
}

// Close restores the terminal
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Poll drains pending events. Terminals report presses but not releases,
// so every press counts for the tick it arrives in.
func (t *Terminal) Poll() Intents {
	var in Intents
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				in.Quit = true
				return in
			}
			t.handleEvent(ev, &in)
		default:
			return in
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event, in *Intents) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.Quit = true
		case tcell.KeyLeft:
			in.Direction |= DirLeft
		case tcell.KeyRight:
			in.Direction |= DirRight
		case tcell.KeyUp:
			in.Direction |= DirUp
		case tcell.KeyDown:
			in.Direction |= DirDown
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				in.Quit = true
			case ' ':
				in.TogglePursuit = true
			case 'a':
				in.Direction |= DirLeft
			case 'd':
				in.Direction |= DirRight
			case 'w':
				in.Direction |= DirUp
			case 's':
				in.Direction |= DirDown
			}
		}
	}
}

// toCell maps a world point onto a screen cell
func (t *Terminal) toCell(p Point) (int, int) {
	w, h := t.screen.Size()
	spanX := math.Max(t.extent.MaxX-t.extent.MinX, 1)
	spanY := math.Max(t.extent.MaxY-t.extent.MinY, 1)
	x := (p.X - t.extent.MinX) / spanX * float64(w-1)
	y := (p.Y - t.extent.MinY) / spanY * float64(h-1)
	return int(math.Round(x)), int(math.Round(y))
}

func (t *Terminal) style(c color.RGBA) tcell.Style {
	return t.bg.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (t *Terminal) Clear(c color.RGBA) {
	t.bg = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	t.screen.Fill(' ', t.bg)
}

func (t *Terminal) Polygon(points []Point, c color.RGBA) {
	for i := range points {
		t.Line(points[i], points[(i+1)%len(points)], c)
	}
}

func (t *Terminal) Circle(center Point, radius float64, c color.RGBA) {
	x, y := t.toCell(center)
	t.screen.SetContent(x, y, 'o', nil, t.style(c))
}

// Line rasterises with Bresenham over cells
func (t *Terminal) Line(a, b Point, c color.RGBA) {
	x0, y0 := t.toCell(a)
	x1, y1 := t.toCell(b)
	style := t.style(c)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		t.screen.SetContent(x0, y0, '·', nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Text is placed in screen cells, not world coordinates
func (t *Terminal) Text(pos Point, text string, c color.RGBA) {
	style := t.style(c)
	x, y := int(pos.X), int(pos.Y)
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Terminal) Present() error {
	t.screen.Show()
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
