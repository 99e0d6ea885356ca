package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulatedTerminal(t *testing.T, w, h int, extent BBox) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)

	return &Terminal{
		screen: screen,
		extent: extent,
		events: make(chan tcell.Event, 16),
		bg:     tcell.StyleDefault,
	}, screen
}

func TestTerminalPollMergesKeys(t *testing.T) {
	term, _ := newSimulatedTerminal(t, 80, 24, BBox{MaxX: 100, MaxY: 100})

	term.events <- tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	term.events <- tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	term.events <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)

	in := term.Poll()
	assert.Equal(t, DirLeft|DirDown, in.Direction)
	assert.True(t, in.TogglePursuit)
	assert.False(t, in.Quit)

	assert.Equal(t, Intents{}, term.Poll(), "nothing pending")

	term.events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	assert.True(t, term.Poll().Quit)

	close(term.events)
	assert.True(t, term.Poll().Quit, "closed screen quits")
}

func TestTerminalDrawsScaledWorld(t *testing.T) {
	term, screen := newSimulatedTerminal(t, 11, 11, BBox{MaxX: 100, MaxY: 100})

	term.Clear(colorBackground)
	term.Line(Point{0, 0}, Point{100, 0}, colorPath)
	term.Circle(Point{50, 50}, 4, colorObstacle)
	term.Text(Point{0, 10}, "hi", colorLabel)
	require.NoError(t, term.Present())

	for x := 0; x <= 10; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		assert.Equal(t, '·', r, "cell %d", x)
	}
	r, _, _, _ := screen.GetContent(5, 5)
	assert.Equal(t, 'o', r)
	r, _, _, _ = screen.GetContent(1, 10)
	assert.Equal(t, 'i', r)
	r, _, _, _ = screen.GetContent(3, 3)
	assert.Equal(t, ' ', r)
}
