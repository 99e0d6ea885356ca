package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptedInputReplaysThenIdles(t *testing.T) {
	input := &ScriptedInput{Steps: []Intents{
		{TogglePursuit: true},
		{Direction: DirLeft | DirUp},
	}}

	assert.Equal(t, Intents{TogglePursuit: true}, input.Poll())
	in := input.Poll()
	assert.True(t, in.Direction.Has(DirLeft))
	assert.True(t, in.Direction.Has(DirUp))
	assert.False(t, in.Direction.Has(DirRight|DirDown))

	for i := 0; i < 3; i++ {
		assert.Equal(t, Intents{}, input.Poll())
	}
}
