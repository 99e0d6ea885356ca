package main

// Direction is a set of movement flags held during one tick
type Direction uint8

const (
	DirLeft Direction = 1 << iota
	DirRight
	DirUp
	DirDown
)

func (d Direction) Has(flag Direction) bool {
	return d&flag != 0
}

// Intents is everything the player asked for during one tick
type Intents struct {
	Quit          bool
	TogglePursuit bool
	Direction     Direction
}

// InputSource produces one Intents value per tick
type InputSource interface {
	Poll() Intents
}

// ScriptedInput replays a fixed list of intents, then reports empty ones
type ScriptedInput struct {
	Steps []Intents
	next  int
}

func (s *ScriptedInput) Poll() Intents {
	if s.next >= len(s.Steps) {
		return Intents{}
	}
	in := s.Steps[s.next]
	s.next++
	return in
}
