// Package input describes one frame of user input, independent of the windowing library.
package input

import (
	"fmt"
	"strings"
)

// Action is a logical key-driven input.
type Action int

const (
	Forward Action = iota
	Back
	Left
	Right
	Up
	Down
	Boost
	Wireframe
	Debug

	ActionCount
)

var actionNames = [ActionCount]string{
	Forward:   "forward",
	Back:      "back",
	Left:      "left",
	Right:     "right",
	Up:        "up",
	Down:      "down",
	Boost:     "boost",
	Wireframe: "wireframe",
	Debug:     "debug",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps a config name such as "forward" to its Action.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("input: unknown action %q", name)
}

// State is the input sampled for a single frame.
type State struct {
	down [ActionCount]bool

	// Relative cursor displacement since the previous frame, in pixels.
	// Positive X is right, positive Y is down.
	MouseDX int32
	MouseDY int32
}

// Down reports whether the action's key is held this frame.
func (s State) Down(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	return s.down[a]
}

// Set records the held state of an action.
func (s *State) Set(a Action, held bool) {
	if a < 0 || a >= ActionCount {
		return
	}
	s.down[a] = held
}

// WithDown returns a copy of s with the given actions held. Handy for tests and replays.
func (s State) WithDown(actions ...Action) State {
	for _, a := range actions {
		s.Set(a, true)
	}
	return s
}

// WithMouse returns a copy of s with the given mouse displacement.
func (s State) WithMouse(dx, dy int32) State {
	s.MouseDX, s.MouseDY = dx, dy
	return s
}

// Edge tracks held-to-pressed transitions for toggle actions.
type Edge struct {
	prev [ActionCount]bool
}

// Pressed returns the actions that went from released to held since the last call.
func (e *Edge) Pressed(s State) []Action {
	var out []Action
	for a := Action(0); a < ActionCount; a++ {
		held := s.Down(a)
		if held && !e.prev[a] {
			out = append(out, a)
		}
		e.prev[a] = held
	}
	return out
}
