package platform

import (
	"sandbox3d/internal/input"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sampler reads raylib's keyboard and mouse state into an input.State once per frame.
type Sampler struct {
	bindings Bindings
}

func NewSampler(bindings Bindings) *Sampler {
	return &Sampler{bindings: bindings}
}

func (s *Sampler) Sample() input.State {
	var state input.State
	for a := input.Action(0); a < input.ActionCount; a++ {
		if key := s.bindings[a]; key != 0 {
			state.Set(a, rl.IsKeyDown(key))
		}
	}

	delta := rl.GetMouseDelta()
	state.MouseDX = int32(math32.Round(delta.X))
	state.MouseDY = int32(math32.Round(delta.Y))
	return state
}
