package render

import (
	"github.com/go-gl/mathgl/mgl32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Segment is a line in normalized device coordinates, (-1,-1) bottom-left to (1,1) top-right.
type Segment struct {
	From, To mgl32.Vec2
}

// Crosshair is drawn over the 3D scene at a fixed screen position.
type Crosshair struct {
	Segments []Segment
	Width    float32 // pixels
	Color    rl.Color
}

// DefaultCrosshair is a plus sign whose arms are equal length on a 2:1 window.
func DefaultCrosshair() Crosshair {
	return Crosshair{
		Segments: []Segment{
			{From: mgl32.Vec2{0, -0.04}, To: mgl32.Vec2{0, 0.04}},
			{From: mgl32.Vec2{-0.02, 0}, To: mgl32.Vec2{0.02, 0}},
		},
		Width: 3,
		Color: rl.White,
	}
}

// NDCToScreen maps normalized device coordinates to pixels with y growing downward.
func NDCToScreen(p mgl32.Vec2, width, height int32) rl.Vector2 {
	return rl.Vector2{
		X: (p.X() + 1) / 2 * float32(width),
		Y: (1 - p.Y()) / 2 * float32(height),
	}
}

// Draw must run in 2D mode, after the 3D pass.
func (c Crosshair) Draw(width, height int32) {
	for _, s := range c.Segments {
		rl.DrawLineEx(NDCToScreen(s.From, width, height), NDCToScreen(s.To, width, height), c.Width, c.Color)
	}
}
