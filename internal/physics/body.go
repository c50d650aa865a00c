package physics

import (
	"sandbox3d/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

// Blocked describes a rejected move.
type Blocked struct {
	Tentative AABB // where the body would have been
	Obstacle  AABB // first obstacle that intersected it
	Index     int  // index of Obstacle in the set
}

// KinematicBody is a box moved by its velocity and stopped by static obstacles.
//
// The collision policy is binary: a move either happens in full or not at all.
// There is no sliding along free axes and no penetration resolution.
type KinematicBody struct {
	Box      AABB
	Velocity mgl32.Vec3 // units per second

	// OnBlocked fires after a move was rejected and the velocity zeroed.
	OnBlocked engine.EventWithArg[Blocked]
}

// NewKinematicBody creates a body at rest occupying box.
func NewKinematicBody(box AABB) *KinematicBody {
	return &KinematicBody{Box: box}
}

// Position returns the minimum corner of the body's box.
func (b *KinematicBody) Position() mgl32.Vec3 {
	return b.Box.Min
}

// SyncTo moves the box so its minimum corner is at origin, keeping its size.
// Velocity is left untouched.
func (b *KinematicBody) SyncTo(origin mgl32.Vec3) {
	b.Box = b.Box.MoveTo(origin)
}

// Tentative returns the box the body would occupy after dt seconds.
func (b *KinematicBody) Tentative(dt float32) AABB {
	return b.Box.Translate(b.Velocity.Mul(dt))
}

// Step advances the body by velocity*dt unless the tentative box intersects an obstacle.
// It returns true when the move was committed. On rejection the box is left where it was
// and the velocity is set to zero; this is the expected outcome, not an error.
func (b *KinematicBody) Step(obstacles *ObstacleSet, dt float32) bool {
	tentative := b.Tentative(dt)

	i := obstacles.FirstHit(tentative)
	if i < 0 {
		b.Box = tentative
		return true
	}

	b.Velocity = mgl32.Vec3{}
	b.OnBlocked.Invoke(Blocked{
		Tentative: tentative,
		Obstacle:  obstacles.Boxes()[i],
		Index:     i,
	})
	return false
}
