package world

import (
	"fmt"
	"log"

	"sandbox3d/internal/config"
	"sandbox3d/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Player is the collision box that follows the camera eye.
// The eye sits at EyeOffset from the box's min corner.
type Player struct {
	Body      *physics.KinematicBody
	EyeOffset mgl32.Vec3

	blocked   bool
	rejects   int
	lastBlock physics.Blocked
}

// NewPlayer places the player box so that its eye is at eye.
func NewPlayer(eye mgl32.Vec3, cfg config.PlayerConfig) (*Player, error) {
	box, err := physics.NewAABB(eye.Sub(cfg.EyeOffset), cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("player box: %w", err)
	}

	p := &Player{
		Body:      physics.NewKinematicBody(box),
		EyeOffset: cfg.EyeOffset,
	}
	p.Body.OnBlocked.AddListener(func(b physics.Blocked) {
		p.rejects++
		p.lastBlock = b
	})
	return p, nil
}

// Eye returns the camera position matching the body's committed box.
func (p *Player) Eye() mgl32.Vec3 {
	return p.Body.Position().Add(p.EyeOffset)
}

// Move tries to carry the eye to target over dt seconds and returns where the eye ends
// up: target when the move is clear, the previous eye when it is blocked.
func (p *Player) Move(target mgl32.Vec3, obstacles *physics.ObstacleSet, dt float32) mgl32.Vec3 {
	if dt <= 0 {
		return p.Eye()
	}

	p.Body.Velocity = target.Sub(p.Eye()).Mul(1 / dt)
	ok := p.Body.Step(obstacles, dt)

	if ok {
		// Land exactly on the target so float error never separates eye and box.
		p.Body.SyncTo(target.Sub(p.EyeOffset))
	}

	if blocked := !ok; blocked != p.blocked {
		p.blocked = blocked
		if blocked {
			log.Printf("Collision: blocked by obstacle %d at %v", p.lastBlock.Index, p.lastBlock.Obstacle.Min)
		} else {
			log.Println("Collision: clear")
		}
	}

	if !ok {
		return p.Eye()
	}
	return target
}

// Blocked reports whether the last Move was rejected.
func (p *Player) Blocked() bool {
	return p.blocked
}

// Rejects counts rejected moves since the player was created.
func (p *Player) Rejects() int {
	return p.rejects
}
