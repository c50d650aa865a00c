package world

import (
	"testing"

	"sandbox3d/internal/config"
	"sandbox3d/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

func testPlayer(t *testing.T, eye mgl32.Vec3) *Player {
	t.Helper()
	p, err := NewPlayer(eye, config.PlayerConfig{
		Size:      mgl32.Vec3{0.5, 1, 0.5},
		EyeOffset: mgl32.Vec3{0.25, 0.9, 0.25},
	})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func TestNewPlayer(t *testing.T) {
	p := testPlayer(t, mgl32.Vec3{5, 0.9, 0.25})

	if p.Body.Position() != (mgl32.Vec3{4.75, 0, 0}) {
		t.Errorf("box min = %v", p.Body.Position())
	}
	if p.Eye() != (mgl32.Vec3{5, 0.9, 0.25}) {
		t.Errorf("eye = %v", p.Eye())
	}

	_, err := NewPlayer(mgl32.Vec3{}, config.PlayerConfig{Size: mgl32.Vec3{-1, 1, 1}})
	if err == nil {
		t.Error("negative player size should fail")
	}
}

func TestPlayerMove(t *testing.T) {
	obstacles := physics.NewObstacleSet(physics.MustAABB(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}))
	p := testPlayer(t, mgl32.Vec3{5, 0.9, 0.25})

	clear := mgl32.Vec3{3, 0.9, 0.25}
	if got := p.Move(clear, obstacles, 0.1); got != clear {
		t.Errorf("clear move ended at %v", got)
	}
	if p.Blocked() {
		t.Error("clear move reported blocked")
	}

	got := p.Move(mgl32.Vec3{1.2, 0.9, 0.25}, obstacles, 0.1)
	if got != clear {
		t.Errorf("blocked move should stay at %v, got %v", clear, got)
	}
	if !p.Blocked() || p.Rejects() != 1 {
		t.Errorf("blocked=%v rejects=%d", p.Blocked(), p.Rejects())
	}
	if p.Body.Velocity != (mgl32.Vec3{}) {
		t.Errorf("velocity after reject = %v", p.Body.Velocity)
	}

	away := mgl32.Vec3{4, 0.9, 0.25}
	if got := p.Move(away, obstacles, 0.1); got != away {
		t.Errorf("move away ended at %v", got)
	}
	if p.Blocked() {
		t.Error("should be clear after moving away")
	}
}

func TestPlayerMoveWithoutTime(t *testing.T) {
	p := testPlayer(t, mgl32.Vec3{5, 0.9, 0.25})
	if got := p.Move(mgl32.Vec3{9, 9, 9}, nil, 0); got != p.Eye() {
		t.Errorf("zero dt should not move, got %v", got)
	}
}
