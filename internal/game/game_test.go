package game

import (
	"strings"
	"testing"

	"sandbox3d/internal/config"
	"sandbox3d/internal/input"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// groundLevel starts the camera low enough for the player box to overlap the block row.
func groundLevel(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Camera.Position = mgl32.Vec3{8, 0.9, 20}

	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNew(t *testing.T) {
	g, err := New(config.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(g.World.Blocks) != 256 {
		t.Errorf("Expected 256 blocks, got %d", len(g.World.Blocks))
	}
	if g.Player.Eye().Sub(g.Camera.Position()).Len() > 1e-5 {
		t.Errorf("player eye %v != camera %v", g.Player.Eye(), g.Camera.Position())
	}
	if g.Camera.FOV() != 120 {
		t.Errorf("FOV = %v", g.Camera.FOV())
	}
}

func TestNewRejectsBadKeys(t *testing.T) {
	cfg := config.Default()
	cfg.Keys["boost"] = "HYPER"
	if _, err := New(cfg); err == nil {
		t.Error("unknown key should fail")
	}
}

func TestUpdateStopsAtBlocks(t *testing.T) {
	g := groundLevel(t)
	forward := input.State{}.WithDown(input.Forward)

	// One unit per frame toward the row of blocks ending at z = 15.5.
	for i := 0; i < 4; i++ {
		g.Update(forward, 0.1)
	}
	if z := g.Camera.Position().Z(); math32.Abs(z-16) > 1e-4 {
		t.Fatalf("after 4 frames z = %v, want 16", z)
	}
	if g.Player.Blocked() {
		t.Fatal("should still be clear")
	}

	g.Update(forward, 0.1)
	if z := g.Camera.Position().Z(); math32.Abs(z-16) > 1e-4 {
		t.Errorf("blocked frame moved camera to z = %v", z)
	}
	if !g.Player.Blocked() || g.Player.Rejects() != 1 {
		t.Errorf("blocked=%v rejects=%d", g.Player.Blocked(), g.Player.Rejects())
	}
	if g.Player.Eye() != g.Camera.Position() {
		t.Error("camera and body out of sync")
	}

	g.Update(input.State{}.WithDown(input.Back), 0.1)
	if g.Player.Blocked() {
		t.Error("backing away should be clear")
	}
}

func TestUpdateFliesOverBlocks(t *testing.T) {
	g, err := New(config.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 20; i++ {
		g.Update(input.State{}.WithDown(input.Forward), 0.1)
	}
	if g.Player.Blocked() {
		t.Error("default start height clears the blocks")
	}
	if z := g.Camera.Position().Z(); math32.Abs(z-0) > 1e-3 {
		t.Errorf("z = %v, want 0", z)
	}
}

func TestUpdateTogglesHUD(t *testing.T) {
	g := groundLevel(t)
	debug := input.State{}.WithDown(input.Debug)

	g.Update(debug, 0.016)
	if !g.HUD.Visible {
		t.Fatal("F1 should show the HUD")
	}
	g.Update(debug, 0.016)
	if !g.HUD.Visible {
		t.Error("holding F1 should not toggle again")
	}
	g.Update(input.State{}, 0.016)
	g.Update(debug, 0.016)
	if g.HUD.Visible {
		t.Error("second press should hide the HUD")
	}
}

func TestTarget(t *testing.T) {
	g := groundLevel(t)
	g.Camera.SetPosition(mgl32.Vec3{8, 0.2, 18})
	g.Camera.SetOrientation(mgl32.Vec3{0, 0, -1})

	got := g.Target()
	if !strings.Contains(got, "[8 0 15]") {
		t.Errorf("Target = %q, want block [8 0 15]", got)
	}

	g.Camera.SetOrientation(mgl32.Vec3{0, 0, 1})
	if got := g.Target(); got != "" {
		t.Errorf("looking away Target = %q", got)
	}
}
