package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPanel = rl.NewColor(18, 18, 24, 220)
	colorText  = rl.NewColor(230, 230, 240, 255)
	colorWarn  = rl.NewColor(255, 120, 90, 255)
	colorGood  = rl.NewColor(120, 220, 140, 255)
)

// HUDInfo is the per-frame data shown in the debug panel.
type HUDInfo struct {
	FPS         int32
	Position    mgl32.Vec3
	Orientation mgl32.Vec3
	Speed       float32
	Mode        string
	Blocked     bool
	Rejects     int
	Target      string // block under the crosshair, if any
	Stats       Stats
	UpdateMs    float64
	DrawMs      float64
}

// HUD is the F1 debug overlay. Its widgets edit the renderer and camera settings
// directly, so changes apply on the next frame.
type HUD struct {
	Visible bool
	styled  bool
}

func (h *HUD) Toggle() {
	h.Visible = !h.Visible
}

func (h *HUD) applyStyle() {
	if h.styled {
		return
	}
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
	h.styled = true
}

// Draw shows the panel when visible. culling and sensitivity are updated in place from
// the panel's widgets.
func (h *HUD) Draw(info HUDInfo, culling *bool, sensitivity *float32) {
	rl.DrawFPS(10, 10)
	if !h.Visible {
		rl.DrawText("F1 debug", 10, 32, 16, rl.LightGray)
		return
	}
	h.applyStyle()

	const x, width = 10, 330
	y := int32(36)
	rl.DrawRectangle(x-4, y-4, width, 270, colorPanel)

	line := func(text string, color rl.Color) {
		rl.DrawText(text, x, y, 16, color)
		y += 20
	}

	line(fmt.Sprintf("Pos:    %s", formatVec(info.Position)), colorText)
	line(fmt.Sprintf("Look:   %s", formatVec(info.Orientation)), colorText)
	line(fmt.Sprintf("Speed:  %.1f  (%s)", info.Speed, info.Mode), colorText)
	if info.Blocked {
		line(fmt.Sprintf("Body:   BLOCKED  (%d rejects)", info.Rejects), colorWarn)
	} else {
		line(fmt.Sprintf("Body:   free  (%d rejects)", info.Rejects), colorGood)
	}
	line(fmt.Sprintf("Blocks: %d drawn, %d culled", info.Stats.Drawn, info.Stats.Culled), colorText)
	line(fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", info.UpdateMs, info.DrawMs), colorGood)
	if info.Target != "" {
		line("Target: "+info.Target, colorText)
	}

	y += 6
	if culling != nil {
		bounds := rl.Rectangle{X: x, Y: float32(y), Width: 18, Height: 18}
		*culling = gui.CheckBox(bounds, "Frustum culling", *culling)
		y += 28
	}
	if sensitivity != nil {
		rl.DrawText("Sensitivity", x, y+2, 16, colorText)
		bounds := rl.Rectangle{X: x + 110, Y: float32(y), Width: 150, Height: 18}
		*sensitivity = gui.Slider(bounds, "", fmt.Sprintf("%.2f", *sensitivity), *sensitivity, 0.05, 3)
	}
}

func formatVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
}
