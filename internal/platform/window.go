package platform

import (
	"log"

	"sandbox3d/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window wraps the raylib window and GL context. Only one may exist at a time.
type Window struct {
	width, height int32
}

// OpenWindow creates the window. It must be called on the main goroutine.
func OpenWindow(cfg config.WindowConfig) *Window {
	flags := uint32(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	if cfg.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if cfg.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	rl.SetTargetFPS(cfg.TargetFPS)
	// Escape releases nothing and should not quit; closing is done through the window.
	rl.SetExitKey(0)

	w := &Window{width: int32(rl.GetScreenWidth()), height: int32(rl.GetScreenHeight())}
	log.Printf("Window: %dx%d %q", w.width, w.height, cfg.Title)
	return w
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func (w *Window) Size() (int32, int32) {
	return w.width, w.height
}

// Aspect is width over height, or 1 for a minimised window.
func (w *Window) Aspect() float32 {
	if w.height <= 0 {
		return 1
	}
	return float32(w.width) / float32(w.height)
}

// PollResize records the current size and reports whether it changed since the last call.
func (w *Window) PollResize() bool {
	width, height := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if width == w.width && height == w.height {
		return false
	}
	w.width, w.height = width, height
	log.Printf("Window: resized to %dx%d", width, height)
	return true
}

// HideCursor captures the mouse for relative look.
func (w *Window) HideCursor() {
	rl.DisableCursor()
}

func (w *Window) CenterCursor() {
	rl.SetMousePosition(int(w.width/2), int(w.height/2))
}

// TraceLevel maps a config log level to raylib's trace level. Unknown names map to info.
func TraceLevel(name string) rl.TraceLogLevel {
	switch name {
	case "trace":
		return rl.LogTrace
	case "debug":
		return rl.LogDebug
	case "warning":
		return rl.LogWarning
	case "error":
		return rl.LogError
	case "none":
		return rl.LogNone
	default:
		return rl.LogInfo
	}
}
