package platform

import (
	"fmt"
	"strings"

	"sandbox3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var namedKeys = map[string]int32{
	"SPACE":         rl.KeySpace,
	"ESCAPE":        rl.KeyEscape,
	"ENTER":         rl.KeyEnter,
	"TAB":           rl.KeyTab,
	"BACKSPACE":     rl.KeyBackspace,
	"UP":            rl.KeyUp,
	"DOWN":          rl.KeyDown,
	"LEFT":          rl.KeyLeft,
	"RIGHT":         rl.KeyRight,
	"LEFT_SHIFT":    rl.KeyLeftShift,
	"RIGHT_SHIFT":   rl.KeyRightShift,
	"LEFT_CONTROL":  rl.KeyLeftControl,
	"RIGHT_CONTROL": rl.KeyRightControl,
	"LEFT_ALT":      rl.KeyLeftAlt,
	"RIGHT_ALT":     rl.KeyRightAlt,
	"F1":            rl.KeyF1,
	"F2":            rl.KeyF2,
	"F3":            rl.KeyF3,
	"F4":            rl.KeyF4,
	"F5":            rl.KeyF5,
	"F6":            rl.KeyF6,
	"F7":            rl.KeyF7,
	"F8":            rl.KeyF8,
	"F9":            rl.KeyF9,
	"F10":           rl.KeyF10,
	"F11":           rl.KeyF11,
	"F12":           rl.KeyF12,
}

// ParseKey maps a config key name ("W", "left_shift", "F1") to a raylib key code.
func ParseKey(name string) (int32, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if key, ok := namedKeys[name]; ok {
		return key, nil
	}
	// Letters and digits use their ASCII codes.
	if len(name) == 1 {
		c := name[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return int32(c), nil
		}
	}
	return 0, fmt.Errorf("platform: unknown key %q", name)
}

// Bindings maps every action to a key. Zero means unbound.
type Bindings [input.ActionCount]int32

// ParseBindings builds bindings from an action -> key-name table.
func ParseBindings(keys map[string]string) (Bindings, error) {
	var b Bindings
	for actionName, keyName := range keys {
		action, err := input.ParseAction(actionName)
		if err != nil {
			return Bindings{}, err
		}
		key, err := ParseKey(keyName)
		if err != nil {
			return Bindings{}, fmt.Errorf("%s: %w", action, err)
		}
		b[action] = key
	}
	return b, nil
}
