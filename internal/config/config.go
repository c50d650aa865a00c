package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"sandbox3d/internal/input"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the sandbox looks for its config file when no -config flag is given.
const DefaultPath = "config/sandbox.yaml"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// SkyboxFaces is the face order the skybox list must follow.
var SkyboxFaces = [6]string{"right", "left", "top", "bottom", "front", "back"}

type Config struct {
	Window   WindowConfig      `yaml:"window"`
	Camera   CameraConfig      `yaml:"camera"`
	Player   PlayerConfig      `yaml:"player"`
	World    WorldConfig       `yaml:"world"`
	Keys     map[string]string `yaml:"keys"`
	LogLevel string            `yaml:"log_level"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
	MSAA      bool   `yaml:"msaa"`
	VSync     bool   `yaml:"vsync"`
}

type CameraConfig struct {
	Position        mgl32.Vec3 `yaml:"position"`
	FOVDegrees      float32    `yaml:"fov_degrees"`
	Near            float32    `yaml:"near"`
	Far             float32    `yaml:"far"`
	Speed           float32    `yaml:"speed"`
	BoostMultiplier float32    `yaml:"boost_multiplier"`
	Sensitivity     float32    `yaml:"sensitivity"`
}

// PlayerConfig sizes the collision box that follows the camera.
// EyeOffset is the camera position relative to the box's min corner.
type PlayerConfig struct {
	Size      mgl32.Vec3 `yaml:"size"`
	EyeOffset mgl32.Vec3 `yaml:"eye_offset"`
}

type WorldConfig struct {
	SizeX          int      `yaml:"size_x"`
	SizeY          int      `yaml:"size_y"`
	SizeZ          int      `yaml:"size_z"`
	BlockSize      float32  `yaml:"block_size"`
	Textures       []string `yaml:"textures"`
	Skybox         []string `yaml:"skybox"`
	TextureSize    int      `yaml:"texture_size"`
	SkyboxFaceSize int      `yaml:"skybox_face_size"`
}

// Default returns the built-in configuration used when no file is present.
func Default() Config {
	textures := []string{
		"gold_ore", "gold_block", "dirt", "glass",
		"netherrack", "yellow_wool", "granite", "brown_wool",
		"blue_terracotta", "blue_wool", "jungle_planks", "iron_ore",
		"red_sand", "red_nether_bricks", "redstone_block", "warped_wart_block",
	}
	for i, name := range textures {
		textures[i] = "assets/textures/" + name + ".png"
	}

	skybox := make([]string, len(SkyboxFaces))
	for i, face := range SkyboxFaces {
		skybox[i] = "assets/textures/skybox/" + face + ".jpg"
	}

	return Config{
		Window: WindowConfig{
			Width:     1800,
			Height:    900,
			Title:     "Voxel Sandbox",
			TargetFPS: 120,
			MSAA:      true,
		},
		Camera: CameraConfig{
			Position:        mgl32.Vec3{8, 3, 20},
			FOVDegrees:      120,
			Near:            0.1,
			Far:             100,
			Speed:           10,
			BoostMultiplier: 2,
			Sensitivity:     0.7,
		},
		Player: PlayerConfig{
			Size:      mgl32.Vec3{0.5, 1, 0.5},
			EyeOffset: mgl32.Vec3{0.25, 0.9, 0.25},
		},
		World: WorldConfig{
			SizeX:          16,
			SizeY:          1,
			SizeZ:          16,
			BlockSize:      1,
			Textures:       textures,
			Skybox:         skybox,
			TextureSize:    16,
			SkyboxFaceSize: 512,
		},
		Keys: map[string]string{
			"forward":   "W",
			"back":      "S",
			"left":      "A",
			"right":     "D",
			"up":        "SPACE",
			"down":      "LEFT_CONTROL",
			"boost":     "LEFT_SHIFT",
			"wireframe": "M",
			"debug":     "F1",
		},
		LogLevel: "info",
	}
}

// Load reads a YAML config from path on top of Default. A missing file is not an
// error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values the rest of the program assumes.
func (c Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		add("window.target_fps %d is negative", c.Window.TargetFPS)
	}

	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		add("camera.fov_degrees %v must be in (0, 180)", c.Camera.FOVDegrees)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		add("camera clip planes need 0 < near < far, got %v/%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.Speed < 0 || c.Camera.BoostMultiplier < 0 || c.Camera.Sensitivity < 0 {
		add("camera speed, boost_multiplier and sensitivity must not be negative")
	}

	for i := 0; i < 3; i++ {
		if c.Player.Size[i] < 0 {
			add("player.size %v has a negative extent", c.Player.Size)
			break
		}
	}

	if c.World.SizeX < 0 || c.World.SizeY < 0 || c.World.SizeZ < 0 {
		add("world size %dx%dx%d is negative", c.World.SizeX, c.World.SizeY, c.World.SizeZ)
	}
	if c.World.BlockSize <= 0 {
		add("world.block_size %v must be positive", c.World.BlockSize)
	}
	if c.World.SizeZ > 0 && len(c.World.Textures) == 0 {
		add("world.textures is empty")
	}
	if len(c.World.Skybox) != len(SkyboxFaces) {
		add("world.skybox needs %d faces (%s), got %d",
			len(SkyboxFaces), strings.Join(SkyboxFaces[:], ","), len(c.World.Skybox))
	}
	if c.World.TextureSize <= 0 || c.World.SkyboxFaceSize <= 0 {
		add("world texture sizes must be positive")
	}

	actions := make([]string, 0, len(c.Keys))
	for action := range c.Keys {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		if _, err := input.ParseAction(action); err != nil {
			add("keys: %v", err)
		}
		if strings.TrimSpace(c.Keys[action]) == "" {
			add("keys.%s has no key", action)
		}
	}

	switch c.LogLevel {
	case "", "trace", "debug", "info", "warning", "error", "none":
	default:
		add("unknown log_level %q", c.LogLevel)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Aspect is the initial window aspect ratio.
func (c Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}
