package camera

import (
	"sandbox3d/internal/input"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// PoleDeadZone is the largest allowed pitch away from the horizon, in degrees.
// The look direction therefore stays between 5° and 175° from world up.
const PoleDeadZone = 85.0

// Mode is the cursor tracking state.
type Mode int

const (
	// ModeUninitializedCursor is the state before the first mouse sample.
	ModeUninitializedCursor Mode = iota
	// ModeTracking is the steady state for the rest of the session.
	ModeTracking
)

func (m Mode) String() string {
	if m == ModeTracking {
		return "tracking"
	}
	return "uninitialized-cursor"
}

// Cursor is the part of the window the camera drives on its first frame.
type Cursor interface {
	HideCursor()
	CenterCursor()
}

// Camera is a free-flying first-person camera.
//
// Orientation is a unit look vector rotated directly by mouse deltas instead of being
// rebuilt from yaw/pitch angles every frame.
type Camera struct {
	position    mgl32.Vec3
	up          mgl32.Vec3
	orientation mgl32.Vec3

	BaseSpeed       float32 // units per second
	BoostMultiplier float32
	Sensitivity     float32 // degrees per pixel
	speed           float32

	mode Mode

	fovDegrees float32
	aspect     float32
	near, far  float32
	projection mgl32.Mat4
	view       mgl32.Mat4
}

// New creates a camera at position looking down -Z with world up +Y.
func New(position mgl32.Vec3, speed, sensitivity float32) *Camera {
	return &Camera{
		position:        position,
		up:              mgl32.Vec3{0, 1, 0},
		orientation:     mgl32.Vec3{0, 0, -1},
		BaseSpeed:       speed,
		BoostMultiplier: 2,
		Sensitivity:     sensitivity,
		speed:           speed,
		projection:      mgl32.Ident4(),
		view:            mgl32.Ident4(),
	}
}

// SetProjection builds a perspective projection. The field of view is vertical, in degrees.
func (c *Camera) SetProjection(fovDegrees, aspect, near, far float32) {
	c.fovDegrees, c.aspect, c.near, c.far = fovDegrees, aspect, near, far
	c.projection = mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, near, far)
}

// SetAspect rebuilds the projection for a new viewport, keeping fov and clip planes.
func (c *Camera) SetAspect(aspect float32) {
	if aspect <= 0 || aspect == c.aspect {
		return
	}
	c.SetProjection(c.fovDegrees, aspect, c.near, c.far)
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
}

func (c *Camera) Orientation() mgl32.Vec3 {
	return c.orientation
}

// SetOrientation points the camera along dir. Zero vectors are ignored.
func (c *Camera) SetOrientation(dir mgl32.Vec3) {
	if dir.Len() == 0 {
		return
	}
	c.orientation = dir.Normalize()
}

func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// Speed is the movement speed applied on the last ProcessInput call.
func (c *Camera) Speed() float32 {
	return c.speed
}

func (c *Camera) Mode() Mode {
	return c.mode
}

func (c *Camera) FOV() float32 {
	return c.fovDegrees
}

func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

func (c *Camera) View() mgl32.Mat4 {
	return c.view
}

// UpdateView recomputes the view matrix. Call it once per frame after moving or turning
// and before the matrix is used for drawing.
func (c *Camera) UpdateView() {
	c.view = mgl32.LookAtV(c.position, c.position.Add(c.orientation), c.up)
}

// Right returns the unit strafe direction.
func (c *Camera) Right() mgl32.Vec3 {
	r := c.orientation.Cross(c.up)
	if r.Len() == 0 {
		return mgl32.Vec3{}
	}
	return r.Normalize()
}

// ProcessInput applies one frame of movement and mouse look.
func (c *Camera) ProcessInput(state input.State, dt float32, cursor Cursor) {
	c.speed = c.BaseSpeed
	if state.Down(input.Boost) {
		c.speed = c.BaseSpeed * c.BoostMultiplier
	}
	c.move(state, c.speed*dt)

	if c.mode == ModeUninitializedCursor {
		if cursor != nil {
			cursor.HideCursor()
			cursor.CenterCursor()
		}
		c.mode = ModeTracking
		return
	}

	c.look(float32(state.MouseDX), float32(state.MouseDY))
}

func (c *Camera) move(state input.State, step float32) {
	right := c.Right()

	if state.Down(input.Forward) {
		c.position = c.position.Add(c.orientation.Mul(step))
	}
	if state.Down(input.Back) {
		c.position = c.position.Sub(c.orientation.Mul(step))
	}
	if state.Down(input.Left) {
		c.position = c.position.Sub(right.Mul(step))
	}
	if state.Down(input.Right) {
		c.position = c.position.Add(right.Mul(step))
	}
	if state.Down(input.Up) {
		c.position = c.position.Add(c.up.Mul(step))
	}
	if state.Down(input.Down) {
		c.position = c.position.Sub(c.up.Mul(step))
	}
}

func (c *Camera) look(dx, dy float32) {
	pitch := c.Sensitivity * dy
	yaw := c.Sensitivity * dx

	if pitch != 0 {
		candidate := rotate(c.orientation, -pitch, c.Right())
		if c.pitchAllowed(candidate, pitch) {
			c.orientation = candidate
		}
	}

	if yaw != 0 {
		c.orientation = rotate(c.orientation, -yaw, c.up)
	}

	c.orientation = c.orientation.Normalize()
}

// pitchAllowed rejects candidates inside the pole dead zone. A single large delta can
// swing the candidate over a pole and out the other side, so the unwrapped elevation is
// checked as well.
func (c *Camera) pitchAllowed(candidate mgl32.Vec3, pitch float32) bool {
	limit := mgl32.DegToRad(PoleDeadZone)
	if math32.Abs(angle(candidate, c.up)-math32.Pi/2) > limit {
		return false
	}
	elevation := math32.Pi/2 - angle(c.orientation, c.up)
	return math32.Abs(elevation-mgl32.DegToRad(pitch)) <= limit
}

// rotate turns v by degrees around a unit axis (right-hand rule).
func rotate(v mgl32.Vec3, degrees float32, axis mgl32.Vec3) mgl32.Vec3 {
	if axis.Len() == 0 {
		return v
	}
	m := mgl32.HomogRotate3D(mgl32.DegToRad(degrees), axis.Normalize())
	return m.Mul4x1(v.Vec4(0)).Vec3()
}

// angle returns the unsigned angle between a and b in radians.
func angle(a, b mgl32.Vec3) float32 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	return math32.Acos(mgl32.Clamp(cos, -1, 1))
}
