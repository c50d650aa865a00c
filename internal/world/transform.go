package world

import "github.com/go-gl/mathgl/mgl32"

// Transform places a mesh in the world. Euler angles are in degrees.
type Transform struct {
	Position    mgl32.Vec3
	Scale       mgl32.Vec3
	EulerAngles mgl32.Vec3

	matrix mgl32.Mat4
	dirty  bool
}

// NewTransform returns an identity transform with unit scale.
func NewTransform() Transform {
	return Transform{
		Scale:  mgl32.Vec3{1, 1, 1},
		matrix: mgl32.Ident4(),
	}
}

func (t *Transform) SetPosition(p mgl32.Vec3) {
	t.Position = p
	t.dirty = true
}

func (t *Transform) SetScale(s mgl32.Vec3) {
	t.Scale = s
	t.dirty = true
}

// Matrix returns T * (Rx * Ry * Rz) * S, rebuilding it only after a setter ran.
func (t *Transform) Matrix() mgl32.Mat4 {
	if t.dirty || t.matrix == (mgl32.Mat4{}) {
		t.matrix = ModelMatrix(t.Position, t.EulerAngles, t.Scale)
		t.dirty = false
	}
	return t.matrix
}

// ModelMatrix composes translation, XYZ euler rotation (degrees) and scale.
func ModelMatrix(position, eulerDegrees, scale mgl32.Vec3) mgl32.Mat4 {
	rotation := mgl32.HomogRotate3DX(mgl32.DegToRad(eulerDegrees.X())).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(eulerDegrees.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(eulerDegrees.Z())))

	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(rotation).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}
