package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func apply(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// near compares with an absolute tolerance so trig residue against an exact zero passes.
func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() <= epsilon
}

func TestModelMatrix(t *testing.T) {
	tests := []struct {
		name     string
		position mgl32.Vec3
		euler    mgl32.Vec3
		scale    mgl32.Vec3
		point    mgl32.Vec3
		want     mgl32.Vec3
	}{
		{"identity", mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}},
		{"scale then translate", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{2, 2, 2}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{3, 4, 5}},
		{"yaw 90", mgl32.Vec3{}, mgl32.Vec3{0, 90, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		// Z is applied first, then X: x -> y -> z.
		{"rotation order", mgl32.Vec3{}, mgl32.Vec3{90, 0, 90}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apply(ModelMatrix(tt.position, tt.euler, tt.scale), tt.point)
			if !near(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTransformMatrixCaches(t *testing.T) {
	tr := NewTransform()
	if tr.Matrix() != mgl32.Ident4() {
		t.Error("new transform should be identity")
	}

	tr.SetPosition(mgl32.Vec3{4, 0, 0})
	tr.SetScale(mgl32.Vec3{0.5, 0.5, 0.5})

	got := apply(tr.Matrix(), mgl32.Vec3{2, 2, 2})
	if !near(got, mgl32.Vec3{5, 1, 1}) {
		t.Errorf("Expected (5,1,1), got %v", got)
	}
}

func TestTransformZeroValue(t *testing.T) {
	var tr Transform
	if tr.Matrix() == (mgl32.Mat4{}) {
		t.Error("zero transform should still produce a usable matrix")
	}
}
