package world

import (
	"sandbox3d/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// ExtractFrustum extracts frustum planes from a view-projection matrix (projection * view).
// Uses the Gribb/Hartmann method for plane extraction
func ExtractFrustum(viewProjection mgl32.Mat4) Frustum {
	row := func(i int) mgl32.Vec4 { return viewProjection.Row(i) }
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	var f Frustum
	f.planes[0] = planeFrom(r3.Add(r0)) // left
	f.planes[1] = planeFrom(r3.Sub(r0)) // right
	f.planes[2] = planeFrom(r3.Add(r1)) // bottom
	f.planes[3] = planeFrom(r3.Sub(r1)) // top
	f.planes[4] = planeFrom(r3.Add(r2)) // near
	f.planes[5] = planeFrom(r3.Sub(r2)) // far
	return f
}

func planeFrom(v mgl32.Vec4) Plane {
	p := Plane{Normal: v.Vec3(), Distance: v.W()}
	length := p.Normal.Len()
	if length == 0 {
		return p
	}
	return Plane{Normal: p.Normal.Mul(1 / length), Distance: p.Distance / length}
}

// SignedDistance is positive on the inside of the plane.
func (p Plane) SignedDistance(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// ContainsAABB reports whether any part of box may be visible. It can return true for
// boxes just outside a frustum corner, which only costs a wasted draw.
func (f *Frustum) ContainsAABB(box physics.AABB) bool {
	for i := 0; i < 6; i++ {
		n := f.planes[i].Normal
		// Corner furthest along the plane normal.
		var positive mgl32.Vec3
		for axis := 0; axis < 3; axis++ {
			if n[axis] >= 0 {
				positive[axis] = box.Max[axis]
			} else {
				positive[axis] = box.Min[axis]
			}
		}
		if f.planes[i].SignedDistance(positive) < 0 {
			return false
		}
	}
	return true
}
