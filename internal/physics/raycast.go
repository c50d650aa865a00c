package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type RaycastHit struct {
	Index    int // index into ObstacleSet.Boxes
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// Raycast returns the closest box hit by the ray within maxDistance.
func (s *ObstacleSet) Raycast(origin, direction mgl32.Vec3, maxDistance float32) (RaycastHit, bool) {
	if direction.Len() == 0 {
		return RaycastHit{}, false
	}
	direction = direction.Normalize()

	closest := RaycastHit{Index: -1, Distance: maxDistance}
	hit := false
	for i, box := range s.Boxes() {
		h, ok := RaycastBox(origin, direction, box, maxDistance)
		if ok && h.Distance < closest.Distance {
			closest = h
			closest.Index = i
			hit = true
		}
	}
	return closest, hit
}

// RaycastBox intersects a ray with a single box using the slab method.
// direction must be normalized. A ray starting inside the box reports the exit point.
func RaycastBox(origin, direction mgl32.Vec3, box AABB, maxDistance float32) (RaycastHit, bool) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	for axis := 0; axis < 3; axis++ {
		if direction[axis] == 0 {
			if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (box.Min[axis] - origin[axis]) / direction[axis]
		t2 := (box.Max[axis] - origin[axis]) / direction[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := origin.Add(direction.Mul(t))
	return RaycastHit{Point: point, Normal: faceNormal(point, box), Distance: t}, true
}

// faceNormal picks the outward normal of the face nearest to point.
func faceNormal(point mgl32.Vec3, box AABB) mgl32.Vec3 {
	const epsilon = 0.001
	for axis := 0; axis < 3; axis++ {
		var n mgl32.Vec3
		if math32.Abs(point[axis]-box.Min[axis]) < epsilon {
			n[axis] = -1
			return n
		}
		if math32.Abs(point[axis]-box.Max[axis]) < epsilon {
			n[axis] = 1
			return n
		}
	}
	return mgl32.Vec3{0, 0, 1}
}
