package physics

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNegativeExtent is returned when a box is built with a negative width, height or depth.
var ErrNegativeExtent = errors.New("physics: negative box extent")

// AABB is an axis-aligned bounding box. Min <= Max on every axis.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB builds a box whose minimum corner is origin and whose extent is size.
// Zero extents are allowed and produce a degenerate box that never intersects anything
// unless another box strictly straddles its flat coordinate.
func NewAABB(origin, size mgl32.Vec3) (AABB, error) {
	if size.X() < 0 || size.Y() < 0 || size.Z() < 0 {
		return AABB{}, fmt.Errorf("%w: %v", ErrNegativeExtent, size)
	}
	return AABB{Min: origin, Max: origin.Add(size)}, nil
}

// MustAABB is like NewAABB but panics on a negative extent.
// Only use it with constant geometry.
func MustAABB(origin, size mgl32.Vec3) AABB {
	box, err := NewAABB(origin, size)
	if err != nil {
		panic(err)
	}
	return box
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size mgl32.Vec3) (AABB, error) {
	half := size.Mul(0.5)
	return NewAABB(center.Sub(half), size)
}

// Size returns the extent of the box on each axis.
func (a AABB) Size() mgl32.Vec3 {
	return a.Max.Sub(a.Min)
}

// Translate returns the box moved by offset. The size is unchanged.
func (a AABB) Translate(offset mgl32.Vec3) AABB {
	return AABB{Min: a.Min.Add(offset), Max: a.Max.Add(offset)}
}

// MoveTo returns the box with its minimum corner placed at origin.
func (a AABB) MoveTo(origin mgl32.Vec3) AABB {
	return AABB{Min: origin, Max: origin.Add(a.Size())}
}

// Intersects reports whether the two boxes overlap on all three axes.
// Comparisons are strict: boxes that only share a face, edge or corner do not intersect.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X() < b.Max.X() && a.Max.X() > b.Min.X() &&
		a.Min.Y() < b.Max.Y() && a.Max.Y() > b.Min.Y() &&
		a.Min.Z() < b.Max.Z() && a.Max.Z() > b.Min.Z()
}

// Equal is exact component-wise equality, no epsilon.
func (a AABB) Equal(b AABB) bool {
	return a.Min == b.Min && a.Max == b.Max
}
