package physics

// ObstacleSet is an unordered, de-duplicated collection of immovable boxes.
// It is filled during world generation and only read by collision checks.
type ObstacleSet struct {
	boxes []AABB
}

// NewObstacleSet returns a set holding the given boxes, duplicates dropped.
func NewObstacleSet(boxes ...AABB) *ObstacleSet {
	s := &ObstacleSet{boxes: make([]AABB, 0, len(boxes))}
	for _, b := range boxes {
		s.Add(b)
	}
	return s
}

// Add inserts box unless an equal box is already present and reports whether it was added.
// The contains check is a linear scan, fine for a small fixed world; a grid or BVH is the
// next step if the world grows.
func (s *ObstacleSet) Add(box AABB) bool {
	if s.Contains(box) {
		return false
	}
	s.boxes = append(s.boxes, box)
	return true
}

// Contains reports whether an exactly equal box is in the set.
func (s *ObstacleSet) Contains(box AABB) bool {
	for _, b := range s.boxes {
		if b.Equal(box) {
			return true
		}
	}
	return false
}

// Len returns the number of boxes.
func (s *ObstacleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.boxes)
}

// Boxes returns the stored boxes. Callers must not modify the slice.
func (s *ObstacleSet) Boxes() []AABB {
	if s == nil {
		return nil
	}
	return s.boxes
}

// FirstHit returns the index of the first box intersecting probe, or -1.
func (s *ObstacleSet) FirstHit(probe AABB) int {
	for i, b := range s.Boxes() {
		if probe.Intersects(b) {
			return i
		}
	}
	return -1
}
