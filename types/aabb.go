package types

// AABB is an axis-aligned bounding box with Min <= Max componentwise.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB builds an AABB from its min and max corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// AABBFromPoint returns a degenerate, zero-volume AABB enclosing a single point.
func AABBFromPoint(p Vec3) AABB {
	return AABB{Min: p, Max: p}
}

// Center returns the midpoint of the box.
func (a AABB) Center() Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Extents returns the half-size of the box along each axis.
func (a AABB) Extents() Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}

// Volume returns the product of the box's side lengths.
func (a AABB) Volume() float32 {
	d := a.Max.Sub(a.Min)
	return d[0] * d[1] * d[2]
}

// SurfaceArea returns the total surface area of the box.
func (a AABB) SurfaceArea() float32 {
	d := a.Max.Sub(a.Min)
	return 2 * (d[0]*d[1] + d[1]*d[2] + d[0]*d[2])
}

// LongestAxis returns the index (0=x, 1=y, 2=z) of the box's longest side.
func (a AABB) LongestAxis() int {
	d := a.Max.Sub(a.Min)
	axis := 0
	if d[1] > d[axis] {
		axis = 1
	}
	if d[2] > d[axis] {
		axis = 2
	}
	return axis
}

// Union returns the tight AABB enclosing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: MinVec3(a.Min, b.Min), Max: MaxVec3(a.Max, b.Max)}
}

// Contains reports whether a fully encloses b.
func (a AABB) Contains(b AABB) bool {
	return a.Min[0] <= b.Min[0] && a.Min[1] <= b.Min[1] && a.Min[2] <= b.Min[2] &&
		a.Max[0] >= b.Max[0] && a.Max[1] >= b.Max[1] && a.Max[2] >= b.Max[2]
}

// Corners returns the box's eight corners.
func (a AABB) Corners() [8]Vec3 {
	return [8]Vec3{
		{a.Min[0], a.Min[1], a.Min[2]},
		{a.Max[0], a.Min[1], a.Min[2]},
		{a.Min[0], a.Max[1], a.Min[2]},
		{a.Max[0], a.Max[1], a.Min[2]},
		{a.Min[0], a.Min[1], a.Max[2]},
		{a.Max[0], a.Min[1], a.Max[2]},
		{a.Min[0], a.Max[1], a.Max[2]},
		{a.Max[0], a.Max[1], a.Max[2]},
	}
}

// Transform returns the AABB of the eight corners after being transformed
// by m.
func (a AABB) Transform(m Mat4) AABB {
	corners := a.Corners()
	min := m.MulPoint3(corners[0])
	max := min
	for _, c := range corners[1:] {
		p := m.MulPoint3(c)
		min = MinVec3(min, p)
		max = MaxVec3(max, p)
	}
	return AABB{Min: min, Max: max}
}
