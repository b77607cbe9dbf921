package types

import "github.com/jazwinn/go-bvh/internal/stats"

// SideResult classifies an AABB against a Frustum.
type SideResult int

const (
	// Outside means the AABB lies entirely outside at least one plane.
	Outside SideResult = iota
	// Inside means the AABB lies entirely inside every plane.
	Inside
	// Intersecting means the AABB straddles at least one plane while not
	// being fully outside any of them.
	Intersecting
)

func (s SideResult) String() string {
	switch s {
	case Outside:
		return "OUTSIDE"
	case Inside:
		return "INSIDE"
	case Intersecting:
		return "INTERSECTING"
	default:
		return "UNKNOWN"
	}
}

// Frustum is six inward-pointing planes, each stored as (nx, ny, nz, d)
// such that a point p is on the inner side of the plane iff
// n.Dot(p)+d >= 0.
type Frustum struct {
	Planes [6]Vec4
}

// FrustumFromMatrix extracts the six clip planes of a view-projection
// matrix (Gribb-Hartmann plane extraction), normalizing each plane so that
// distances are measured in world units.
func FrustumFromMatrix(viewProj Mat4) Frustum {
	row := func(i int) Vec4 {
		return Vec4{viewProj[i*4+0], viewProj[i*4+1], viewProj[i*4+2], viewProj[i*4+3]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	add := func(a, b Vec4) Vec4 { return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]} }
	sub := func(a, b Vec4) Vec4 { return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]} }

	f := Frustum{Planes: [6]Vec4{
		add(r3, r0), // left
		sub(r3, r0), // right
		add(r3, r1), // bottom
		sub(r3, r1), // top
		add(r3, r2), // near
		sub(r3, r2), // far
	}}
	for i, p := range f.Planes {
		f.Planes[i] = normalizePlane(p)
	}
	return f
}

func normalizePlane(p Vec4) Vec4 {
	n := Vec3{p[0], p[1], p[2]}
	l := n.Len()
	if l < floatCmpEpsilon {
		return p
	}
	inv := 1 / l
	return Vec4{p[0] * inv, p[1] * inv, p[2] * inv, p[3] * inv}
}

// Classify tests box against every plane using the p/n-vertex trick: per
// plane, the positive vertex (the corner farthest along the plane normal)
// determines OUTSIDE when its distance is negative, and the negative
// vertex (the opposite corner) determines INTERSECTING when its distance
// is negative but the positive vertex wasn't. Increments the process-wide
// frustum-vs-AABB counter exactly once per call.
func (f Frustum) Classify(box AABB) SideResult {
	stats.IncFrustumVsAABB()

	result := Inside
	for _, plane := range f.Planes {
		n := Vec3{plane[0], plane[1], plane[2]}
		d := plane[3]

		pVertex, nVertex := box.Min, box.Max
		if n[0] >= 0 {
			pVertex[0], nVertex[0] = box.Max[0], box.Min[0]
		}
		if n[1] >= 0 {
			pVertex[1], nVertex[1] = box.Max[1], box.Min[1]
		}
		if n[2] >= 0 {
			pVertex[2], nVertex[2] = box.Max[2], box.Min[2]
		}

		if n.Dot(pVertex)+d < 0 {
			return Outside
		}
		if n.Dot(nVertex)+d < 0 {
			result = Intersecting
		}
	}
	return result
}
