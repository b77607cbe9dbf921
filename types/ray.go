package types

import "github.com/jazwinn/go-bvh/internal/stats"

// Ray is an origin point plus a direction vector. The direction is not
// required to be unit-length.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay builds a ray from an origin and direction.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// Intersect returns the nearest non-negative parameter t such that
// Origin+t*Dir enters box, using the slab method. A miss is reported as a
// negative value. A ray whose origin lies strictly inside box returns 0.
// A ray with a near-zero direction on every axis is degenerate and always
// misses.
func (r Ray) Intersect(box AABB) float32 {
	stats.IncRayVsAABB()

	degenerate := true
	tMin := float32(0)
	tMax := float32(3.402823e+38) // math.MaxFloat32, avoids importing math here

	for axis := 0; axis < 3; axis++ {
		origin := r.Origin[axis]
		dir := r.Dir[axis]

		if dir > -floatCmpEpsilon && dir < floatCmpEpsilon {
			// Ray is parallel to this slab; it only misses if the
			// origin itself falls outside the slab bounds.
			if origin < box.Min[axis] || origin > box.Max[axis] {
				return -1
			}
			continue
		}
		degenerate = false

		invDir := 1.0 / dir
		t1 := (box.Min[axis] - origin) * invDir
		t2 := (box.Max[axis] - origin) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return -1
		}
	}

	if degenerate {
		// Zero-direction ray: unspecified by the geometric model, treated
		// as a guaranteed no-hit rather than a precondition violation.
		return -1
	}

	return tMin
}
