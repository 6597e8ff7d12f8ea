package kdtree

import "math"

// AABB is an axis-aligned bounding box: min[i] <= max[i] on every axis for
// a well-formed box. It exposes exactly what the builder and traversal need:
// union, surface area, the slab ray test, and per-axis clipping for sub-box
// computation during the SAH sweep.
type AABB struct {
	Min, Max Vec3
}

// NewAABB builds an AABB from explicit min/max corners. It does not
// validate min <= max — an inverted box is a caller contract violation
// and is accepted as-given rather than rejected.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Union returns the smallest AABB containing both a and b.
func Union(a, b AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(a.Min.X, b.Min.X),
			Y: math.Min(a.Min.Y, b.Min.Y),
			Z: math.Min(a.Min.Z, b.Min.Z),
		},
		Max: Vec3{
			X: math.Max(a.Max.X, b.Max.X),
			Y: math.Max(a.Max.Y, b.Max.Y),
			Z: math.Max(a.Max.Z, b.Max.Z),
		},
	}
}

// Extent returns the box's length along the given axis. A degenerate
// (flat) box has zero extent on that axis, which is legal.
func (b AABB) Extent(axis Axis) float64 {
	return b.Max.Get(axis) - b.Min.Get(axis)
}

// SurfaceArea returns 2*(dx*dy + dy*dz + dx*dz). Non-negative for any
// well-formed box; a flat box on one axis still has positive area from
// the other two faces.
func (b AABB) SurfaceArea() float64 {
	dx := b.Extent(AxisX)
	dy := b.Extent(AxisY)
	dz := b.Extent(AxisZ)
	return 2.0 * (dx*dy + dy*dz + dz*dx)
}

// ClipToAxis returns a copy of b with its extent on axis narrowed to
// [lo, hi] intersected with b's existing extent on that axis. Used by the
// builder to derive a node's left/right sub-boxes at a candidate split
// plane without touching the other two axes.
func (b AABB) ClipToAxis(axis Axis, lo, hi float64) AABB {
	newMin := b.Min
	newMax := b.Max
	if lo > newMin.Get(axis) {
		newMin = newMin.With(axis, lo)
	}
	if hi < newMax.Get(axis) {
		newMax = newMax.With(axis, hi)
	}
	return AABB{Min: newMin, Max: newMax}
}

// ClipMax returns b with its Max[axis] lowered to p (the left child's
// sub-box when splitting at p on axis).
func (b AABB) ClipMax(axis Axis, p float64) AABB {
	return b.ClipToAxis(axis, math.Inf(-1), p)
}

// ClipMin returns b with its Min[axis] raised to p (the right child's
// sub-box when splitting at p on axis).
func (b AABB) ClipMin(axis Axis, p float64) AABB {
	return b.ClipToAxis(axis, p, math.Inf(1))
}

// Contains reports whether p lies within b on every axis, inclusive.
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectRay runs the slab method against a ray given as (origin,
// invDirection), invDirection being the componentwise reciprocal of the
// ray direction precomputed once by the caller (tree.go does this per
// query, not per node). A zero direction component yields an infinite
// invDirection component, which this slab test must tolerate without
// producing NaN. Rather than letting `0 * Inf = NaN` propagate, a
// zero-direction axis is handled with an explicit "origin inside slab on
// this axis" guard.
func (b AABB) IntersectRay(origin, invDir Vec3) bool {
	hit, _, _ := b.intersectRayInterval(origin, invDir)
	return hit
}

// intersectRayInterval is IntersectRay's internal twin: it also returns the
// [tmin, tmax] parametric interval over which the ray is inside the box,
// which Tree.Intersect needs to decide whether a split plane is crossed
// within the current node's segment.
func (b AABB) intersectRayInterval(origin, invDir Vec3) (hit bool, tmin, tmax float64) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for _, axis := range axes {
		lo, hi := b.Min.Get(axis), b.Max.Get(axis)
		o, id := origin.Get(axis), invDir.Get(axis)

		if math.IsNaN(o) || math.IsNaN(id) {
			return false, 0, 0
		}

		var t0, t1 float64
		if math.IsInf(id, 0) {
			if o < lo || o > hi {
				return false, 0, 0
			}
			t0, t1 = math.Inf(-1), math.Inf(1)
		} else {
			t0 = (lo - o) * id
			t1 = (hi - o) * id
			if id < 0 {
				t0, t1 = t1, t0
			}
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false, 0, 0
		}
	}

	if tMax < math.Max(tMin, 0) {
		return false, 0, 0
	}
	return true, tMin, tMax
}

var axes = [3]Axis{AxisX, AxisY, AxisZ}
