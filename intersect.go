package xrect

import "math"

// boxDepth is the Z extent given to a Rect when an operation needs to
// treat it as a 3D box lying in a plane.
const boxDepth = 0.1

// Overlaps reports whether r and s share any interior area. Touching
// edges do not count.
func (r Rect[T]) Overlaps(s Rect[T]) bool {
	return r.XMin() < s.XMax() && s.XMin() < r.XMax() &&
		r.YMin() < s.YMax() && s.YMin() < r.YMax()
}

// Intersect returns the intersection of r and s. When one rectangle
// covers the other, the covered rectangle comes back verbatim, which
// keeps full containment free of floating-point error; otherwise the
// intersection is computed per axis. The flag is false, and the
// rectangle zero, when r and s are disjoint.
//
// Intersect is symmetric: r.Intersect(s) and s.Intersect(r) report
// the same rectangle.
func (r Rect[T]) Intersect(s Rect[T]) (Rect[T], bool) {
	switch {
	case r.Covers(s, DefaultEpsilon):
		return s, true
	case s.Covers(r, DefaultEpsilon):
		return r, true
	case r.Overlaps(s):
		return FromMinMax(
			Pt(max(r.XMin(), s.XMin()), max(r.YMin(), s.YMin())),
			Pt(min(r.XMax(), s.XMax()), min(r.YMax(), s.YMax())),
		), true
	default:
		return Rect[T]{}, false
	}
}

// ClampPoint clamps p to r, preserving p's Z coordinate. The flag
// reports whether p moved: a point already inside r's footprint comes
// back untouched. A point outside it is replaced with the closest
// point on the surface of the thin box that r spans around p's plane.
func (r Rect[T]) ClampPoint(p Point3[T]) (Point3[T], bool) {
	if r.ContainsPoint(p.XY()) {
		return p, false
	}
	return r.box3(p.Z).closestPoint(p), true
}

// ClipLine clips the segment from p1 to p2 against r, treating r as a
// box of near-zero depth around the z=0 plane. Endpoints inside r
// stay where they are; an endpoint outside r moves to the point where
// the segment enters the box, with its Z interpolated along the
// segment. The flag is false when the segment misses r entirely.
func (r Rect[T]) ClipLine(p1, p2 Point3[T]) (Point3[T], Point3[T], bool) {
	in1 := r.ContainsPoint(p1.XY())
	in2 := r.ContainsPoint(p2.XY())
	if in1 && in2 {
		return p1, p2, true
	}

	b := r.box3(0)
	ok := in1 || in2
	if !in1 {
		if q, hit := b.clipEndpoint(p1, p2); hit {
			p1 = q
			ok = true
		}
	}
	if !in2 {
		if q, hit := b.clipEndpoint(p2, p1); hit {
			p2 = q
			ok = true
		}
	}
	return p1, p2, ok
}

// box3 is the thin 3D box that the plane-embedded operations treat a
// Rect as.
type box3[T Float] struct {
	min, max Point3[T]
}

func (r Rect[T]) box3(centerZ T) box3[T] {
	return box3[T]{
		min: Point3[T]{r.XMin(), r.YMin(), centerZ - boxDepth/2},
		max: Point3[T]{r.XMax(), r.YMax(), centerZ + boxDepth/2},
	}
}

// closestPoint returns the point on or in b closest to p.
func (b box3[T]) closestPoint(p Point3[T]) Point3[T] {
	return Point3[T]{
		clampv(p.X, b.min.X, b.max.X),
		clampv(p.Y, b.min.Y, b.max.Y),
		clampv(p.Z, b.min.Z, b.max.Z),
	}
}

// clipEndpoint casts a ray from the outside endpoint toward the other
// endpoint of the segment and replaces it with the hit point if b is
// hit within the segment's length.
func (b box3[T]) clipEndpoint(from, to Point3[T]) (Point3[T], bool) {
	d := to.Sub(from)
	length := d.Len()
	if length == 0 {
		return from, false
	}
	dir := d.Mul(1 / length)

	dist, hit := b.intersectRay(from, dir)
	if !hit || dist > length {
		return from, false
	}
	return from.Add(dir.Mul(dist)), true
}

// intersectRay intersects the ray from origin along the unit vector
// dir against b using the slab method, reporting the distance along
// the ray to the entry point. A ray starting inside b reports zero.
func (b box3[T]) intersectRay(origin, dir Point3[T]) (T, bool) {
	tmin := T(math.Inf(-1))
	tmax := T(math.Inf(1))

	o := [3]T{origin.X, origin.Y, origin.Z}
	d := [3]T{dir.X, dir.Y, dir.Z}
	lo := [3]T{b.min.X, b.min.Y, b.min.Z}
	hi := [3]T{b.max.X, b.max.Y, b.max.Z}

	for i := range 3 {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}

		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	return max(tmin, 0), true
}
