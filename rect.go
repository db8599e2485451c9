package xrect

import "math"

// A Rect is an axis-aligned rectangle described by its origin and its
// extent. The Y axis points up, so YMax is the rectangle's top edge
// and YMin its bottom one.
//
// A Rect with zero or negative W or H is degenerate but is valid
// input to every operation in this package. Operations that cannot
// produce a meaningful result for one report so instead of panicking.
type Rect[T Float] struct {
	X, Y, W, H T
}

// Rt is shorthand for Rect[T]{x, y, w, h}.
func Rt[T Float](x, y, w, h T) Rect[T] {
	return Rect[T]{x, y, w, h}
}

// FromMinMax returns the rectangle spanning from min to max.
func FromMinMax[T Float](min, max Point[T]) Rect[T] {
	return Rect[T]{min.X, min.Y, max.X - min.X, max.Y - min.Y}
}

// FromCenter returns the rectangle of the given size centered at
// center.
func FromCenter[T Float](center, size Point[T]) Rect[T] {
	half := size.Div(2)
	return FromMinMax(center.Sub(half), center.Add(half))
}

// XMax is X+W even when W is negative. Use Canon first if that
// matters. YMax likewise.

func (r Rect[T]) XMin() T { return r.X }
func (r Rect[T]) XMax() T { return r.X + r.W }
func (r Rect[T]) YMin() T { return r.Y }
func (r Rect[T]) YMax() T { return r.Y + r.H }

// Min returns r's origin corner.
func (r Rect[T]) Min() Point[T] {
	return Point[T]{r.X, r.Y}
}

// Max returns the corner diagonally opposite r's origin.
func (r Rect[T]) Max() Point[T] {
	return Point[T]{r.X + r.W, r.Y + r.H}
}

// Size returns r's extent as a point.
func (r Rect[T]) Size() Point[T] {
	return Point[T]{r.W, r.H}
}

// Center returns the point at the middle of r.
func (r Rect[T]) Center() Point[T] {
	return Point[T]{r.X + r.W/2, r.Y + r.H/2}
}

// Area returns r's signed area.
func (r Rect[T]) Area() T {
	return r.W * r.H
}

func (r Rect[T]) IsZero() bool {
	return r == Rect[T]{}
}

// Empty reports whether r contains no points.
func (r Rect[T]) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Canon returns the canonical version of r: a rectangle covering the
// same region but with non-negative extents.
func (r Rect[T]) Canon() Rect[T] {
	if r.W < 0 {
		r.X, r.W = r.X+r.W, -r.W
	}
	if r.H < 0 {
		r.Y, r.H = r.Y+r.H, -r.H
	}
	return r
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Sub returns r translated by -p.
func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	r.X -= p.X
	r.Y -= p.Y
	return r
}

// Resize returns r with its extent replaced and its origin unchanged.
func (r Rect[T]) Resize(size Point[T]) Rect[T] {
	r.W, r.H = size.X, size.Y
	return r
}

// CenterAt returns r moved so that its center is at p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	r.X = p.X - r.W/2
	r.Y = p.Y - r.H/2
	return r
}

// Inset returns r shrunk by n on every side. If either extent is
// smaller than 2n, that axis collapses to r's center instead of
// inverting.
func (r Rect[T]) Inset(n T) Rect[T] {
	if r.W < 2*n {
		r.X += r.W / 2
		r.W = 0
	} else {
		r.X += n
		r.W -= 2 * n
	}
	if r.H < 2*n {
		r.Y += r.H / 2
		r.H = 0
	} else {
		r.Y += n
		r.H -= 2 * n
	}
	return r
}

// Expand returns r grown by n on every side.
func (r Rect[T]) Expand(n T) Rect[T] {
	return Rect[T]{r.X - n, r.Y - n, r.W + 2*n, r.H + 2*n}
}

// Lerp returns the component-wise linear interpolation between r and
// s, with t clamped to [0, 1].
func (r Rect[T]) Lerp(s Rect[T], t T) Rect[T] {
	return r.LerpUnclamped(s, clamp01(t))
}

// LerpUnclamped is like Lerp except that it does not clamp t, so it
// extrapolates outside [0, 1].
func (r Rect[T]) LerpUnclamped(s Rect[T], t T) Rect[T] {
	return Rect[T]{
		lerp(r.X, s.X, t),
		lerp(r.Y, s.Y, t),
		lerp(r.W, s.W, t),
		lerp(r.H, s.H, t),
	}
}

// ContainsPoint reports whether p is inside r. Containment is
// half-open: the minimum edges are inside, the maximum edges are not.
func (r Rect[T]) ContainsPoint(p Point[T]) bool {
	return p.X >= r.XMin() && p.X < r.XMax() &&
		p.Y >= r.YMin() && p.Y < r.YMax()
}

// Contains reports whether every corner of s lies within r, with the
// boundary counting as inside. Contains(r) is therefore true for any
// canonical r, unlike corner-wise ContainsPoint checks.
func (r Rect[T]) Contains(s Rect[T]) bool {
	return s.XMin() >= r.XMin() && s.XMax() <= r.XMax() &&
		s.YMin() >= r.YMin() && s.YMax() <= r.YMax()
}

// Covers reports whether r contains s while tolerating shared edges:
// s may sit on r's boundary, or up to eps outside of it.
func (r Rect[T]) Covers(s Rect[T], eps T) bool {
	if s.XMin() < r.XMin()-eps {
		return false
	}
	if s.XMax() > r.XMax()+eps {
		return false
	}
	if s.YMin() < r.YMin()-eps {
		return false
	}
	return s.YMax() <= r.YMax()+eps
}

// CoversPoint is the point version of Covers.
func (r Rect[T]) CoversPoint(p Point[T], eps T) bool {
	return p.X >= r.XMin()-eps && p.X <= r.XMax()+eps &&
		p.Y >= r.YMin()-eps && p.Y <= r.YMax()+eps
}

// IsOnEdge reports whether p lies within eps of one of the four
// boundary lines of r. It is a line test, not a segment test: a point
// level with the top edge but far off to the side of the rectangle is
// still on the top edge's line.
func (r Rect[T]) IsOnEdge(p Point[T], eps T) bool {
	return absf(p.X-r.XMin()) <= eps || absf(p.X-r.XMax()) <= eps ||
		absf(p.Y-r.YMin()) <= eps || absf(p.Y-r.YMax()) <= eps
}

// EdgesAt returns the set of r's edges that p lies on, compared with
// magnitude-scaled approximate equality. The four checks are
// independent, so a corner yields two bits.
func (r Rect[T]) EdgesAt(p Point[T]) Edges {
	var e Edges
	if approx(p.X, r.XMin()) {
		e |= EdgeLeft
	}
	if approx(p.X, r.XMax()) {
		e |= EdgeRight
	}
	if approx(p.Y, r.YMax()) {
		e |= EdgeTop
	}
	if approx(p.Y, r.YMin()) {
		e |= EdgeBottom
	}
	return e
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect[T]) Union(s Rect[T]) Rect[T] {
	return FromMinMax(
		Pt(min(r.XMin(), s.XMin()), min(r.YMin(), s.YMin())),
		Pt(max(r.XMax(), s.XMax()), max(r.YMax(), s.YMax())),
	)
}

// Aspect returns the width-to-height ratio of r. The flag is false,
// and the ratio NaN, when r's height is not positive.
func (r Rect[T]) Aspect() (T, bool) {
	if r.H <= 0 {
		return T(math.NaN()), false
	}
	return r.W / r.H, true
}

// InViewport normalizes r into ref's local unit space, mapping ref
// itself onto {0, 0, 1, 1}. A ref with a non-positive extent cannot
// define a viewport; the unit rectangle and a false flag come back in
// that case.
func (r Rect[T]) InViewport(ref Rect[T]) (Rect[T], bool) {
	if ref.W <= 0 || ref.H <= 0 {
		return Rect[T]{0, 0, 1, 1}, false
	}
	return Rect[T]{
		(r.X - ref.X) / ref.W,
		(r.Y - ref.Y) / ref.H,
		r.W / ref.W,
		r.H / ref.H,
	}, true
}

// ApproxEq reports whether r and s differ by at most eps in every
// component. The components are checked independently, not as a
// distance.
func (r Rect[T]) ApproxEq(s Rect[T], eps T) bool {
	return absf(r.X-s.X) <= eps && absf(r.Y-s.Y) <= eps &&
		absf(r.W-s.W) <= eps && absf(r.H-s.H) <= eps
}
