package xrect

// Adjustment describes the outcome of ConstrainedIntersect.
type Adjustment uint8

const (
	// AdjustmentNone means the plain intersection already met the
	// minimum size constraints and came back unchanged.
	AdjustmentNone Adjustment = iota

	// AdjustmentMet means the intersection was adjusted and now meets
	// the constraints.
	AdjustmentMet

	// AdjustmentFailed means the intersection was adjusted but the
	// constraints still do not hold. This happens when bounds itself
	// is smaller than the requested minimum size.
	AdjustmentFailed
)

func (a Adjustment) String() string {
	switch a {
	case AdjustmentNone:
		return "none"
	case AdjustmentMet:
		return "adjusted"
	case AdjustmentFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ConstrainedIntersect returns the sub-rectangle of bounds that best
// approximates the intersection of r and bounds while keeping at
// least the given minimum extents. UI code uses it to stop a panel
// dragged toward the edge of its container from losing its usable
// overlap.
//
// When r and bounds are disjoint, the result hugs the bounds edge
// nearest to r at exactly the minimum extent on each separated axis.
// That rectangle can stick out past the opposite edge of bounds if
// bounds is smaller than the minimum; it is not clamped further.
//
// Callers must check the returned Adjustment: AdjustmentFailed means
// the minima could not be met because bounds is too small.
func (r Rect[T]) ConstrainedIntersect(bounds Rect[T], minW, minH T) (Rect[T], Adjustment) {
	isect, ok := r.Intersect(bounds)
	if !ok {
		return r.pinToBounds(bounds, minW, minH), AdjustmentMet
	}
	if isect.W >= minW && isect.H >= minH {
		return isect, AdjustmentNone
	}

	xmin, xmax := constrainAxis(isect.XMin(), isect.XMax(), bounds.XMin(), bounds.XMax(), minW)
	ymin, ymax := constrainAxis(isect.YMin(), isect.YMax(), bounds.YMin(), bounds.YMax(), minH)

	out := FromMinMax(Pt(xmin, ymin), Pt(xmax, ymax))
	if out.W >= minW && out.H >= minH {
		return out, AdjustmentMet
	}
	return out, AdjustmentFailed
}

// pinToBounds handles the disjoint case: r is forced against the
// nearest violated edge of bounds at the minimum extent on that axis.
// An axis on which r and bounds already overlap keeps r's placement,
// whatever its extent.
func (r Rect[T]) pinToBounds(bounds Rect[T], minW, minH T) Rect[T] {
	out := r
	switch {
	case out.XMin() >= bounds.XMax():
		out.X = bounds.XMax() - minW
		out.W = minW
	case out.XMax() <= bounds.XMin():
		out.X = bounds.XMin()
		out.W = minW
	}
	switch {
	case out.YMin() >= bounds.YMax():
		out.Y = bounds.YMax() - minH
		out.H = minH
	case out.YMax() <= bounds.YMin():
		out.Y = bounds.YMin()
		out.H = minH
	}
	return out
}

// constrainAxis widens the span [lo, hi] to at least minSize within
// the bounds span [blo, bhi]. A span already sitting on a bounds edge
// grows away from that edge, even past the opposite one; a span
// floating between the edges grows toward the nearer one first,
// clamped to the bounds, and pushes its far side only if the bounds
// edge cut the growth short.
func constrainAxis[T Float](lo, hi, blo, bhi, minSize T) (T, T) {
	if hi-lo >= minSize {
		return lo, hi
	}

	switch {
	case approx(lo, blo):
		hi = blo + minSize
	case approx(hi, bhi):
		lo = bhi - minSize
	case lo-blo < bhi-hi:
		lo = max(blo, hi-minSize)
		if hi-lo < minSize {
			hi = min(bhi, lo+minSize)
		}
	default:
		hi = min(bhi, lo+minSize)
		if hi-lo < minSize {
			lo = max(blo, hi-minSize)
		}
	}
	return lo, hi
}
