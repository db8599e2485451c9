// Package xrect provides utilities for manipulating axis-aligned
// rectangular geometry in UI layout code.
//
// It is patterned after image.Rectangle and image.Point, but operates
// on floating-point rectangles represented as an origin plus an
// extent, the way game-engine GUI systems describe panels. The Y axis
// points up: a rectangle's top edge is its maximum Y.
//
// Everything in this package is a pure function over value types.
// There is no shared state, so all of it is safe for concurrent use.
package xrect

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Float is a constraint for the scalar types that xrect types and
// functions can handle.
type Float interface {
	constraints.Float
}

// DefaultEpsilon is a reasonable tolerance for Covers, IsOnEdge, and
// ApproxEq when the caller has no better one.
const DefaultEpsilon = 1e-4

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	parts := make([]string, 0, 4)
	if e&EdgeTop != 0 {
		parts = append(parts, "top")
	}
	if e&EdgeBottom != 0 {
		parts = append(parts, "bottom")
	}
	if e&EdgeLeft != 0 {
		parts = append(parts, "left")
	}
	if e&EdgeRight != 0 {
		parts = append(parts, "right")
	}
	return strings.Join(parts, "|")
}

func lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}

func clamp01[T Float](t T) T {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

func clampv[T Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

func absf[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// approx is engine-style approximate equality: the tolerance scales
// with the magnitude of the operands so that large coordinates still
// compare equal across a rounding error.
func approx[T Float](a, b T) bool {
	tol := 1e-6 * max(absf(a), absf(b))
	return absf(b-a) <= max(tol, T(1e-30))
}
