package xrect

import "math"

// A Point is a two dimensional point.
type Point[T Float] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Float](x, y T) Point[T] {
	return Point[T]{x, y}
}

// Add returns the point p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.X + q.X, p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{p.X * s, p.Y * s}
}

// Div returns p scaled by 1/s.
func (p Point[T]) Div(s T) Point[T] {
	return Point[T]{p.X / s, p.Y / s}
}

// Lerp returns the linear interpolation between p and q at t. t is
// not clamped.
func (p Point[T]) Lerp(q Point[T], t T) Point[T] {
	return Point[T]{lerp(p.X, q.X, t), lerp(p.Y, q.Y, t)}
}

func (p Point[T]) IsZero() bool {
	return p == Point[T]{}
}

// A Point3 is a point in a 2D plane embedded in 3D space. The
// plane-embedded operations on Rect carry its Z coordinate through
// unchanged or interpolated rather than dropping it.
type Point3[T Float] struct {
	X, Y, Z T
}

// Pt3 is shorthand for Point3[T]{x, y, z}.
func Pt3[T Float](x, y, z T) Point3[T] {
	return Point3[T]{x, y, z}
}

// XY returns the planar part of p.
func (p Point3[T]) XY() Point[T] {
	return Point[T]{p.X, p.Y}
}

// Add returns the point p+q.
func (p Point3[T]) Add(q Point3[T]) Point3[T] {
	return Point3[T]{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns the vector p-q.
func (p Point3[T]) Sub(q Point3[T]) Point3[T] {
	return Point3[T]{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Mul returns p scaled by s.
func (p Point3[T]) Mul(s T) Point3[T] {
	return Point3[T]{p.X * s, p.Y * s, p.Z * s}
}

// Len returns the Euclidean length of p treated as a vector.
func (p Point3[T]) Len() T {
	return T(math.Sqrt(float64(p.X*p.X + p.Y*p.Y + p.Z*p.Z)))
}
