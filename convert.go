package xrect

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"
)

// ImageRect returns the image.Rectangle covering r, flooring the
// minimum corner and ceiling the maximum one.
func (r Rect[T]) ImageRect() image.Rectangle {
	r = r.Canon()
	return image.Rect(
		int(math.Floor(float64(r.XMin()))),
		int(math.Floor(float64(r.YMin()))),
		int(math.Ceil(float64(r.XMax()))),
		int(math.Ceil(float64(r.YMax()))),
	)
}

// FromImageRect returns the Rect equivalent to ir.
func FromImageRect[T Float](ir image.Rectangle) Rect[T] {
	return Rect[T]{T(ir.Min.X), T(ir.Min.Y), T(ir.Dx()), T(ir.Dy())}
}

// Fixed returns the 26.6 fixed-point approximation of r.
func (r Rect[T]) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixedPoint(r.Min()),
		Max: fixedPoint(r.Max()),
	}
}

// FromFixed returns the Rect equivalent to fr.
func FromFixed[T Float](fr fixed.Rectangle26_6) Rect[T] {
	lo := Pt(T(fr.Min.X)/64, T(fr.Min.Y)/64)
	hi := Pt(T(fr.Max.X)/64, T(fr.Max.Y)/64)
	return FromMinMax(lo, hi)
}

func fixedPoint[T Float](p Point[T]) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(p.X) * 64)),
		Y: fixed.Int26_6(math.Round(float64(p.Y) * 64)),
	}
}
