package xrect

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally.
func hsplit[T Float](r Rect[T], w T) (left, right Rect[T]) {
	left = r.Resize(Pt(w, r.H))
	right = r.Resize(Pt(r.W-w, r.H)).Add(Pt(w, 0))
	return left, right
}

func hsplitHalf[T Float](r Rect[T]) (left, right Rect[T]) {
	return hsplit(r, r.W/2)
}

// vsplit splits a rectangle into two rectangles arranged vertically.
// With Y pointing up, the first is the bottom one.
func vsplit[T Float](r Rect[T], h T) (bottom, top Rect[T]) {
	bottom = r.Resize(Pt(r.W, h))
	top = r.Resize(Pt(r.W, r.H-h)).Add(Pt(0, h))
	return bottom, top
}

func vsplitHalf[T Float](r Rect[T]) (bottom, top Rect[T]) {
	return vsplit(r, r.H/2)
}

// TileRightThenUp arranges and resizes the elements of tiles in order
// to split r into a series of rectangles that recursively split each
// remaining section halfway to the right and then upwards. In other
// words,
//
//	tiles := make([]xrect.Rect[float64], 4)
//	xrect.TileRightThenUp(tiles, r)
//
// will produce
//
//	------------
//	|    |  |  |
//	|    -------
//	|    |     |
//	------------
func TileRightThenUp[T Float](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledRightThenUp(len(tiles), r))
}

// TiledRightThenUp is the same as [TileRightThenUp] but yields the
// successive tiles from an iterator instead of inserting them into a
// slice.
func TiledRightThenUp[T Float](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		split, next := hsplitHalf[T], vsplitHalf[T]

		rem := r
		for range numtiles - 1 {
			var c Rect[T]
			c, rem = split(rem)
			if !yield(c) {
				return
			}
			split, next = next, split
		}

		yield(rem)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result is a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split of the remaining space.
func TileTwoThirdsSidebar[T Float](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[T Float](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		first, rem := hsplit(r, 2*r.W/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result is a series of rectangles that comprise an even,
// vertical splitting of r, from the bottom up. In other words,
//
//	tiles := make([]xrect.Rect[float64], 3)
//	xrect.TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T Float](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T Float](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		step := Pt(0, r.H/T(numtiles))
		c, _ := vsplit(r, step.Y)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(step)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result is a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]xrect.Rect[float64], 3)
//	xrect.TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[T Float](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally[T Float](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		step := Pt(r.W/T(numtiles), 0)
		c, _ := hsplit(r, step.X)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(step)
		}
	}
}

// TileGrid arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. Each
// full row is split evenly into cols columns; a final partial row is
// split evenly between the tiles remaining for it.
func TileGrid[T Float](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledGrid(len(tiles), r, cols))
}

// TiledGrid is the same as [TileGrid] except that it yields the tiles
// from an iterator.
func TiledGrid[T Float](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}

		for row := range TiledEvenVertically(numrows, r) {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted upwards by its height
// repeatedly, thus producing an infinite vertical stack of rectangles
// above the first.
func VerticalStack[T Float](first Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		shift := Pt(0, first.Canon().H)
		for {
			if !yield(first) {
				return
			}
			first = first.Add(shift)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects on
// top of the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
func ArrangeVerticalStack[T Float](rects []Rect[T]) {
	if len(rects) <= 1 {
		return
	}

	prev := rects[0].Canon()
	for _, rect := range rects {
		if rect.W > prev.W {
			prev.W = rect.W
		}
	}
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		rects[i] = Rect[T]{prev.X, prev.YMax(), prev.W, rects[i].H}
		prev = rects[i]
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as necessary
// if opposite edges are specified.
func Align[T Float](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = inner.CenterAt(outer.Center())
	switch {
	case edges&EdgeTop != 0:
		inner.Y = outer.YMax() - inner.H
		if edges&EdgeBottom != 0 {
			inner.Y = outer.Y
			inner.H = outer.H
		}
	case edges&EdgeBottom != 0:
		inner.Y = outer.Y
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.X = outer.X
		if edges&EdgeRight != 0 {
			inner.W = outer.W
		}
	case edges&EdgeRight != 0:
		inner.X = outer.XMax() - inner.W
	}

	return inner
}

func insertTilesFromSeq[T Float](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
