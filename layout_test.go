package xrect_test

import (
	"testing"

	"deedles.dev/xrect"
	"github.com/stretchr/testify/require"
)

func TestTileEvenVertically(t *testing.T) {
	tiles := make([]xrect.Rect[float64], 4)
	xrect.TileEvenVertically(tiles, rt(0, 0, 10, 40))

	require.Equal(t, rt(0, 0, 10, 10), tiles[0])
	require.Equal(t, rt(0, 10, 10, 10), tiles[1])
	require.Equal(t, rt(0, 20, 10, 10), tiles[2])
	require.Equal(t, rt(0, 30, 10, 10), tiles[3])
}

func TestTileEvenHorizontally(t *testing.T) {
	tiles := make([]xrect.Rect[float64], 3)
	xrect.TileEvenHorizontally(tiles, rt(0, 0, 30, 10))

	require.Equal(t, rt(0, 0, 10, 10), tiles[0])
	require.Equal(t, rt(10, 0, 10, 10), tiles[1])
	require.Equal(t, rt(20, 0, 10, 10), tiles[2])
}

func TestTileRightThenUp(t *testing.T) {
	tiles := make([]xrect.Rect[float64], 2)
	xrect.TileRightThenUp(tiles, rt(0, 0, 10, 10))
	require.Equal(t, rt(0, 0, 5, 10), tiles[0])
	require.Equal(t, rt(5, 0, 5, 10), tiles[1])

	tiles = make([]xrect.Rect[float64], 3)
	xrect.TileRightThenUp(tiles, rt(0, 0, 10, 10))
	require.Equal(t, rt(0, 0, 5, 10), tiles[0])
	require.Equal(t, rt(5, 0, 5, 5), tiles[1])
	require.Equal(t, rt(5, 5, 5, 5), tiles[2])
}

func TestTileTwoThirdsSidebar(t *testing.T) {
	tiles := make([]xrect.Rect[float64], 3)
	xrect.TileTwoThirdsSidebar(tiles, rt(0, 0, 30, 20))

	require.Equal(t, rt(0, 0, 20, 20), tiles[0])
	require.Equal(t, rt(20, 0, 10, 10), tiles[1])
	require.Equal(t, rt(20, 10, 10, 10), tiles[2])
}

func TestTileGrid(t *testing.T) {
	tiles := make([]xrect.Rect[float64], 5)
	xrect.TileGrid(tiles, rt(0, 0, 30, 20), 3)

	require.Equal(t, rt(0, 0, 10, 10), tiles[0])
	require.Equal(t, rt(10, 0, 10, 10), tiles[1])
	require.Equal(t, rt(20, 0, 10, 10), tiles[2])

	// The final partial row splits between the remaining tiles.
	require.Equal(t, rt(0, 10, 15, 10), tiles[3])
	require.Equal(t, rt(15, 10, 15, 10), tiles[4])
}

func TestVerticalStack(t *testing.T) {
	var got []xrect.Rect[float64]
	for r := range xrect.VerticalStack(rt(0, 0, 10, 5)) {
		got = append(got, r)
		if len(got) == 3 {
			break
		}
	}

	require.Equal(t, []xrect.Rect[float64]{
		rt(0, 0, 10, 5),
		rt(0, 5, 10, 5),
		rt(0, 10, 10, 5),
	}, got)
}

func TestArrangeVerticalStack(t *testing.T) {
	rects := []xrect.Rect[float64]{
		rt(0, 0, 10, 5),
		rt(3, 9, 20, 7),
		rt(0, 0, 5, 4),
	}
	xrect.ArrangeVerticalStack(rects)

	require.Equal(t, rt(0, 0, 20, 5), rects[0])
	require.Equal(t, rt(0, 5, 20, 7), rects[1])
	require.Equal(t, rt(0, 12, 20, 4), rects[2])
}

func TestAlign(t *testing.T) {
	outer := rt(0, 0, 100, 100)
	inner := rt(0, 0, 10, 20)

	require.Equal(t, rt(45, 40, 10, 20), xrect.Align(outer, inner, xrect.EdgeNone))
	require.Equal(t, rt(0, 40, 10, 20), xrect.Align(outer, inner, xrect.EdgeLeft))
	require.Equal(t, rt(45, 80, 10, 20), xrect.Align(outer, inner, xrect.EdgeTop))
	require.Equal(t, rt(90, 0, 10, 20), xrect.Align(outer, inner, xrect.EdgeRight|xrect.EdgeBottom))
	require.Equal(t, rt(45, 0, 10, 100), xrect.Align(outer, inner, xrect.EdgeTop|xrect.EdgeBottom))
	require.Equal(t, rt(0, 40, 100, 20), xrect.Align(outer, inner, xrect.EdgeLeft|xrect.EdgeRight))
}
