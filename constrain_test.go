package xrect_test

import (
	"testing"

	"deedles.dev/xrect"
	"github.com/stretchr/testify/require"
)

func TestConstrainedIntersectAlreadyMet(t *testing.T) {
	// r covers bounds, so the intersection is bounds itself and no
	// adjustment happens.
	got, adj := rt(0, 0, 20, 20).ConstrainedIntersect(rt(0, 0, 10, 10), 5, 5)
	require.Equal(t, xrect.AdjustmentNone, adj)
	require.Equal(t, rt(0, 0, 10, 10), got)

	got, adj = rt(2, 2, 6, 6).ConstrainedIntersect(rt(0, 0, 10, 10), 5, 5)
	require.Equal(t, xrect.AdjustmentNone, adj)
	require.Equal(t, rt(2, 2, 6, 6), got)
}

func TestConstrainedIntersectDisjoint(t *testing.T) {
	bounds := rt(0, 0, 10, 10)

	// Past the right edge: pinned to it at the minimum width. The
	// overlapping vertical axis keeps r's placement.
	got, adj := rt(100, 0, 10, 10).ConstrainedIntersect(bounds, 4, 4)
	require.Equal(t, xrect.AdjustmentMet, adj)
	require.Equal(t, rt(6, 0, 4, 10), got)

	// Past the left edge.
	got, adj = rt(-50, 0, 10, 10).ConstrainedIntersect(bounds, 4, 4)
	require.Equal(t, xrect.AdjustmentMet, adj)
	require.Equal(t, rt(0, 0, 4, 10), got)

	// Past the top edge.
	got, adj = rt(0, 100, 10, 10).ConstrainedIntersect(bounds, 4, 4)
	require.Equal(t, xrect.AdjustmentMet, adj)
	require.Equal(t, rt(0, 6, 10, 4), got)

	// Past the bottom edge.
	got, adj = rt(0, -50, 10, 10).ConstrainedIntersect(bounds, 4, 4)
	require.Equal(t, xrect.AdjustmentMet, adj)
	require.Equal(t, rt(0, 0, 10, 4), got)

	// Diagonally past a corner: both axes pinned.
	got, adj = rt(100, 100, 10, 10).ConstrainedIntersect(bounds, 4, 4)
	require.Equal(t, xrect.AdjustmentMet, adj)
	require.Equal(t, rt(6, 6, 4, 4), got)
}

func TestConstrainedIntersectGrowFromEdge(t *testing.T) {
	bounds := rt(0, 0, 10, 10)

	// The intersection sits on bounds' left edge, so it grows
	// rightward to the minimum width.
	got, adj := rt(-5, 0, 8, 10).ConstrainedIntersect(bounds, 5, 5)
	require.Equal(t, xrect.AdjustmentMet, adj)
	require.Equal(t, rt(0, 0, 5, 10), got)

	// On bounds' right edge: grows leftward.
	got, adj = rt(8, 0, 10, 10).ConstrainedIntersect(bounds, 5, 5)
	require.Equal(t, xrect.AdjustmentMet, adj)
	require.Equal(t, rt(5, 0, 5, 10), got)

	// On bounds' bottom edge: grows upward.
	got, adj = rt(0, -5, 10, 8).ConstrainedIntersect(bounds, 5, 5)
	require.Equal(t, xrect.AdjustmentMet, adj)
	require.Equal(t, rt(0, 0, 10, 5), got)
}

func TestConstrainedIntersectGrowFloating(t *testing.T) {
	bounds := rt(0, 0, 10, 10)

	// Too narrow, floating inside bounds, nearer the left edge:
	// grows toward it.
	got, adj := rt(2, 0, 3, 10).ConstrainedIntersect(bounds, 5, 5)
	require.Equal(t, xrect.AdjustmentMet, adj)
	require.Equal(t, rt(0, 0, 5, 10), got)

	// Nearer the right edge: grows toward it instead.
	got, adj = rt(6, 0, 3, 10).ConstrainedIntersect(bounds, 5, 5)
	require.Equal(t, xrect.AdjustmentMet, adj)
	require.Equal(t, rt(5, 0, 5, 10), got)

	// Growth cut short by the near edge pushes the far side.
	got, adj = rt(1, 0, 2, 10).ConstrainedIntersect(bounds, 8, 5)
	require.Equal(t, xrect.AdjustmentMet, adj)
	require.Equal(t, rt(0, 0, 8, 10), got)
}

func TestConstrainedIntersectImpossibleBounds(t *testing.T) {
	// bounds is narrower than the minimum width, so the width
	// constraint cannot be met no matter the adjustment.
	got, adj := rt(1, 0, 1, 3).ConstrainedIntersect(rt(0, 0, 3, 3), 5, 5)
	require.Equal(t, xrect.AdjustmentFailed, adj)
	require.Equal(t, 3.0, got.W, "width pinned to the whole of bounds")
	require.Less(t, got.W, 5.0)
}

func TestAdjustmentString(t *testing.T) {
	require.Equal(t, "none", xrect.AdjustmentNone.String())
	require.Equal(t, "adjusted", xrect.AdjustmentMet.String())
	require.Equal(t, "failed", xrect.AdjustmentFailed.String())
	require.Equal(t, "unknown", xrect.Adjustment(42).String())
}
