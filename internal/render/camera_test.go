package render

import (
	"math"
	"testing"

	"sparse-life/pkg/life"
)

func TestScreenCellRoundTrip(t *testing.T) {
	c := NewCamera(16)
	c.Center(640, 480)

	for _, p := range []life.Point{{X: 0, Y: 0}, {X: 5, Y: -3}, {X: -20, Y: 17}} {
		sx, sy := c.ToScreen(p)
		// Probe inside the cell, not on its boundary.
		got := c.CellAt(sx+1, sy+1)
		if got != p {
			t.Fatalf("round trip of %v through screen space gave %v", p, got)
		}
	}
}

func TestCenterPutsOriginMidScreen(t *testing.T) {
	c := NewCamera(16)
	c.Center(640, 480)

	if got := c.CellAt(320, 240); got != (life.Point{X: 0, Y: 0}) {
		t.Fatalf("screen centre maps to %v, expected the origin", got)
	}
}

func TestPanFollowsCursor(t *testing.T) {
	c := NewCamera(8)
	before := c.CellAt(100, 100)

	c.Pan(3*c.Cell, -2*c.Cell)
	after := c.CellAt(100, 100)

	if after.X != before.X-3 || after.Y != before.Y+2 {
		t.Fatalf("pan moved %v to %v, expected (%d,%d)", before, after, before.X-3, before.Y+2)
	}
}

func TestZoomKeepsAnchorFixed(t *testing.T) {
	c := NewCamera(8)
	c.Center(640, 480)

	const sx, sy = 200, 150
	wx := sx/c.Cell + c.OriginX
	wy := sy/c.Cell + c.OriginY

	c.ZoomAt(2, sx, sy)
	if c.Cell != 16 {
		t.Fatalf("cell size is %v after doubling from 8", c.Cell)
	}
	wx2 := sx/c.Cell + c.OriginX
	wy2 := sy/c.Cell + c.OriginY
	if math.Abs(wx2-wx) > 1e-9 || math.Abs(wy2-wy) > 1e-9 {
		t.Fatalf("anchor drifted from (%v,%v) to (%v,%v)", wx, wy, wx2, wy2)
	}
}

func TestZoomClamps(t *testing.T) {
	c := NewCamera(8)
	c.ZoomAt(1000, 0, 0)
	if c.Cell != MaxCellSize {
		t.Fatalf("cell size %v exceeds the maximum", c.Cell)
	}
	c.ZoomAt(1.0/1000, 0, 0)
	if c.Cell != MinCellSize {
		t.Fatalf("cell size %v fell below the minimum", c.Cell)
	}
}
