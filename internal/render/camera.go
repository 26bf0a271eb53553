package render

import (
	"math"

	"sparse-life/pkg/life"
)

// Zoom limits in pixels per cell edge.
const (
	MinCellSize = 2
	MaxCellSize = 64
)

// Camera maps between the unbounded cell grid and screen pixels. OriginX and
// OriginY are the (fractional) cell coordinates sitting at the screen's
// top-left corner; Cell is the edge length of one cell in pixels.
type Camera struct {
	OriginX float64
	OriginY float64
	Cell    float64
}

// NewCamera returns a camera at the given zoom with the grid origin at the
// screen's top-left corner.
func NewCamera(cell float64) *Camera {
	c := &Camera{Cell: cell}
	c.clampZoom()
	return c
}

// ToScreen returns the pixel position of the cell's top-left corner.
func (c *Camera) ToScreen(p life.Point) (float64, float64) {
	return (float64(p.X) - c.OriginX) * c.Cell, (float64(p.Y) - c.OriginY) * c.Cell
}

// CellAt returns the cell under the given screen pixel.
func (c *Camera) CellAt(sx, sy float64) life.Point {
	return life.Point{
		X: int(math.Floor(sx/c.Cell + c.OriginX)),
		Y: int(math.Floor(sy/c.Cell + c.OriginY)),
	}
}

// Pan moves the view by a pixel delta, so dragging by (dx, dy) keeps the
// grid glued to the cursor.
func (c *Camera) Pan(dx, dy float64) {
	c.OriginX -= dx / c.Cell
	c.OriginY -= dy / c.Cell
}

// ZoomAt scales the cell size by factor while keeping the grid position
// under the screen pixel (sx, sy) fixed.
func (c *Camera) ZoomAt(factor, sx, sy float64) {
	wx := sx/c.Cell + c.OriginX
	wy := sy/c.Cell + c.OriginY
	c.Cell *= factor
	c.clampZoom()
	c.OriginX = wx - sx/c.Cell
	c.OriginY = wy - sy/c.Cell
}

// Center places cell (0, 0) at the middle of a w by h pixel screen.
func (c *Camera) Center(w, h int) {
	c.OriginX = -float64(w) / (2 * c.Cell)
	c.OriginY = -float64(h) / (2 * c.Cell)
}

func (c *Camera) clampZoom() {
	if c.Cell < MinCellSize {
		c.Cell = MinCellSize
	}
	if c.Cell > MaxCellSize {
		c.Cell = MaxCellSize
	}
}
