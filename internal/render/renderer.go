//go:build ebiten

package render

import (
	"image/color"
	"math"

	"sparse-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	backgroundColor = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	cellColor       = color.RGBA{R: 235, G: 235, B: 225, A: 255}
	gridColor       = color.RGBA{R: 38, G: 38, B: 46, A: 255}
	previewColor    = color.RGBA{R: 90, G: 190, B: 110, A: 160}
)

// Painter draws the live cell set through a camera.
type Painter struct {
	pixel *ebiten.Image
}

// NewPainter constructs a painter.
func NewPainter() *Painter {
	p := &Painter{pixel: ebiten.NewImage(1, 1)}
	p.pixel.Fill(color.White)
	return p
}

// Draw paints the background, grid lines, and every visible live cell.
func (p *Painter) Draw(screen *ebiten.Image, store *life.Store, cam *Camera) {
	screen.Fill(backgroundColor)

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	p.drawGrid(screen, cam, w, h)

	store.Each(func(pt life.Point, _ life.Handle) {
		p.fillCell(screen, cam, pt, w, h, cellColor)
	})
}

// Preview paints pattern offsets translated to origin as translucent ghost
// cells, without touching the store.
func (p *Painter) Preview(screen *ebiten.Image, cam *Camera, origin life.Point, offsets []life.Point) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	for _, d := range offsets {
		pt := life.Point{X: origin.X + d.X, Y: origin.Y + d.Y}
		p.fillCell(screen, cam, pt, w, h, previewColor)
	}
}

func (p *Painter) fillCell(screen *ebiten.Image, cam *Camera, pt life.Point, w, h int, col color.RGBA) {
	sx, sy := cam.ToScreen(pt)
	size := cam.Cell
	if sx+size < 0 || sy+size < 0 || sx >= float64(w) || sy >= float64(h) {
		return
	}
	// Inset by one pixel once cells are large enough to read as tiles.
	inset := 0.0
	if size >= 8 {
		inset = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size-inset, size-inset)
	op.GeoM.Translate(sx, sy)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(p.pixel, op)
}

// drawGrid paints faint cell boundaries once the zoom makes them legible.
func (p *Painter) drawGrid(screen *ebiten.Image, cam *Camera, w, h int) {
	size := cam.Cell
	if size < 8 {
		return
	}

	startX := (math.Ceil(cam.OriginX) - cam.OriginX) * size
	for x := startX; x < float64(w); x += size {
		p.line(screen, x, 0, 1, float64(h))
	}
	startY := (math.Ceil(cam.OriginY) - cam.OriginY) * size
	for y := startY; y < float64(h); y += size {
		p.line(screen, 0, y, float64(w), 1)
	}
}

func (p *Painter) line(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(gridColor.R)/255.0, float64(gridColor.G)/255.0, float64(gridColor.B)/255.0, float64(gridColor.A)/255.0)
	screen.DrawImage(p.pixel, op)
}
