//go:build ebiten

package app

import (
	"math"
	"time"

	"sparse-life/internal/render"
	"sparse-life/internal/ui"
	"sparse-life/pkg/life"
	"sparse-life/pkg/rle"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	minInterval = 15 * time.Millisecond
	maxInterval = 4 * time.Second
	panSpeed    = 600 // pixels per second
)

// Game adapts the simulation to the ebiten.Game interface.
type Game struct {
	store   *life.Store
	sched   *life.Scheduler
	cam     *render.Camera
	painter *render.Painter
	hud     *ui.HUD

	seed     []life.Point // cells restored on reset
	soupSeed int64

	placing     []life.Point
	placingName string
	patternIdx  int

	lastUpdate  time.Time
	lastCursorX int
	lastCursorY int
}

// New constructs a Game whose grid starts seeded with the given cells.
func New(cfg *Config, seed []life.Point) *Game {
	store := life.NewStore()
	sched := life.NewScheduler(store, cfg.Interval)
	sched.SetRunning(!cfg.Paused)

	cam := render.NewCamera(float64(cfg.CellSize))
	cam.Center(cfg.Width, cfg.Height)

	g := &Game{
		store:      store,
		sched:      sched,
		cam:        cam,
		painter:    render.NewPainter(),
		hud:        ui.NewHUD(),
		seed:       seed,
		soupSeed:   cfg.Seed,
		patternIdx: -1,
	}
	g.Reset()
	return g
}

// Reset restores the seed pattern and rewinds the generation counter.
func (g *Game) Reset() {
	g.store.Clear()
	g.store.Place(life.Point{}, g.seed)
	g.sched.Reset()
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	now := time.Now()
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
	}
	delta := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.placing == nil {
			return ebiten.Termination
		}
		g.placing, g.placingName = nil, ""
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sched.SetRunning(!g.sched.Running())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sched.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.store.Clear()
		g.sched.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.store.Clear()
		g.sched.Reset()
		r := life.NewRand(g.soupSeed)
		g.soupSeed++
		g.store.Place(life.Point{}, life.Soup(r, 120, 90))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.sched.SetInterval(min(g.sched.Interval()*2, maxInterval))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.sched.SetInterval(max(g.sched.Interval()/2, minInterval))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.cyclePattern()
	}

	g.handlePointer()
	g.handlePan(delta)

	g.sched.Advance(delta)
	return nil
}

// cyclePattern steps through the bundled catalogue and arms placement mode.
// The run is paused while placing, matching the pattern buttons' behavior.
func (g *Game) cyclePattern() {
	names := rle.Names()
	if len(names) == 0 {
		return
	}
	g.patternIdx = (g.patternIdx + 1) % len(names)
	name := names[g.patternIdx]
	cells, ok := rle.Pattern(name)
	if !ok {
		return
	}
	g.placing, g.placingName = cells, name
	g.sched.SetRunning(false)
}

func (g *Game) handlePointer() {
	cx, cy := ebiten.CursorPosition()

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.ZoomAt(math.Pow(1.15, wy), float64(cx), float64(cy))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		g.cam.Pan(float64(cx-g.lastCursorX), float64(cy-g.lastCursorY))
	}
	g.lastCursorX, g.lastCursorY = cx, cy

	p := g.cam.CellAt(float64(cx), float64(cy))
	switch {
	case g.placing != nil:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.store.Place(p, g.placing)
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if !g.store.Contains(p) {
			g.store.Spawn([]life.Point{p})
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		if g.store.Contains(p) {
			g.store.Kill([]life.Point{p})
		}
	}
}

func (g *Game) handlePan(delta time.Duration) {
	step := panSpeed * delta.Seconds()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.cam.Pan(step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.cam.Pan(-step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cam.Pan(0, step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cam.Pan(0, -step)
	}
}

// Draw renders the grid, the placement preview, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.store, g.cam)
	if g.placing != nil {
		cx, cy := ebiten.CursorPosition()
		g.painter.Preview(screen, g.cam, g.cam.CellAt(float64(cx), float64(cy)), g.placing)
	}
	g.hud.Draw(screen, ui.Status{
		Generation:  g.sched.Generation(),
		Population:  g.store.Len(),
		PooledSlots: g.store.PoolLen(),
		Running:     g.sched.Running(),
		Interval:    g.sched.Interval(),
		Placing:     g.placingName,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
