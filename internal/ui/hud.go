//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMarginX   = 8
	hudLineH     = 14
	hudFirstLine = 16
)

// HUD paints a small status block in the screen's top-left corner.
type HUD struct {
	shadow color.Color
	ink    color.Color
}

// NewHUD constructs a HUD using the stock 7x13 face.
func NewHUD() *HUD {
	return &HUD{
		shadow: color.RGBA{A: 200},
		ink:    color.RGBA{R: 220, G: 220, B: 210, A: 255},
	}
}

// Draw renders the status block onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	state := fmt.Sprintf("running %v/gen", st.Interval)
	if !st.Running {
		state = "paused (n steps once)"
	}

	lines := []string{
		fmt.Sprintf("gen %d  cells %d  pool %d", st.Generation, st.Population, st.PooledSlots),
		state,
	}
	if st.Placing != "" {
		lines = append(lines, fmt.Sprintf("placing %q  (click to stamp, esc cancels)", st.Placing))
	}
	lines = append(lines,
		"space pause  n step  -/= speed  tab pattern",
		"r reset  c clear  s soup  drag paint / rmb erase",
	)

	y := hudFirstLine
	for _, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, hudMarginX+1, y+1, h.shadow)
		text.Draw(screen, line, basicfont.Face7x13, hudMarginX, y, h.ink)
		y += hudLineH
	}
}
