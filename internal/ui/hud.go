//go:build ebiten

package ui

import (
	"image/color"

	"mad-shapes/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineHeight = 14
	hudMargin     = 6
)

// HUD draws the sim name, pause state and parameter snapshot over the view.
type HUD struct {
	sim     core.Sim
	visible bool
	lines   []string
	shade   *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, visible: true}
	h.shade = ebiten.NewImage(1, 1)
	h.shade.Fill(color.RGBA{0, 0, 0, 0xa0})
	return h
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Update refreshes the cached text from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	title := h.sim.Name()
	if paused {
		title += " [paused]"
	}
	h.lines = append(h.lines[:0], title)
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.lines = append(h.lines, provider.Parameters().Lines()...)
	}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	width := 0
	for _, l := range h.lines {
		width = max(width, text.BoundString(basicfont.Face7x13, l).Dx())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*hudMargin), float64(len(h.lines)*hudLineHeight+hudMargin))
	screen.DrawImage(h.shade, op)
	for i, l := range h.lines {
		text.Draw(screen, l, basicfont.Face7x13, hudMargin, hudMargin+10+i*hudLineHeight, color.White)
	}
}
