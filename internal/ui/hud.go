//go:build ebiten

package ui

import (
	"image/color"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update refreshes the panel text from the driver status and the sim's
// parameter snapshot.
func (h *HUD) Update(st Status) {
	if h == nil {
		return
	}
	var snap core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	h.lines = Lines(st, snap)
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Falling Sand", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, line := range h.lines {
		y += lineHeight
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
)
