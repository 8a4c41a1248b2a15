//go:build ebiten

package app

import (
	"fmt"

	"cellsim/internal/core"
	"cellsim/internal/render"
	"cellsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a grid-backed sim to the ebiten.Game interface.
type Game struct {
	sim      core.Sim
	raster   core.Raster
	controls *Controls
	painter  *render.GridPainter
	overlay  *ui.Overlay

	scale int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int) (*Game, error) {
	raster, ok := sim.(core.Raster)
	if !ok {
		return nil, fmt.Errorf("sim %q has no fixed grid to display", sim.Name())
	}
	if scale <= 0 {
		scale = 1
	}
	size := raster.Size()
	return &Game{
		sim:      sim,
		raster:   raster,
		controls: NewControls(sim),
		painter:  render.NewGridPainter(size.W, size.H, render.SeatPalette),
		overlay:  ui.NewOverlay(sim),
		scale:    scale,
	}, nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.controls.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.controls.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.controls.TickOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.controls.Reset()
	}

	g.overlay.Update()
	g.controls.Advance()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.raster.Cells(), g.scale)
	g.overlay.Draw(screen, g.controls.Paused())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.raster.Size()
	return s.W * g.scale, s.H * g.scale
}
