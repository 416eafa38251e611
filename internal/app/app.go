//go:build ebiten

package app

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	icore "lifeboard/internal/core"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"
	"lifeboard/pkg/core"
)

// Game adapts the engine to the ebiten.Game interface.
type Game struct {
	ctrl    icore.Controller
	layout  ui.Layout
	painter *render.GridPainter
	chrome  *ui.Painter
	log     *log.Logger

	mu   sync.Mutex
	grid core.Grid

	unsubscribe func()
	showInfo    bool
	infoLines   []string
}

// New constructs a Game rendering ctrl's board at cellSize pixels per cell.
func New(ctrl icore.Controller, cellSize int, logger *log.Logger) *Game {
	grid := ctrl.Grid()
	layout := ui.NewLayout(grid.Rows(), grid.Cols(), cellSize)
	g := &Game{
		ctrl:    ctrl,
		layout:  layout,
		painter: render.NewGridPainter(grid.Rows(), grid.Cols(), cellSize, render.DefaultPalette),
		chrome:  ui.NewPainter(layout),
		log:     logger,
		grid:    grid,
	}
	g.unsubscribe = ctrl.Subscribe(g.onGridChanged)
	return g
}

// WindowSize returns the window size in pixels.
func (g *Game) WindowSize() (int, int) { return g.layout.Size() }

// Close detaches the game from the engine.
func (g *Game) Close() { g.unsubscribe() }

func (g *Game) onGridChanged(grid core.Grid) {
	g.mu.Lock()
	g.grid = grid
	g.mu.Unlock()
}

func (g *Game) snapshot() core.Grid {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.grid
}

// Update handles per-frame input and forwards intents to the engine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.showInfo && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.showInfo = false
			return nil
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.apply(ui.Hit{Action: ui.ActionInfo})
	}
	if !g.showInfo {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeySpace):
			g.apply(ui.Hit{Action: ui.ActionToggleRun})
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			g.apply(ui.Hit{Action: ui.ActionRandom})
		case inpututil.IsKeyJustPressed(ebiten.KeyC):
			g.apply(ui.Hit{Action: ui.ActionClear})
		case inpututil.IsKeyJustPressed(ebiten.KeyN):
			g.apply(ui.Hit{Action: ui.ActionStep})
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.apply(g.layout.Click(x, y, g.showInfo))
	}
	return nil
}

func (g *Game) apply(hit ui.Hit) {
	g.showInfo, g.infoLines = ui.Dispatch(g.ctrl, hit, g.showInfo, g.layout.DialogColumns(), g.log)
}

// Draw renders the latest published grid and the chrome around it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.chrome.DrawBackground(screen)
	g.chrome.DrawBar(screen, g.ctrl.Running())
	g.painter.Blit(screen, g.snapshot(), g.layout.Board.Min.X, g.layout.Board.Min.Y)
	if g.showInfo {
		g.chrome.DrawDialog(screen, g.infoLines)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Size()
}
