// Package term is the terminal display surface. It draws the board with two
// columns per cell and forwards keys and mouse clicks to the engine.
package term

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	icore "lifeboard/internal/core"
	"lifeboard/internal/ui"
	"lifeboard/pkg/core"
)

// ErrQuit is returned by Run when the user asks to leave.
var ErrQuit = errors.New("quit requested")

const (
	boardTop   = 2
	cellWidth  = 2
	dialogMax  = 64
	title      = "Conway's Game of Life"
	legend     = "space start/stop  r random  c clear  n step  i info  q quit"
	closeHint  = "press any key to close"
	aliveGlyph = '█'
)

var (
	styleText   = tcell.StyleDefault
	styleAlive  = tcell.StyleDefault.Foreground(tcell.ColorLimeGreen).Background(tcell.ColorBlack)
	styleDead   = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleStatus = tcell.StyleDefault.Bold(true)
	styleDialog = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleFrame  = styleDialog.Bold(true)
)

// Surface renders published grids onto a tcell screen.
type Surface struct {
	screen tcell.Screen
	ctrl   icore.Controller
	log    *log.Logger

	mu          sync.Mutex
	grid        core.Grid
	redraw      chan struct{}
	unsubscribe func()

	showInfo  bool
	infoLines []string
	buttons   tcell.ButtonMask
}

// New subscribes to ctrl and returns a surface drawing onto screen, which
// must already be initialised.
func New(screen tcell.Screen, ctrl icore.Controller, logger *log.Logger) *Surface {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Surface{
		screen: screen,
		ctrl:   ctrl,
		log:    logger,
		grid:   ctrl.Grid(),
		redraw: make(chan struct{}, 1),
	}
	s.unsubscribe = ctrl.Subscribe(s.onGridChanged)
	return s
}

// Close detaches the surface from the engine.
func (s *Surface) Close() {
	s.unsubscribe()
}

func (s *Surface) onGridChanged(g core.Grid) {
	s.mu.Lock()
	s.grid = g
	s.mu.Unlock()
	select {
	case s.redraw <- struct{}{}:
	default:
	}
}

func (s *Surface) snapshot() core.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Run processes input and redraws until ctx is done or the user quits. It
// returns ErrQuit on a quit key and when the screen stops delivering events.
func (s *Surface) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go s.screen.ChannelEvents(events, quit)

	s.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.redraw:
			s.Draw()
		case ev, ok := <-events:
			if !ok {
				return ErrQuit
			}
			if s.Handle(ev) {
				return ErrQuit
			}
			s.Draw()
		}
	}
}

// Handle applies one input event and reports whether the user asked to quit.
func (s *Surface) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

func (s *Surface) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if s.showInfo {
		s.apply(ui.Hit{Action: ui.ActionCloseInfo})
		return false
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case ' ', 's', 'S':
		s.apply(ui.Hit{Action: ui.ActionToggleRun})
	case 'r', 'R':
		s.apply(ui.Hit{Action: ui.ActionRandom})
	case 'c', 'C':
		s.apply(ui.Hit{Action: ui.ActionClear})
	case 'n', 'N':
		s.apply(ui.Hit{Action: ui.ActionStep})
	case 'i', 'I':
		s.apply(ui.Hit{Action: ui.ActionInfo})
	}
	return false
}

// handleMouse acts on the press edge of the primary button only, so holding
// the button over a cell toggles it once.
func (s *Surface) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && s.buttons&tcell.Button1 == 0
	s.buttons = buttons
	if !pressed {
		return
	}
	if s.showInfo {
		s.apply(ui.Hit{Action: ui.ActionCloseInfo})
		return
	}
	x, y := ev.Position()
	row, col, ok := s.cellAt(x, y)
	if !ok {
		return
	}
	s.apply(ui.Hit{Action: ui.ActionToggleCell, Row: row, Col: col})
}

func (s *Surface) cellAt(x, y int) (row, col int, ok bool) {
	g := s.snapshot()
	row, col = y-boardTop, x/cellWidth
	if x < 0 || row < 0 || row >= g.Rows() || col >= g.Cols() {
		return 0, 0, false
	}
	return row, col, true
}

func (s *Surface) apply(hit ui.Hit) {
	s.showInfo, s.infoLines = ui.Dispatch(s.ctrl, hit, s.showInfo, s.dialogColumns(), s.log)
}

// InfoOpen reports whether the information box is shown.
func (s *Surface) InfoOpen() bool { return s.showInfo }

func (s *Surface) dialogColumns() int {
	w, _ := s.screen.Size()
	cols := w - 8
	if cols > dialogMax {
		cols = dialogMax
	}
	if cols < 16 {
		cols = 16
	}
	return cols
}

// Draw renders the status line, the board, the key legend and, when open,
// the information box.
func (s *Surface) Draw() {
	g := s.snapshot()
	s.screen.Clear()

	state := "Idle"
	if s.ctrl.Running() {
		state = "Running"
	}
	status := fmt.Sprintf("%s  [%s]  gen %d  pop %d", title, state, s.ctrl.Generation(), g.Population())
	drawText(s.screen, 0, 0, styleStatus, status)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			ch, style := ' ', styleDead
			if g.Alive(r, c) {
				ch, style = aliveGlyph, styleAlive
			}
			for i := 0; i < cellWidth; i++ {
				s.screen.SetContent(c*cellWidth+i, boardTop+r, ch, nil, style)
			}
		}
	}
	drawText(s.screen, 0, boardTop+g.Rows()+1, styleText, legend)

	if s.showInfo {
		s.drawDialog()
	}
	s.screen.Show()
}

func (s *Surface) drawDialog() {
	lines := append([]string{ui.InfoTitle, ""}, s.infoLines...)
	lines = append(lines, "", closeHint)

	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	boxW, boxH := width+4, len(lines)+2
	sw, sh := s.screen.Size()
	x0, y0 := max((sw-boxW)/2, 0), max((sh-boxH)/2, 0)

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			s.screen.SetContent(x, y, ' ', nil, styleDialog)
		}
	}
	for i, l := range lines {
		style := styleDialog
		if i == 0 {
			style = styleFrame
		}
		drawText(s.screen, x0+2, y0+1+i, style, l)
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
