package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"lifeboard/internal/core/coretest"
	"lifeboard/internal/engine"
	"lifeboard/internal/ui"
	"lifeboard/pkg/core"
)

func newTestSurface(t *testing.T) (*Surface, *engine.Engine, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)

	e, err := engine.New(engine.DefaultConfig(),
		engine.WithTicker(coretest.Factory),
		engine.WithRand(core.NewRand(7)),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	t.Cleanup(e.Close)

	s := New(screen, e, nil)
	t.Cleanup(s.Close)
	return s, e, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func click(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}

func release(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func lineAt(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestKeysDriveEngine(t *testing.T) {
	s, e, _ := newTestSurface(t)

	s.Handle(key('r'))
	if e.Grid().Population() == 0 {
		t.Fatalf("expected live cells after r")
	}
	s.Handle(key('c'))
	if pop := e.Grid().Population(); pop != 0 {
		t.Fatalf("population after c = %d, want 0", pop)
	}

	s.Handle(key(' '))
	if !e.Running() {
		t.Fatalf("space should start the engine")
	}
	s.Handle(key(' '))
	if e.Running() {
		t.Fatalf("space should stop the engine")
	}

	s.Handle(key('n'))
	if gen := e.Generation(); gen != 1 {
		t.Fatalf("generation after n = %d, want 1", gen)
	}
}

func TestQuitKeys(t *testing.T) {
	s, _, _ := newTestSurface(t)
	for _, ev := range []tcell.Event{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if !s.Handle(ev) {
			t.Fatalf("%v should quit", ev)
		}
	}
	if s.Handle(key('x')) {
		t.Fatalf("unbound key should not quit")
	}
}

func TestMouseTogglesCellOnPress(t *testing.T) {
	s, e, _ := newTestSurface(t)

	x, y := 2*cellWidth+1, boardTop+3
	s.Handle(click(x, y))
	if !e.Grid().Alive(3, 2) {
		t.Fatalf("cell (3,2) should be alive after click")
	}

	s.Handle(click(x, y))
	if !e.Grid().Alive(3, 2) {
		t.Fatalf("holding the button must not toggle again")
	}

	s.Handle(release(x, y))
	s.Handle(click(x, y))
	if e.Grid().Alive(3, 2) {
		t.Fatalf("second press should toggle the cell back")
	}
}

func TestClicksOffBoardAreIgnored(t *testing.T) {
	s, e, _ := newTestSurface(t)
	for _, p := range [][2]int{{0, 0}, {0, boardTop + 25}, {2 * 25, boardTop}} {
		s.Handle(click(p[0], p[1]))
		s.Handle(release(p[0], p[1]))
	}
	if pop := e.Grid().Population(); pop != 0 {
		t.Fatalf("population = %d, want 0", pop)
	}
}

func TestDrawShowsBoardAndStatus(t *testing.T) {
	s, e, screen := newTestSurface(t)
	if err := e.ToggleCell(0, 1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	s.Draw()

	for i := 0; i < cellWidth; i++ {
		r, _, _, _ := screen.GetContent(cellWidth+i, boardTop)
		if r != aliveGlyph {
			t.Fatalf("column %d: got %q, want %q", cellWidth+i, r, aliveGlyph)
		}
	}
	if r, _, _, _ := screen.GetContent(0, boardTop); r != ' ' {
		t.Fatalf("dead cell drawn as %q", r)
	}

	status := lineAt(screen, 0)
	if !strings.Contains(status, "[Idle]") || !strings.Contains(status, "pop 1") {
		t.Fatalf("status line = %q", status)
	}
	if got := lineAt(screen, boardTop+26); got != legend {
		t.Fatalf("legend line = %q", got)
	}
}

func TestInfoDialog(t *testing.T) {
	s, e, screen := newTestSurface(t)

	s.Handle(key('i'))
	if !s.InfoOpen() {
		t.Fatalf("i should open the info box")
	}
	s.Draw()
	found := false
	for y := 0; y < 40 && !found; y++ {
		found = strings.Contains(lineAt(screen, y), ui.InfoTitle)
	}
	if !found {
		t.Fatalf("info title not drawn")
	}

	s.Handle(key('r'))
	if s.InfoOpen() {
		t.Fatalf("any key should close the info box")
	}
	if pop := e.Grid().Population(); pop != 0 {
		t.Fatalf("closing key must not reach the engine, population = %d", pop)
	}

	s.Handle(key('i'))
	s.Handle(click(0, boardTop))
	if s.InfoOpen() {
		t.Fatalf("a click should close the info box")
	}
	if e.Grid().Alive(0, 0) {
		t.Fatalf("board clicks are ignored while the info box is open")
	}
}

func TestRedrawOnPublish(t *testing.T) {
	s, e, _ := newTestSurface(t)
	if err := e.ToggleCell(4, 4); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	select {
	case <-s.redraw:
	default:
		t.Fatalf("publishing should request a redraw")
	}
	if !s.snapshot().Alive(4, 4) {
		t.Fatalf("surface snapshot not updated")
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	s, _, screen := newTestSurface(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := s.Run(ctx); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run = %v, want ErrQuit", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s, _, _ := newTestSurface(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
