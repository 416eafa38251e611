package ui

import (
	"image"
	"strings"
)

// InfoTitle and InfoText fill the information dialog.
const (
	InfoTitle = "Information"
	InfoText  = "The Game of Life is a cellular automaton devised by the mathematician " +
		"John Horton Conway in 1970. It is a zero-player game: after the initial " +
		"pattern is drawn, every generation follows from the one before. A live " +
		"cell with two or three live neighbours survives, a dead cell with exactly " +
		"three live neighbours comes alive, and every other cell dies or stays dead. " +
		"Click cells to draw a pattern, then press Start."
)

// Action is a user intent resolved from input.
type Action int

const (
	ActionNone Action = iota
	ActionToggleRun
	ActionRandom
	ActionClear
	ActionStep
	ActionInfo
	ActionCloseInfo
	ActionToggleCell
)

// Button is a clickable label in the bar above the board.
type Button struct {
	Action Action
	Label  string
	Rect   image.Rectangle
}

// Hit is the result of resolving a click. Row and Col are set for
// ActionToggleCell.
type Hit struct {
	Action   Action
	Row, Col int
}

// Layout places the button bar, the board and the info dialog in window
// coordinates.
type Layout struct {
	Rows, Cols, CellSize int

	Buttons     []Button
	Board       image.Rectangle
	Dialog      image.Rectangle
	DialogClose image.Rectangle

	width, height int
}

const (
	panelPadding = 12
	buttonWidth  = 84
	buttonHeight = 28
	buttonGap    = 8
	barHeight    = buttonHeight + 2*panelPadding
	dialogMargin = 24
	// CharWidth and LineHeight match basicfont.Face7x13.
	CharWidth  = 7
	LineHeight = 16
)

// NewLayout computes the window layout for a rows x cols board.
func NewLayout(rows, cols, cellSize int) Layout {
	if cellSize <= 0 {
		cellSize = 1
	}
	l := Layout{Rows: rows, Cols: cols, CellSize: cellSize}

	labels := []struct {
		action Action
		label  string
	}{
		{ActionToggleRun, "Start"},
		{ActionRandom, "Random"},
		{ActionClear, "Clear"},
		{ActionInfo, "Info"},
	}
	x := panelPadding
	for _, b := range labels {
		rect := image.Rect(x, panelPadding, x+buttonWidth, panelPadding+buttonHeight)
		l.Buttons = append(l.Buttons, Button{Action: b.action, Label: b.label, Rect: rect})
		x += buttonWidth + buttonGap
	}
	barWidth := x - buttonGap + panelPadding

	boardW, boardH := cols*cellSize, rows*cellSize
	l.width = max(barWidth, boardW+2*panelPadding)
	l.height = barHeight + boardH + panelPadding

	left := (l.width - boardW) / 2
	l.Board = image.Rect(left, barHeight, left+boardW, barHeight+boardH)

	l.Dialog = image.Rect(dialogMargin, dialogMargin, l.width-dialogMargin, l.height-dialogMargin)
	l.DialogClose = image.Rect(
		l.Dialog.Max.X-panelPadding-buttonWidth, l.Dialog.Max.Y-panelPadding-buttonHeight,
		l.Dialog.Max.X-panelPadding, l.Dialog.Max.Y-panelPadding,
	)
	return l
}

// Size returns the window size in pixels.
func (l Layout) Size() (int, int) { return l.width, l.height }

// RunLabel is the label of the start/stop button.
func RunLabel(running bool) string {
	if running {
		return "Stop"
	}
	return "Start"
}

// CellAt maps a window position to a board cell.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if !pointInRect(x, y, l.Board) {
		return 0, 0, false
	}
	return (y - l.Board.Min.Y) / l.CellSize, (x - l.Board.Min.X) / l.CellSize, true
}

// Click resolves a left click. While the dialog is open only its close
// button or a click outside it does anything.
func (l Layout) Click(x, y int, dialogOpen bool) Hit {
	if dialogOpen {
		if pointInRect(x, y, l.DialogClose) || !pointInRect(x, y, l.Dialog) {
			return Hit{Action: ActionCloseInfo}
		}
		return Hit{}
	}
	for _, b := range l.Buttons {
		if pointInRect(x, y, b.Rect) {
			return Hit{Action: b.Action}
		}
	}
	if row, col, ok := l.CellAt(x, y); ok {
		return Hit{Action: ActionToggleCell, Row: row, Col: col}
	}
	return Hit{}
}

// DialogColumns is how many characters fit on a dialog line.
func (l Layout) DialogColumns() int {
	return max(1, (l.Dialog.Dx()-2*panelPadding)/CharWidth)
}

// Wrap breaks text into lines of at most width characters on word
// boundaries. Words longer than width get a line of their own.
func Wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
