package ui

import (
	"log"

	icore "lifeboard/internal/core"
)

// Dispatch applies a resolved click or key to ctrl and returns the new
// dialog state. When the dialog opens, lines holds its wrapped body text.
func Dispatch(ctrl icore.Controller, hit Hit, showInfo bool, columns int, logger *log.Logger) (bool, []string) {
	switch hit.Action {
	case ActionToggleRun:
		if ctrl.Running() {
			ctrl.Stop()
		} else {
			ctrl.Start()
		}
	case ActionRandom:
		ctrl.Randomize()
	case ActionClear:
		ctrl.Clear()
	case ActionStep:
		ctrl.Step()
	case ActionToggleCell:
		if err := ctrl.ToggleCell(hit.Row, hit.Col); err != nil && logger != nil {
			logger.Printf("toggle rejected: %v", err)
		}
	case ActionInfo:
		return true, InfoLines(ctrl, columns)
	case ActionCloseInfo:
		return false, nil
	}
	if showInfo {
		return true, InfoLines(ctrl, columns)
	}
	return false, nil
}

// InfoLines is the dialog body: the description wrapped to columns followed
// by the board parameters.
func InfoLines(ctrl icore.Controller, columns int) []string {
	lines := Wrap(InfoText, columns)
	lines = append(lines, "")
	return append(lines, ctrl.Parameters().Lines()...)
}
