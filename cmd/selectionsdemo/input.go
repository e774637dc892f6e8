package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pkreyenhop/selections"
)

// handleKey dispatches one key event against app, returning false when the
// demo should exit.
func handleKey(app *appState, ev *tcell.EventKey) bool {
	lines := app.lineLength()
	extend := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyLeft:
		moveAndTrack(app, lines, app.storage.MoveLeftSingle, 1, extend)
	case tcell.KeyRight:
		moveAndTrack(app, lines, app.storage.MoveRightSingle, 1, extend)
	case tcell.KeyUp:
		moveAndTrack(app, lines, app.storage.MoveUpSingle, 1, extend)
	case tcell.KeyDown:
		moveAndTrack(app, lines, app.storage.MoveDownSingle, 1, extend)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'i':
			insertAroundPrimary(app, false)
		case 'r':
			insertAroundPrimary(app, true)
		case 'd':
			deletePrimary(app)
		}
	}
	return true
}

type singleMover func(lines selections.LineLength, id selections.Position, n uint, extend bool) *selections.SelectionDeltas

// moveAndTrack drives one of the storage's four MoveXSingle operations
// on the selection identified by app.primary and re-tracks the id at the
// moved selection's new From, so a later key keeps following the same
// logical selection even after a rotation shuffled the storage array.
func moveAndTrack(app *appState, lines selections.LineLength, move singleMover, n uint, extend bool) {
	deltas := move(lines, app.primary, n, extend)
	for _, d := range deltas.All() {
		if d.Kind == selections.Updated && d.Old.From.WeakEqual(app.primary) {
			app.primary = d.New.From
			return
		}
	}
}

// insertAroundPrimary inserts a small collapsed selection at the
// primary's current position, either merging with anything it overlaps
// (replace == false) or replacing it outright.
func insertAroundPrimary(app *appState, replace bool) {
	sel := selections.NewSelection(app.primary, app.primary)
	var deltas *selections.SelectionDeltas
	if replace {
		deltas = app.storage.InsertReplacing(sel)
	} else {
		deltas = app.storage.Insert(sel)
	}
	for _, d := range deltas.All() {
		if d.Kind == selections.Created {
			app.primary = d.New.From
			return
		}
	}
}

func deletePrimary(app *appState) {
	deltas := app.storage.Delete(app.primary)
	for _, d := range deltas.All() {
		if d.Kind == selections.Created {
			app.primary = d.New.From
			return
		}
	}
}
