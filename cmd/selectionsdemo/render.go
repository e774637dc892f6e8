package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pkreyenhop/selections"
)

var (
	styleNormal  = tcell.StyleDefault
	styleSel     = tcell.StyleDefault.Reverse(true)
	stylePrimary = tcell.StyleDefault.Background(tcell.ColorDarkCyan).Foreground(tcell.ColorWhite)
)

// draw renders the buffer with every live selection highlighted, the
// selection tracked by app.primary picked out distinctly, and a status
// line describing the keybindings.
func draw(screen tcell.Screen, app *appState) {
	screen.Clear()

	sels := app.storage.IterAll()
	for row, text := range app.lines {
		runes := []rune(text)
		for col := 0; col <= len(runes); col++ {
			var r rune
			if col < len(runes) {
				r = runes[col]
			} else {
				r = ' '
			}
			style := styleForCell(sels, app.primary, uint(row), uint(col))
			screen.SetContent(col, row, r, nil, style)
		}
	}

	status := "arrows move selection, shift extends, i insert, r replace, d delete, q quit"
	for i, r := range status {
		screen.SetContent(i, len(app.lines)+1, r, nil, styleNormal)
	}

	screen.Show()
}

func styleForCell(sels []selections.Selection, primary selections.Position, line, col uint) tcell.Style {
	p := selections.NewPosition(line, col)
	for _, s := range sels {
		if s.From.LessOrEqual(p) && p.LessOrEqual(s.To) {
			if s.From.WeakEqual(primary) {
				return stylePrimary
			}
			return styleSel
		}
	}
	return styleNormal
}
