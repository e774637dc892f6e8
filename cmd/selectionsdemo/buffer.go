package main

import (
	"unicode/utf8"

	"github.com/pkreyenhop/selections"
)

// appState holds everything the event loop threads between redraws: the
// static buffer, the live storage, and which selection id arrow keys
// currently target.
type appState struct {
	lines   []string
	storage *selections.SelectionStorage
	primary selections.Position
}

func (a *appState) lineLength() staticLines {
	return staticLines{lines: a.lines}
}

// staticLines adapts a []string buffer to selections.LineLength. Lines
// are measured in runes, matching Position's column units.
type staticLines struct {
	lines []string
}

func (b staticLines) LengthOf(line uint) (uint, bool) {
	if line >= uint(len(b.lines)) {
		return 0, false
	}
	return uint(utf8.RuneCountInString(b.lines[line])), true
}

func (b staticLines) LineCount() uint {
	return uint(len(b.lines))
}
