package selections

// moveLeft returns the position n columns to the left of p, crossing
// line boundaries onto the fictitious "after newline" slot of the
// previous line, and clamping to (0, 0) at the buffer start.
func (p Position) moveLeft(lines LineLength, n uint) Position {
	if empty, ok := moveBufferEmpty(lines); ok {
		return empty
	}
	newPos := p
	for n > 0 {
		if newPos.Column < n {
			if newPos.Line == 0 {
				newPos.Column = 0
				break
			}
			n -= newPos.Column
			newPos.Line--
			length, ok := lines.LengthOf(newPos.Line)
			if !ok {
				panic(errContractf("LengthOf(%d) returned no length for a line move_left just crossed into", newPos.Line))
			}
			newPos.Column = length + 1
		} else {
			newPos.Column -= n
			break
		}
	}
	return newPos
}

// moveRight returns the position n columns to the right of p, crossing
// onto the next line when the column would exceed the current line's
// length, and clamping at the current line's length when there is no
// next line.
func (p Position) moveRight(lines LineLength, n uint) Position {
	if empty, ok := moveBufferEmpty(lines); ok {
		return empty
	}
	newPos := p
	for n > 0 {
		newPos.Column += n
		currentLength, ok := lines.LengthOf(newPos.Line)
		if !ok {
			panic(errContractf("LengthOf(%d) returned no length for move_right's current line", newPos.Line))
		}
		if newPos.Column > currentLength {
			if _, ok := lines.LengthOf(newPos.Line + 1); !ok {
				newPos.Column = currentLength
				break
			}
			n = newPos.Column - currentLength - 1
			newPos.Line++
			newPos.Column = 0
		} else {
			break
		}
	}
	return newPos
}

// moveUp returns the position n lines up from p, clamped to line 0, with
// sticky-column reconciliation (see reconcileColumn).
func (p Position) moveUp(lines LineLength, n uint) Position {
	if empty, ok := moveBufferEmpty(lines); ok {
		return empty
	}
	newPos := p
	if n > newPos.Line {
		newPos.Line = 0
	} else {
		newPos.Line -= n
	}
	return newPos.reconcileColumn(lines)
}

// moveDown returns the position n lines down from p, clamped to the last
// line, with sticky-column reconciliation.
func (p Position) moveDown(lines LineLength, n uint) Position {
	newPos := p
	newPos.Line += n

	lineCount := lines.LineCount()
	if lineCount == 0 {
		return NewPosition(0, 0)
	}
	if newPos.Line >= lineCount {
		newPos.Line = lineCount - 1
	}
	return newPos.reconcileColumn(lines)
}

// reconcileColumn implements the shared tail of moveUp/moveDown: if the
// destination line is long enough to hold the current column, restore
// any sticky column and clear it; otherwise clip to the line's length
// and remember the original column as sticky.
func (p Position) reconcileColumn(lines LineLength) Position {
	newPos := p
	length, ok := lines.LengthOf(newPos.Line)
	if !ok {
		panic(errContractf("LengthOf(%d) returned no length for a line vertical movement clamped onto", newPos.Line))
	}
	if length >= newPos.Column {
		if newPos.HasSticky {
			newPos.Column = newPos.StickyColumn
		}
		newPos.HasSticky = false
		newPos.StickyColumn = 0
	} else {
		newPos.StickyColumn = newPos.Column
		newPos.HasSticky = true
		newPos.Column = length
	}
	return newPos
}

// moveBufferEmpty is the shared edge policy for all four directions when
// the buffer has zero lines: every movement collapses to (0, 0).
func moveBufferEmpty(lines LineLength) (Position, bool) {
	if lines.LineCount() == 0 {
		return NewPosition(0, 0), true
	}
	return Position{}, false
}
