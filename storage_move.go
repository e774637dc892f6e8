package selections

// axis bundles what a direction-specific movement helper needs: whether
// the motion runs toward the buffer's beginning and how a selection is
// repositioned. moveSingle derives the rotation shape and (during an
// extend-collision) which edge of the colliding range widens the moved
// selection from towardBegin.
type axis struct {
	towardBegin bool
	move        func(Selection, LineLength, uint, bool) Selection
}

var (
	leftAxis  = axis{towardBegin: true, move: Selection.MoveLeft}
	rightAxis = axis{towardBegin: false, move: Selection.MoveRight}
	upAxis    = axis{towardBegin: true, move: Selection.MoveUp}
	downAxis  = axis{towardBegin: false, move: Selection.MoveDown}
)

// MoveLeftSingle moves the selection identified by id n columns left,
// collapsing it to a point unless extend is true.
func (s *SelectionStorage) MoveLeftSingle(lines LineLength, id Position, n uint, extend bool) *SelectionDeltas {
	return s.moveSingle(leftAxis, lines, id, n, extend)
}

// MoveRightSingle moves the selection identified by id n columns right.
func (s *SelectionStorage) MoveRightSingle(lines LineLength, id Position, n uint, extend bool) *SelectionDeltas {
	return s.moveSingle(rightAxis, lines, id, n, extend)
}

// MoveUpSingle moves the selection identified by id n lines up.
func (s *SelectionStorage) MoveUpSingle(lines LineLength, id Position, n uint, extend bool) *SelectionDeltas {
	return s.moveSingle(upAxis, lines, id, n, extend)
}

// MoveDownSingle moves the selection identified by id n lines down.
func (s *SelectionStorage) MoveDownSingle(lines LineLength, id Position, n uint, extend bool) *SelectionDeltas {
	return s.moveSingle(downAxis, lines, id, n, extend)
}

// moveSingle is the single shared implementation behind the four public
// movement entry points: relocate one selection and reconcile it with
// whatever it now overlaps, rotating past anything it merely stepped
// over and merging into anything it actually collides with.
func (s *SelectionStorage) moveSingle(ax axis, lines LineLength, id Position, n uint, extend bool) *SelectionDeltas {
	deltas := newDeltas(4)
	if n == 0 {
		return deltas
	}

	oldIdx, ok := s.findByID(id)
	if !ok {
		return deltas
	}

	oldSel := s.selections[oldIdx]
	newSel := ax.move(oldSel, lines, n, extend)

	target := s.findOverlapExcluding(newSel.From, newSel.To, oldIdx)

	if !target.Ok {
		i := target.Lo
		switch {
		case i == oldIdx:
			s.selections[oldIdx] = newSel
			deltas.pushUpdated(oldSel, &s.selections[oldIdx])
		case ax.towardBegin:
			s.selections[oldIdx] = newSel
			rotateRight1(s.selections[i : oldIdx+1])
			deltas.pushUpdated(oldSel, &s.selections[i])
		default:
			s.selections[oldIdx] = newSel
			rotateLeft1(s.selections[oldIdx:i])
			deltas.pushUpdated(oldSel, &s.selections[i-1])
		}
		s.checkInvariants()
		return deltas
	}

	a, b := target.Lo, target.Hi
	if extend {
		if ax.towardBegin {
			newSel.From = minPos(newSel.From, s.selections[a].From)
		} else {
			newSel.To = maxPos(newSel.To, s.selections[b].To)
		}
	}

	for idx := a; idx <= b; idx++ {
		deltas.pushDeleted(s.selections[idx])
	}

	// oldIdx never falls inside [a, b] (findOverlapExcluding guarantees
	// it), but it can sit on either side with selections between it and
	// the genuine overlap — ones the moved selection merely passed over
	// without colliding. Those survive untouched; only [a, b] is absorbed.
	var landedAt int
	if oldIdx < a {
		copy(s.selections[oldIdx:a-1], s.selections[oldIdx+1:a])
		landedAt = a - 1
		s.selections[landedAt] = newSel
		s.selections = append(s.selections[:a], s.selections[b+1:]...)
	} else {
		copy(s.selections[a+1:oldIdx], s.selections[b+1:oldIdx])
		landedAt = a
		s.selections[landedAt] = newSel
		s.selections = append(s.selections[:a+oldIdx-b], s.selections[oldIdx+1:]...)
	}
	deltas.pushUpdated(oldSel, &s.selections[landedAt])

	s.checkInvariants()
	return deltas
}

// rotateRight1 moves the last element of sl to the front, shifting the
// rest right by one.
func rotateRight1(sl []Selection) {
	if len(sl) == 0 {
		return
	}
	last := sl[len(sl)-1]
	copy(sl[1:], sl[:len(sl)-1])
	sl[0] = last
}

// rotateLeft1 moves the first element of sl to the back, shifting the
// rest left by one.
func rotateLeft1(sl []Selection) {
	if len(sl) == 0 {
		return
	}
	first := sl[0]
	copy(sl[:len(sl)-1], sl[1:])
	sl[len(sl)-1] = first
}
