package selections

// Insert places selection into storage, merging it with any existing
// selections it overlaps: the inserted selection's endpoints are widened
// to the union of the overlap range before replacing it.
func (s *SelectionStorage) Insert(selection Selection) *SelectionDeltas {
	return s.insert(selection, false)
}

// InsertReplacing places selection into storage, replacing any existing
// selections it overlaps with the inserted selection verbatim (no
// widening).
func (s *SelectionStorage) InsertReplacing(selection Selection) *SelectionDeltas {
	return s.insert(selection, true)
}

func (s *SelectionStorage) insert(selection Selection, replace bool) *SelectionDeltas {
	deltas := newDeltas(2)

	r := s.findOverlap(selection.From, selection.To)
	if !r.Ok {
		idx := r.Lo
		s.selections = append(s.selections, Selection{})
		copy(s.selections[idx+1:], s.selections[idx:])
		s.selections[idx] = selection
		deltas.pushCreated(&s.selections[idx])
		s.checkInvariants()
		return deltas
	}

	a, b := r.Lo, r.Hi
	built := selection
	if !replace {
		built.From = minPos(selection.From, s.selections[a].From)
		built.To = maxPos(selection.To, s.selections[b].To)
	}

	old := s.selections[a]
	s.selections[a] = built
	deltas.pushDeleted(old)
	deltas.pushCreated(&s.selections[a])

	for i := a + 1; i <= b; i++ {
		deltas.pushDeleted(s.selections[i])
	}
	s.selections = append(s.selections[:a+1], s.selections[b+1:]...)

	s.checkInvariants()
	return deltas
}

func minPos(a, b Position) Position {
	if b.Less(a) {
		return b
	}
	return a
}

func maxPos(a, b Position) Position {
	if a.Less(b) {
		return b
	}
	return a
}
