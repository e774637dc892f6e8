package selections

// Delete removes the selection identified by id (its From position,
// weakly compared). If the removal empties the storage, the default
// selection (0,0)-(0,0) is re-inserted and reported as Created
// alongside the Deleted record. Looking up an unknown id returns an
// empty log.
func (s *SelectionStorage) Delete(id Position) *SelectionDeltas {
	deltas := newDeltas(2)

	idx, ok := s.findByID(id)
	if !ok {
		return deltas
	}
	deleted := s.selections[idx]
	s.selections = append(s.selections[:idx], s.selections[idx+1:]...)
	deltas.pushDeleted(deleted)

	if len(s.selections) == 0 {
		s.selections = append(s.selections, defaultSelection())
		deltas.pushCreated(&s.selections[0])
	}

	s.checkInvariants()
	return deltas
}
