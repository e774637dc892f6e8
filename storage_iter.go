package selections

import "sort"

// IterAll returns all selections in storage order (sorted by From).
// The returned slice aliases storage memory and must not be retained
// past the next mutating call.
func (s *SelectionStorage) IterAll() []Selection {
	return s.selections
}

// IterFromLine returns the selections starting at the first one whose
// span intersects or follows the beginning of line. It returns nil if
// none does.
func (s *SelectionStorage) IterFromLine(line uint) []Selection {
	lineStart := NewPosition(line, 0)
	n := len(s.selections)

	idx := sort.Search(n, func(i int) bool {
		sel := s.selections[i]
		if sel.From.LessOrEqual(lineStart) && lineStart.LessOrEqual(sel.To) {
			return true
		}
		return sel.To.Compare(lineStart) >= 0
	})
	if idx == n {
		return nil
	}
	return s.selections[idx:]
}
