package selections

import "sort"

// findByID returns the index of the selection whose From weakly equals
// pos, or ok == false if none matches.
func (s *SelectionStorage) findByID(pos Position) (idx int, ok bool) {
	n := len(s.selections)
	i := sort.Search(n, func(i int) bool { return s.selections[i].From.Compare(pos) >= 0 })
	if i < n && s.selections[i].From.WeakEqual(pos) {
		return i, true
	}
	return 0, false
}

// overlapRange is the result of a find_overlap-style query: either Ok,
// an inclusive [Lo, Hi] range of overlapping indices, or a miss, an
// insertion index where a non-overlapping selection belongs.
type overlapRange struct {
	Lo, Hi int
	Ok     bool
}

func overlapMiss(idx int) overlapRange   { return overlapRange{Lo: idx, Hi: idx, Ok: false} }
func overlapHit(lo, hi int) overlapRange { return overlapRange{Lo: lo, Hi: hi, Ok: true} }

// probeOverlap returns the index of a selection containing pos, or the
// index at which a selection anchored at pos would be inserted if none
// contains it.
func (s *SelectionStorage) probeOverlap(pos Position) (idx int, hit bool) {
	n := len(s.selections)
	i := sort.Search(n, func(i int) bool {
		sel := s.selections[i]
		if pos.LessOrEqual(sel.To) && sel.From.LessOrEqual(pos) {
			return true
		}
		return sel.From.Compare(pos) >= 0
	})
	if i < n {
		sel := s.selections[i]
		if sel.From.LessOrEqual(pos) && pos.LessOrEqual(sel.To) {
			return i, true
		}
	}
	return i, false
}

// findOverlap finds the inclusive index range of selections whose spans
// intersect [from, to], or the insertion index for a non-overlapping
// selection. Both endpoints are probed independently: when the probe at
// to lands on an existing selection's From instead of inside one, the
// overlap's upper index is that probe's result decremented by one,
// since it points past the last genuinely overlapping selection.
func (s *SelectionStorage) findOverlap(from, to Position) overlapRange {
	if len(s.selections) == 0 {
		return overlapMiss(0)
	}

	fromIdx, fromHit := s.probeOverlap(from)
	toIdx, toHit := s.probeOverlap(to)

	if !fromHit && !toHit && fromIdx == toIdx {
		return overlapMiss(fromIdx)
	}

	lo := fromIdx
	var hi int
	if toHit {
		hi = toIdx
	} else {
		hi = toIdx - 1
	}
	return overlapHit(lo, hi)
}

// findOverlapExcluding is findOverlap but ignores the selection
// currently at index exclude, used by movement to compare a selection's
// prospective new extent against the other selections.
func (s *SelectionStorage) findOverlapExcluding(from, to Position, exclude int) overlapRange {
	r := s.findOverlap(from, to)
	if !r.Ok {
		return r
	}
	switch {
	case r.Lo == r.Hi && r.Lo == exclude:
		return overlapMiss(exclude)
	case r.Lo == exclude:
		return overlapHit(r.Lo+1, r.Hi)
	case r.Hi == exclude:
		return overlapHit(r.Lo, r.Hi-1)
	default:
		return r
	}
}
