package selections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSelectionNormalizesDirection(t *testing.T) {
	s := NewSelection(pos(0, 5), pos(0, 10))
	assert.Equal(t, Forward, s.Direction)
	assert.Equal(t, pos(0, 5), s.From)
	assert.Equal(t, pos(0, 10), s.To)
	assert.Equal(t, pos(0, 5), s.Anchor())
	assert.Equal(t, pos(0, 10), s.Cursor())

	s = NewSelection(pos(0, 10), pos(0, 5))
	assert.Equal(t, Backward, s.Direction)
	assert.Equal(t, pos(0, 5), s.From)
	assert.Equal(t, pos(0, 10), s.To)
	assert.Equal(t, pos(0, 10), s.Anchor())
	assert.Equal(t, pos(0, 5), s.Cursor())
}

func TestDefaultSelectionIsCollapsedAtOrigin(t *testing.T) {
	d := defaultSelection()
	assert.Equal(t, pos(0, 0), d.From)
	assert.Equal(t, pos(0, 0), d.To)
	assert.Equal(t, Forward, d.Direction)
}

func TestSelectionMoveCollapseRemovesSticky(t *testing.T) {
	lines := newFakeLines(20, 5, 30)

	s := NewSelection(pos(0, 2), pos(0, 8))
	moved := s.MoveDown(lines, 1, false)

	assert.True(t, moved.From.WeakEqual(moved.To), "a non-extending move collapses the selection to a point")
	assert.False(t, moved.From.HasSticky, "the anchor half of a collapsed point carries no sticky column")
	assert.False(t, moved.To.HasSticky, "the cursor half of a collapsed point carries no sticky column")
}

func TestSelectionMoveExtendKeepsAnchor(t *testing.T) {
	lines := newFakeLines(10, 20)

	s := NewSelection(pos(0, 2), pos(0, 2))
	moved := s.MoveRight(lines, 5, true)

	assert.Equal(t, pos(0, 2), moved.Anchor())
	assert.Equal(t, pos(0, 7), moved.Cursor())
	assert.Equal(t, Forward, moved.Direction)
}

func TestSelectionMoveExtendCanFlipDirection(t *testing.T) {
	lines := newFakeLines(10, 20)

	// Anchor at column 2, cursor at column 8: extending the cursor past
	// the anchor must flip the pair into Backward direction.
	s := NewSelection(pos(0, 2), pos(0, 8))
	assert.Equal(t, Forward, s.Direction)

	moved := s.MoveLeft(lines, 10, true)

	assert.Equal(t, pos(0, 2), moved.Anchor())
	assert.Equal(t, Backward, moved.Direction)
	assert.True(t, moved.Cursor().Less(moved.Anchor()))
}

func TestSelectionWeakEqualIgnoresSticky(t *testing.T) {
	a := Selection{From: pos(0, 0), To: newPositionWithSticky(0, 5, 20), Direction: Forward}
	b := Selection{From: pos(0, 0), To: pos(0, 5), Direction: Forward}

	assert.True(t, a.WeakEqual(b))
	assert.False(t, a.Equal(b))
}
