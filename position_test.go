package selections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionCompareAndEquality(t *testing.T) {
	a := NewPosition(1, 5)
	b := NewPosition(1, 5)
	c := newPositionWithSticky(1, 5, 99)

	assert.True(t, a.WeakEqual(c), "weak equality ignores sticky column")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "strong equality considers sticky column")

	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, NewPosition(0, 9).Compare(NewPosition(1, 0)))
	assert.Equal(t, 1, NewPosition(1, 0).Compare(NewPosition(0, 9)))
}

func TestPositionMoveLeft(t *testing.T) {
	lines := newFakeLines(10, 20, 6)

	if got := NewPosition(1, 10).moveLeft(lines, 5); got != NewPosition(1, 5) {
		t.Fatalf("got %+v", got)
	}

	// Crossing a line boundary lands on the "after newline" slot.
	got := NewPosition(1, 15).moveLeft(lines, 16)
	assert.Equal(t, NewPosition(0, 10), got)

	got = NewPosition(2, 5).moveLeft(lines, 32)
	assert.Equal(t, NewPosition(0, 5), got)
}

func TestPositionMoveLeftThroughEmptyLine(t *testing.T) {
	lines := newFakeLines(10, 0, 20, 6)

	got := NewPosition(2, 15).moveLeft(lines, 16)
	assert.Equal(t, NewPosition(1, 0), got)

	got = NewPosition(3, 5).moveLeft(lines, 32)
	assert.Equal(t, NewPosition(0, 6), got)
}

func TestPositionMoveLeftClampsAtBufferStart(t *testing.T) {
	lines := newFakeLines(10, 20)
	got := NewPosition(2, 5).moveLeft(lines, 69)
	assert.Equal(t, NewPosition(0, 0), got)
}

func TestPositionMoveRightClampsAtLineEnd(t *testing.T) {
	lines := newFakeLines(10)
	got := NewPosition(0, 8).moveRight(lines, 10)
	assert.Equal(t, NewPosition(0, 10), got)
}

func TestPositionMoveRightCrossesLines(t *testing.T) {
	lines := newFakeLines(10, 20, 6)
	got := NewPosition(0, 8).moveRight(lines, 5)
	assert.Equal(t, NewPosition(1, 2), got)
}

func TestPositionMoveDownStickyThroughShortLine(t *testing.T) {
	lines := newFakeLines(20, 5, 30)

	// Dipping through a short line remembers the original column.
	down := NewPosition(0, 20).moveDown(lines, 1)
	assert.Equal(t, uint(1), down.Line)
	assert.Equal(t, uint(5), down.Column)
	assert.True(t, down.HasSticky)
	assert.Equal(t, uint(20), down.StickyColumn)

	back := down.moveDown(lines, 1)
	assert.Equal(t, uint(2), back.Line)
	assert.Equal(t, uint(20), back.Column, "sticky column restored once the line is long enough")
	assert.False(t, back.HasSticky)
}

func TestPositionMoveUpDownNoDipNoSticky(t *testing.T) {
	lines := newFakeLines(20, 5, 30, 30, 30, 30, 10)
	got := NewPosition(2, 20).moveDown(lines, 1)
	assert.Equal(t, NewPosition(3, 20), got)
	assert.False(t, got.HasSticky)
}

func TestPositionMoveClampsLineCount(t *testing.T) {
	lines := newFakeLines(20, 5, 30)
	got := NewPosition(0, 0).moveDown(lines, 420)
	assert.Equal(t, uint(2), got.Line)
}

func TestPositionMoveEmptyBufferCollapses(t *testing.T) {
	var empty emptyLines
	for _, got := range []Position{
		NewPosition(5, 5).moveLeft(empty, 3),
		NewPosition(5, 5).moveRight(empty, 3),
		NewPosition(5, 5).moveUp(empty, 3),
		NewPosition(5, 5).moveDown(empty, 3),
	} {
		assert.Equal(t, NewPosition(0, 0), got)
	}
}

func TestPositionMoveZeroIsIdentity(t *testing.T) {
	lines := newFakeLines(10, 20)
	p := NewPosition(1, 5)
	assert.Equal(t, p, p.moveLeft(lines, 0))
	assert.Equal(t, p, p.moveRight(lines, 0))
	assert.Equal(t, p, p.moveUp(lines, 0))
	assert.Equal(t, p, p.moveDown(lines, 0))
}
