// Package selections implements the storage engine behind a modal,
// Kakoune-style editor's cursor state: a sorted, non-overlapping set of
// selections plus the insertion, deletion and movement operations that
// keep it that way while reporting every change as a delta log.
//
// The package owns no buffer text, no undo history and no rendering. It
// consumes line lengths through the LineLength capability and otherwise
// works purely in terms of (line, column) coordinates.
package selections

// LineLength is the read-only capability SelectionStorage borrows from
// the text buffer to resolve movement across line boundaries. It must
// not mutate concurrently with a movement call on the same storage.
type LineLength interface {
	// LengthOf returns the length of line, excluding any newline. ok is
	// false if line is out of bounds.
	LengthOf(line uint) (length uint, ok bool)

	// LineCount returns the total number of lines, which may be 0 for an
	// empty buffer.
	LineCount() uint
}

// DebugAssertions gates the invariant walk that runs at the end of every
// mutating SelectionStorage operation. It defaults to false so production
// embedders don't pay for the extra checking; test files in this package
// flip it on in an init so invariant violations fail loudly during
// development.
var DebugAssertions = false
