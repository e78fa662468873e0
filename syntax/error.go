package syntax

import "fmt"

// NoPos is the Error.Pos value for errors that have no meaningful position
// in the pattern text. Only KindEmptyPattern uses it.
const NoPos = -1

// ErrorKind identifies the category of a pattern syntax error. The set of
// kinds is closed; every error produced by Scan carries exactly one of them.
type ErrorKind int

const (
	// KindEmptyPattern: the pattern string is empty.
	KindEmptyPattern ErrorKind = iota

	// KindIllegalEscape: a '\' at the end of the pattern (or of a character
	// class) with nothing left to escape.
	KindIllegalEscape

	// KindInvalidRange: a character range whose upper bound is smaller than
	// its lower bound, e.g. [z-a].
	KindInvalidRange

	// KindUnclosedClass: a character class opened with '[' that never sees
	// its closing ']'.
	KindUnclosedClass

	// KindUnescapedChar: a special character in a position where it must be
	// escaped: ']' outside a class, a class that closes with zero members,
	// or a '-' that does not sit strictly between two class members.
	KindUnescapedChar
)

// Error describes a syntax error in a glob pattern.
//
// Pos is the byte offset of the offending character in the original pattern
// text: the backslash for escape errors, the opening '[' for unclosed
// classes, the closing ']' for empty classes, and the range's upper bound
// for inverted ranges. Pos is NoPos only for KindEmptyPattern.
//
// Matching never fails; all errors are detected during compilation.
type Error struct {
	Kind ErrorKind

	// Pos is a byte offset into the pattern, or NoPos.
	Pos int

	// Char is the offending character for KindUnescapedChar.
	Char rune

	// Lo and Hi are the range bounds for KindInvalidRange.
	Lo, Hi rune
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyPattern:
		return "empty pattern"
	case KindIllegalEscape:
		return fmt.Sprintf("illegal use of '\\' at %d: end of pattern", e.Pos)
	case KindInvalidRange:
		return fmt.Sprintf("invalid character range at %d: %c-%c", e.Pos, e.Lo, e.Hi)
	case KindUnclosedClass:
		return fmt.Sprintf("character class opened with '[' at %d isn't closed", e.Pos)
	case KindUnescapedChar:
		return fmt.Sprintf("special character %c at %d not escaped with '\\'", e.Char, e.Pos)
	}
	return fmt.Sprintf("unknown pattern error at %d", e.Pos)
}

// Position returns the byte offset of the error in the pattern text and
// whether the error has a position at all.
func (e *Error) Position() (int, bool) {
	return e.Pos, e.Pos != NoPos
}
