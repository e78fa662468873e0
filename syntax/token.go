// Package syntax implements the glob pattern compiler and matcher.
//
// A pattern string is compiled by Scan into an ordered sequence of tokens:
//
//	pattern:
//	    { term }
//	term:
//	    '*'         matches any sequence of non-/ characters
//	    '?'         matches any single non-/ character
//	    '[' [ '^' ] { character-range } ']'
//	                character class (must be non-empty)
//	    c           matches character c (c != '*', '?', '\\', '[')
//	    '\\' c      matches character c
//	character-range:
//	    c           matches character c (c != '\\', '-', ']')
//	    '\\' c      matches character c
//	    lo '-' hi   matches character c for lo <= c <= hi
//
// Match then evaluates a token sequence against a candidate string. The
// pattern must match all of the candidate, not just a substring, and no
// wildcard ever crosses a '/' path separator. The semantics are those of
// Go's path.Match.
//
// Most users should use the parent goglob package, which wraps a token
// sequence in an immutable Pattern.
package syntax

import (
	"strings"
	"unicode/utf8"
)

// Token is one element of a compiled glob pattern.
//
// The set of implementations is closed: Literal, CharClass, SingleWildcard
// and SeqWildcard. Tokens are immutable values; a []Token produced by Scan
// is never mutated afterwards.
type Token interface {
	// matchNext attempts to consume this token from the front of name,
	// returning the unconsumed suffix. ok is false if the token does not
	// match at the front of name. SeqWildcard has no deterministic
	// consumption and panics; Match handles it separately.
	matchNext(name string) (rest string, ok bool)

	// appendPattern appends the canonical pattern text for this token.
	// Scanning the appended text reproduces an equal token.
	appendPattern(dst []byte) []byte

	// equal reports whether other is the same token value.
	equal(other Token) bool
}

// Literal matches its exact text at the front of the candidate.
//
// The scanner accumulates maximal runs of literal characters (with escapes
// resolved) into a single Literal token, so a Literal is never empty.
type Literal string

func (l Literal) matchNext(name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, string(l))
	if !ok {
		return "", false
	}
	return rest, true
}

func (l Literal) appendPattern(dst []byte) []byte {
	for _, c := range string(l) {
		switch c {
		case '*', '?', '[', ']', '\\':
			dst = append(dst, '\\')
		}
		dst = utf8.AppendRune(dst, c)
	}
	return dst
}

func (l Literal) equal(other Token) bool {
	o, ok := other.(Literal)
	return ok && o == l
}

// ClassItem is a single member of a character class: one character when
// Lo == Hi, otherwise the inclusive range Lo-Hi. Lo <= Hi always holds;
// Scan rejects inverted ranges with ErrorKind KindInvalidRange.
type ClassItem struct {
	Lo, Hi rune
}

// contains reports whether c falls within the item.
func (it ClassItem) contains(c rune) bool {
	return it.Lo <= c && c <= it.Hi
}

// CharClass matches exactly one non-empty character against a possibly
// negated set of characters and inclusive ranges.
//
// Items preserves the order the members appeared in the pattern text. The
// order is irrelevant to matching and only affects equality and canonical
// re-rendering. Items is never empty; Scan rejects empty classes.
type CharClass struct {
	Negated bool
	Items   []ClassItem
}

// matchRune reports whether the class accepts c: membership in any item,
// XOR-ed with the negation flag.
func (cc CharClass) matchRune(c rune) bool {
	for _, it := range cc.Items {
		if it.contains(c) {
			return !cc.Negated
		}
	}
	return cc.Negated
}

func (cc CharClass) matchNext(name string) (string, bool) {
	c, size := utf8.DecodeRuneInString(name)
	if size == 0 || !cc.matchRune(c) {
		return "", false
	}
	return name[size:], true
}

func (cc CharClass) appendPattern(dst []byte) []byte {
	dst = append(dst, '[')
	if cc.Negated {
		dst = append(dst, '^')
	}
	for _, it := range cc.Items {
		dst = appendClassRune(dst, it.Lo)
		if it.Hi != it.Lo {
			dst = append(dst, '-')
			dst = appendClassRune(dst, it.Hi)
		}
	}
	return append(dst, ']')
}

// appendClassRune appends c escaped so that it is always read back as a
// class member character, never as class syntax.
func appendClassRune(dst []byte, c rune) []byte {
	switch c {
	case '\\', ']', '-', '^':
		dst = append(dst, '\\')
	}
	return utf8.AppendRune(dst, c)
}

func (cc CharClass) equal(other Token) bool {
	o, ok := other.(CharClass)
	if !ok || o.Negated != cc.Negated || len(o.Items) != len(cc.Items) {
		return false
	}
	for i, it := range cc.Items {
		if o.Items[i] != it {
			return false
		}
	}
	return true
}

// SingleWildcard is the '?' token: it matches exactly one character that is
// not '/'.
type SingleWildcard struct{}

func (SingleWildcard) matchNext(name string) (string, bool) {
	c, size := utf8.DecodeRuneInString(name)
	if size == 0 || c == '/' {
		return "", false
	}
	return name[size:], true
}

func (SingleWildcard) appendPattern(dst []byte) []byte {
	return append(dst, '?')
}

func (SingleWildcard) equal(other Token) bool {
	_, ok := other.(SingleWildcard)
	return ok
}

// SeqWildcard is the token produced from a run of one or more consecutive
// '*' characters: it matches any sequence of non-/ characters, including
// the empty sequence. Scan collapses a run of stars into a single
// SeqWildcard, so two SeqWildcards are never adjacent.
type SeqWildcard struct{}

func (SeqWildcard) matchNext(string) (string, bool) {
	// Match resolves SeqWildcard by searching split offsets; a direct
	// deterministic consumption does not exist.
	panic("syntax: SeqWildcard has no deterministic match")
}

func (SeqWildcard) appendPattern(dst []byte) []byte {
	return append(dst, '*')
}

func (SeqWildcard) equal(other Token) bool {
	_, ok := other.(SeqWildcard)
	return ok
}

// Equal reports whether two token sequences are value-equal. Scanning the
// same pattern twice always yields Equal sequences.
func Equal(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i, tok := range a {
		if !tok.equal(b[i]) {
			return false
		}
	}
	return true
}

// String renders a token sequence as canonical pattern text. Scanning the
// result yields a sequence Equal to tokens.
func String(tokens []Token) string {
	var dst []byte
	for _, tok := range tokens {
		dst = tok.appendPattern(dst)
	}
	return string(dst)
}
