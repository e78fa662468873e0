package syntax

import "unicode/utf8"

// Scan compiles a glob pattern string into a token sequence.
//
// The pattern is consumed by Unicode code point while byte offsets are
// tracked for error reporting. Each pass of the main loop collects, in
// order: a run of '*' (collapsed into one SeqWildcard), a run of literal
// characters (one Literal), a run of '?' (one SingleWildcard each), and at
// most one '[...]' character class. Scanning is deterministic: the same
// pattern always yields an Equal token sequence.
//
// On failure the returned error is a *Error carrying the kind and the byte
// offset of the offending character.
func Scan(pattern string) ([]Token, error) {
	if pattern == "" {
		return nil, &Error{Kind: KindEmptyPattern, Pos: NoPos}
	}

	s := scanner{pattern: pattern}
	var tokens []Token
	for !s.eof() {
		// Star wildcards (e.g. '*ab?cd[e-z]*')
		//                       ^          ^
		stars := false
		for !s.eof() && s.peek() == '*' {
			stars = true
			s.next()
		}
		if stars {
			tokens = append(tokens, SeqWildcard{})
		}

		// Literals (e.g. '*ab?cd[e-z]*')
		//                  ^^ ^^
		var lit []byte
	literalRun:
		for !s.eof() {
			i := s.pos
			switch c := s.peek(); c {
			case ']':
				// No class is open here, so ']' must be escaped.
				return nil, &Error{Kind: KindUnescapedChar, Pos: i, Char: ']'}
			case '[', '?', '*':
				// '[' opens a character class, '?' and '*' are
				// wildcards; each ends the current literal run.
				break literalRun
			case '\\':
				// '\' escapes the next character, whichever it is.
				s.next()
				if s.eof() {
					return nil, &Error{Kind: KindIllegalEscape, Pos: i}
				}
				_, esc := s.next()
				lit = utf8.AppendRune(lit, esc)
			default:
				s.next()
				lit = utf8.AppendRune(lit, c)
			}
		}
		if len(lit) > 0 {
			tokens = append(tokens, Literal(lit))
		}

		// Question-mark wildcards (e.g. '*ab?cd[e-z]*')
		//                                   ^
		for !s.eof() && s.peek() == '?' {
			tokens = append(tokens, SingleWildcard{})
			s.next()
		}

		// Character class (e.g. '*ab?cd[e-z]*')
		//                              ^^^^^
		if !s.eof() && s.peek() == '[' {
			cc, err := s.scanClass()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, cc)
		}
	}
	return tokens, nil
}

// scanner is a rune cursor over the pattern text. pos is the byte offset of
// the next rune to read; it is what error positions are made of.
type scanner struct {
	pattern string
	pos     int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.pattern)
}

// peek returns the rune at the cursor without consuming it. Must not be
// called at end of input.
func (s *scanner) peek() rune {
	c, _ := utf8.DecodeRuneInString(s.pattern[s.pos:])
	return c
}

// next consumes the rune at the cursor, returning it together with its byte
// offset. Must not be called at end of input.
func (s *scanner) next() (pos int, c rune) {
	c, size := utf8.DecodeRuneInString(s.pattern[s.pos:])
	pos = s.pos
	s.pos += size
	return pos, c
}

// scanClass parses one '[...]' character class. The cursor sits on the
// opening '[' when called and just past the closing ']' on success.
func (s *scanner) scanClass() (CharClass, error) {
	startPos, _ := s.next() // '['

	var cc CharClass

	// Leading negation (e.g. '[^A-F]')
	//                          ^
	if !s.eof() && s.peek() == '^' {
		cc.Negated = true
		s.next()
	}

	var (
		closed    bool
		closedPos int
		rangeLo   rune
		inRange   bool // a pending range: rangeLo is set, the next atom is the upper bound
		dashNext  bool // the '-' introducing that pending range is the next character
	)
scan:
	for !s.eof() {
		i, c := s.next()
		var atom rune
		switch {
		case c == ']':
			closed = true
			closedPos = i
			break scan
		case c == '-' && !dashNext:
			// Illegal uses of '-': as the first member, right after
			// another '-', or right after a completed range. A literal
			// '-' must be escaped (e.g. [a-f\-z]).
			return CharClass{}, &Error{Kind: KindUnescapedChar, Pos: i, Char: '-'}
		case c == '-':
			// The '-' of a pending range.
			dashNext = false
			continue
		case c == '\\':
			// '\' escapes the next character, whichever it is.
			if s.eof() {
				return CharClass{}, &Error{Kind: KindIllegalEscape, Pos: i}
			}
			_, atom = s.next()
		default:
			// Includes '^': once the class is started (and optionally
			// negated), '^' is an ordinary member character.
			atom = c
		}

		switch {
		case inRange:
			if rangeLo > atom {
				return CharClass{}, &Error{Kind: KindInvalidRange, Pos: i, Lo: rangeLo, Hi: atom}
			}
			cc.Items = append(cc.Items, ClassItem{Lo: rangeLo, Hi: atom})
			inRange = false
		case !s.eof() && s.peek() == '-':
			// Range lower bound (e.g. [0-9abcdefA-F])
			//                          ^        ^
			rangeLo = atom
			inRange = true
			dashNext = true
		default:
			cc.Items = append(cc.Items, ClassItem{Lo: atom, Hi: atom})
		}
	}

	if !closed {
		return CharClass{}, &Error{Kind: KindUnclosedClass, Pos: startPos}
	}

	// A ']' directly after '[' or '[^' closes the class, it is never a
	// member, so the class came out empty (e.g. []a] or [^]a]). A literal
	// ']' member must be escaped (e.g. [\]a]).
	if len(cc.Items) == 0 {
		return CharClass{}, &Error{Kind: KindUnescapedChar, Pos: closedPos, Char: ']'}
	}
	return cc, nil
}
