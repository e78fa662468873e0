package syntax

import "strings"

// Match reports whether the token sequence matches name in its entirety.
// It is total and pure: it never fails and allocates nothing.
//
// Literal, CharClass and SingleWildcard tokens consume deterministically;
// a mismatch on one of them fails the whole match immediately. SeqWildcard
// is the one non-deterministic choice point: it is resolved by an iterative
// search over candidate split offsets into the remaining string, trying
// offsets left to right and committing to the first one at which the
// following segment (the tokens up to the next SeqWildcard, or the end)
// matches. The search never considers an offset past a '/', since a
// sequence wildcard cannot cross a path separator. Once a later phase
// begins, an earlier SeqWildcard is never revisited; the remaining tokens
// are deterministic up to the next choice point, so no match is lost.
func Match(tokens []Token, name string) bool {
	rest := name
	for ti := 0; ti < len(tokens); ti++ {
		if _, isSeq := tokens[ti].(SeqWildcard); !isSeq {
			r, ok := tokens[ti].matchNext(rest)
			if !ok {
				return false
			}
			rest = r
			continue
		}

		// A trailing SeqWildcard swallows the whole remainder, provided
		// it stays within the current path segment.
		if ti == len(tokens)-1 {
			return !strings.ContainsRune(rest, '/')
		}

		// The segment: tokens after the SeqWildcard, up to the next
		// SeqWildcard or the end of the sequence.
		segEnd := len(tokens)
		for k := ti + 1; k < len(tokens); k++ {
			if _, ok := tokens[k].(SeqWildcard); ok {
				segEnd = k
				break
			}
		}
		seg := tokens[ti+1 : segEnd]

		// Try split offsets 0, 1, 2, ... (rune boundaries) into rest.
		// Each attempt evaluates the segment against a fresh suffix, so
		// a failed offset leaves the outer state untouched.
		committed := false
		for i, c := range rest {
			segRest, ok := matchSegment(seg, rest[i:])
			if ok {
				if segEnd == len(tokens) {
					// No tokens after the segment: the match
					// succeeds only if nothing is left over.
					// Otherwise keep searching further offsets.
					if segRest == "" {
						return true
					}
				} else {
					// Another SeqWildcard follows: commit this
					// split and resume the main loop there.
					rest = segRest
					ti = segEnd - 1
					committed = true
					break
				}
			}
			if c == '/' {
				// The wildcard may not skip past a separator.
				break
			}
		}
		if !committed {
			return false
		}
	}
	return rest == ""
}

// matchSegment consumes the SeqWildcard-free tokens of seg from the front
// of name, returning the unconsumed suffix.
func matchSegment(seg []Token, name string) (string, bool) {
	rest := name
	for _, tok := range seg {
		r, ok := tok.matchNext(rest)
		if !ok {
			return "", false
		}
		rest = r
	}
	return rest, true
}
