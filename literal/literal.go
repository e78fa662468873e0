// Package literal extracts required literal fragments from compiled glob
// patterns.
//
// Every Literal token in a pattern consumes its exact text contiguously, so
// that text must appear as a substring of any name the pattern matches.
// Collecting these fragments enables prefilter optimization: a name that
// contains none of a pattern's fragments can be rejected without running
// the matcher. The set package feeds fragments from many patterns into one
// Aho-Corasick automaton for multi-pattern filtering.
package literal

import (
	"github.com/coregx/goglob/syntax"
)

// Fragment is a literal byte sequence that must appear in every name a
// pattern matches. Complete indicates that the fragment is the entire
// pattern: matching it exactly is then equivalent to running the matcher.
type Fragment struct {
	// Text is the fragment's literal text.
	Text string

	// Complete is true when the pattern consists of this single literal
	// and nothing else.
	Complete bool
}

// Len returns the length of the fragment in bytes.
func (f Fragment) Len() int {
	return len(f.Text)
}

// Seq is the ordered sequence of required fragments of one pattern, in the
// order their Literal tokens appear.
type Seq struct {
	fragments []Fragment
}

// Extract collects the required literal fragments of a token sequence.
//
// Example:
//
//	tokens, _ := syntax.Scan("lib*.so.?")
//	seq := literal.Extract(tokens)
//	// fragments: "lib" and ".so." (neither Complete)
func Extract(tokens []syntax.Token) Seq {
	var fragments []Fragment
	for _, tok := range tokens {
		if lit, ok := tok.(syntax.Literal); ok {
			fragments = append(fragments, Fragment{
				Text:     string(lit),
				Complete: len(tokens) == 1,
			})
		}
	}
	return Seq{fragments: fragments}
}

// Len returns the number of fragments.
func (s Seq) Len() int {
	return len(s.fragments)
}

// IsEmpty reports whether the pattern has no required fragments, i.e. it is
// built entirely from wildcards and character classes.
func (s Seq) IsEmpty() bool {
	return len(s.fragments) == 0
}

// Get returns the i-th fragment.
func (s Seq) Get(i int) Fragment {
	return s.fragments[i]
}

// Longest returns the longest fragment, the most selective one to hand to a
// prefilter. ok is false when the sequence is empty. Ties keep the earliest
// fragment.
func (s Seq) Longest() (longest Fragment, ok bool) {
	for _, f := range s.fragments {
		if !ok || f.Len() > longest.Len() {
			longest, ok = f, true
		}
	}
	return longest, ok
}
