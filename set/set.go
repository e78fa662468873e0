// Package set provides matching a name against many glob patterns at once.
//
// A Set compiles its patterns up front and then answers which of them match
// a given name. Before running the full matcher it applies two filters
// derived from the patterns' required literal fragments:
//
//   - patterns that are a single complete literal are resolved by exact
//     lookup, never by the matcher;
//   - the remaining patterns are gated by one Aho-Corasick automaton built
//     over each pattern's longest required fragment. If the automaton finds
//     no fragment in the name, no such pattern can match and the matcher is
//     skipped entirely.
//
// The gate is sound because every Literal token's text must appear
// contiguously in any name its pattern matches. It is only built when every
// gated pattern has at least one fragment; a wildcard-only pattern would
// make the gate meaningless.
package set

import (
	"fmt"
	"sort"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/goglob"
	"github.com/coregx/goglob/literal"
)

// Set matches a name against a fixed collection of glob patterns.
//
// A Set is immutable after New and safe for concurrent use.
type Set struct {
	patterns []*goglob.Pattern

	// exact maps the text of complete-literal patterns to their indices.
	exact map[string][]int

	// general holds the indices that need the full matcher.
	general []int

	// auto gates the general patterns by required fragment, or is nil
	// when the gate cannot be built.
	auto *ahocorasick.Automaton
}

// New compiles the given patterns into a Set. A syntax error in any pattern
// fails the whole construction, identifying the pattern by index and text.
func New(patterns ...string) (*Set, error) {
	s := &Set{exact: make(map[string][]int)}

	var fragments [][]byte
	gateComplete := true
	for i, src := range patterns {
		p, err := goglob.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("set: pattern %d %q: %w", i, src, err)
		}
		s.patterns = append(s.patterns, p)

		seq := literal.Extract(p.Tokens())
		longest, ok := seq.Longest()
		if ok && longest.Complete {
			s.exact[longest.Text] = append(s.exact[longest.Text], i)
			continue
		}
		s.general = append(s.general, i)
		if !ok {
			gateComplete = false
			continue
		}
		fragments = append(fragments, []byte(longest.Text))
	}

	if gateComplete && len(fragments) > 0 {
		builder := ahocorasick.NewBuilder()
		for _, f := range fragments {
			builder.AddPattern(f)
		}
		// On build failure fall back to plain per-pattern matching.
		if auto, err := builder.Build(); err == nil {
			s.auto = auto
		}
	}
	return s, nil
}

// MustNew compiles the given patterns into a Set and panics on a syntax
// error. Useful for pattern lists known at program start.
func MustNew(patterns ...string) *Set {
	s, err := New(patterns...)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Pattern returns the i-th compiled pattern, in the order passed to New.
func (s *Set) Pattern(i int) *goglob.Pattern {
	return s.patterns[i]
}

// Match reports whether any pattern in the set matches name.
func (s *Set) Match(name string) bool {
	if len(s.exact[name]) > 0 {
		return true
	}
	if len(s.general) == 0 {
		return false
	}
	if s.auto != nil && !s.auto.IsMatch([]byte(name)) {
		return false
	}
	for _, i := range s.general {
		if s.patterns[i].Match(name) {
			return true
		}
	}
	return false
}

// Matching returns the indices, in ascending order, of all patterns that
// match name. It returns nil when none do.
func (s *Set) Matching(name string) []int {
	var out []int
	out = append(out, s.exact[name]...)
	if len(s.general) > 0 && (s.auto == nil || s.auto.IsMatch([]byte(name))) {
		for _, i := range s.general {
			if s.patterns[i].Match(name) {
				out = append(out, i)
			}
		}
	}
	sort.Ints(out)
	return out
}
