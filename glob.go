// Package goglob provides shell pattern matching similar to Go's path.Match.
//
// A pattern is compiled once into an immutable token sequence and can then
// be matched against any number of candidate strings:
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
// Match requires the pattern to match all of the name, not just a
// substring, and wildcards never cross a '/' path separator.
//
// Basic usage:
//
//	p, err := goglob.Compile("a*b*c*d*e*/f")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Match("axbxcxdxe/f") // true
//
// Syntax errors are reported with the byte offset of the offending
// character; see the syntax package for the error taxonomy. Matching never
// fails, it only returns false.
//
// Patterns fixed at build time can be pre-compiled with the globgen tool
// (cmd/globgen), which runs the same compiler during a build step and emits
// the token sequence as constant data via FromTokens.
package goglob

import (
	"github.com/coregx/goglob/syntax"
)

// Pattern is a compiled glob pattern: an immutable, non-empty sequence of
// tokens produced by the compiler.
//
// A Pattern holds no mutable state and is safe for concurrent use by any
// number of goroutines. Matching allocates nothing.
type Pattern struct {
	tokens []syntax.Token
}

// Compile compiles a glob pattern into a Pattern.
//
// The returned error, if any, is a *syntax.Error carrying the error kind
// and the byte offset of the offending character.
//
// Example:
//
//	p, err := goglob.Compile("ab[^e-g]")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Match("abc") // true
func Compile(pattern string) (*Pattern, error) {
	tokens, err := syntax.Scan(pattern)
	if err != nil {
		return nil, err
	}
	return &Pattern{tokens: tokens}, nil
}

// MustCompile compiles a glob pattern and panics if it fails.
//
// This is useful for patterns known to be valid at program start:
//
//	var configGlob = goglob.MustCompile("*.conf")
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("goglob: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// FromTokens constructs a Pattern directly from a token sequence.
//
// It exists for code generated by globgen, which compiles pattern text at
// build time and embeds the resulting tokens as constant data; the Pattern
// it yields is indistinguishable, by matching behavior and equality, from
// one produced by Compile on the same text.
//
// The slice is retained without copying, so the caller must not modify it
// afterwards. The tokens must satisfy the compiler's invariants: at least
// one token, and no two adjacent SeqWildcards. FromTokens panics on an
// empty sequence, as Compile does on an empty pattern.
func FromTokens(tokens ...syntax.Token) *Pattern {
	if len(tokens) == 0 {
		panic("goglob: FromTokens called with no tokens")
	}
	return &Pattern{tokens: tokens}
}

// Match reports whether name matches the pattern in its entirety.
//
// Example:
//
//	p := goglob.MustCompile("a*")
//	p.Match("abc")  // true
//	p.Match("ab/c") // false: '*' never crosses '/'
func (p *Pattern) Match(name string) bool {
	return syntax.Match(p.tokens, name)
}

// String renders the pattern as canonical pattern text. Compiling the
// result yields a Pattern Equal to p; the text may differ from the source
// the pattern was compiled from only in its choice of escapes.
func (p *Pattern) String() string {
	return syntax.String(p.tokens)
}

// Equal reports whether two patterns compile to the same token sequence.
// Compiling the same pattern text twice always yields Equal patterns.
func (p *Pattern) Equal(other *Pattern) bool {
	if p == nil || other == nil {
		return p == other
	}
	return syntax.Equal(p.tokens, other.tokens)
}

// Tokens returns a copy of the pattern's token sequence.
func (p *Pattern) Tokens() []syntax.Token {
	tokens := make([]syntax.Token, len(p.tokens))
	copy(tokens, p.tokens)
	return tokens
}
