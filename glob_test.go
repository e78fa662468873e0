package goglob

import (
	"testing"

	"github.com/coregx/goglob/syntax"
)

// TestCompile tests basic compilation.
func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"literal", "hello", false},
		{"wildcards", "a*b?c", false},
		{"class", "ab[^e-g]", false},
		{"escapes", `a\*b`, false},
		{"empty", "", true},
		{"unclosed class", "a[", true},
		{"bare bracket", "x]", true},
		{"trailing escape", `abc\`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Compile(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
				return
			}
			if !tt.wantErr && p == nil {
				t.Errorf("Compile(%q) returned nil", tt.pattern)
			}
		})
	}
}

// TestCompileError: errors surface as *syntax.Error with kind and offset.
func TestCompileError(t *testing.T) {
	_, err := Compile("a[")
	serr, ok := err.(*syntax.Error)
	if !ok {
		t.Fatalf("Compile(a[) error type = %T, want *syntax.Error", err)
	}
	if serr.Kind != syntax.KindUnclosedClass || serr.Pos != 1 {
		t.Errorf("Compile(a[) error = %+v, want unclosed class at 1", serr)
	}
}

// TestMustCompile tests panic on invalid pattern.
func TestMustCompile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile() did not panic on invalid pattern")
		}
	}()

	MustCompile("a[") // Should panic
}

// TestPatternMatch tests matching through the public API.
func TestPatternMatch(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"*", "abc", true},
		{"a*", "abc", true},
		{"a*", "ab/c", false},
		{"a*/b", "a/c/b", false},
		{"a*b*c*d*e*/f", "axbxcxdxe/f", true},
		{"ab[^e-g]", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			if got := p.Match(tt.input); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestPatternEqual: compiling the same text twice yields Equal patterns,
// different texts generally do not.
func TestPatternEqual(t *testing.T) {
	a1 := MustCompile("a*[x-z]")
	a2 := MustCompile("a*[x-z]")
	b := MustCompile("a*[x-y]")

	if !a1.Equal(a2) {
		t.Error("patterns from identical text compare unequal")
	}
	if a1.Equal(b) {
		t.Error("distinct patterns compare equal")
	}
	if !a1.Equal(a1) {
		t.Error("pattern unequal to itself")
	}

	var nilPattern *Pattern
	if a1.Equal(nilPattern) || nilPattern.Equal(a1) {
		t.Error("nil pattern compares equal to non-nil")
	}
}

// TestFromTokens: a pattern built from embedded token data behaves and
// compares exactly like its compiled twin.
func TestFromTokens(t *testing.T) {
	compiled := MustCompile("a*b[0-9]")
	embedded := FromTokens(
		syntax.Literal("a"),
		syntax.SeqWildcard{},
		syntax.Literal("b"),
		syntax.CharClass{Items: []syntax.ClassItem{{Lo: '0', Hi: '9'}}},
	)

	if !compiled.Equal(embedded) {
		t.Fatal("FromTokens pattern unequal to Compile pattern")
	}
	for _, name := range []string{"ab5", "axxb0", "ab", "a/b1"} {
		if compiled.Match(name) != embedded.Match(name) {
			t.Errorf("Match(%q) differs between compiled and embedded pattern", name)
		}
	}
}

func TestFromTokensEmpty(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("FromTokens() did not panic on empty token sequence")
		}
	}()

	FromTokens() // Should panic
}

/// TestTokensCopy: mutating the slice returned by Tokens must not affect
// the pattern.
func TestTokensCopy(t *testing.T) {
	p := MustCompile("a*b")
	tokens := p.Tokens()
	tokens[0] = syntax.Literal("zzz")
	if !p.Equal(MustCompile("a*b")) {
		t.Error("mutating Tokens() result changed the pattern")
	}
}

// TestPatternString: the canonical rendering re-compiles to an Equal
// pattern and re-escapes special characters.
func TestPatternString(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"abc", "abc"},
		{`a\*b`, `a\*b`},
		{"***", "*"},
		{"[a-f]", "[a-f]"},
		{`[\]x]`, `[\]x]`},
		{"[^a]", "[^a]"},
	}
	for _, tt := range tests {
		p := MustCompile(tt.pattern)
		if got := p.String(); got != tt.want {
			t.Errorf("String() of %q = %q, want %q", tt.pattern, got, tt.want)
		}
		if !p.Equal(MustCompile(p.String())) {
			t.Errorf("re-compiling String() of %q changed the pattern", tt.pattern)
		}
	}
}

// TestPatternConcurrent: a compiled pattern is safe for unsynchronized
// concurrent matching.
func TestPatternConcurrent(t *testing.T) {
	p := MustCompile("a*b*c*d*e*/f")
	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			ok := true
			for j := 0; j < 1000; j++ {
				ok = ok && p.Match("axbxcxdxe/f") && !p.Match("axbxcxdxe/g")
			}
			done <- ok
		}()
	}
	for i := 0; i < 8; i++ {
		if !<-done {
			t.Fatal("concurrent matching produced a wrong result")
		}
	}
}
