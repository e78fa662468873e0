package main

import (
	"fmt"
	"go/token"
	"io"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/coregx/goglob/syntax"
)

// Manifest describes the patterns to generate.
type Manifest struct {
	// Package is the package clause of the generated file.
	Package string `yaml:"package"`

	// Patterns maps exported variable names to glob pattern text.
	Patterns map[string]string `yaml:"patterns"`
}

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !token.IsIdentifier(m.Package) {
		return nil, fmt.Errorf("%s: package %q is not a valid identifier", path, m.Package)
	}
	if len(m.Patterns) == 0 {
		return nil, fmt.Errorf("%s: no patterns", path)
	}
	for name := range m.Patterns {
		if !token.IsIdentifier(name) {
			return nil, fmt.Errorf("%s: pattern name %q is not a valid identifier", path, name)
		}
	}
	return &m, nil
}

// Generate compiles every manifest pattern and writes the generated source
// to w. Output is deterministic: entries are emitted sorted by name.
func Generate(w io.Writer, m *Manifest) error {
	names := make([]string, 0, len(m.Patterns))
	for name := range m.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf []byte
	buf = append(buf, "// Code generated by globgen. DO NOT EDIT.\n\n"...)
	buf = append(buf, "package "+m.Package+"\n\n"...)
	buf = append(buf, "import (\n"...)
	buf = append(buf, "\t\"github.com/coregx/goglob\"\n"...)
	buf = append(buf, "\t\"github.com/coregx/goglob/syntax\"\n"...)
	buf = append(buf, ")\n"...)

	for _, name := range names {
		pattern := m.Patterns[name]
		tokens, err := syntax.Scan(pattern)
		if err != nil {
			return fmt.Errorf("pattern %s (%q): %w", name, pattern, err)
		}

		buf = append(buf, fmt.Sprintf("\n// %s matches %q.\nvar %s = goglob.FromTokens(\n", name, pattern, name)...)
		for _, tok := range tokens {
			buf = append(buf, '\t')
			buf = appendToken(buf, tok)
			buf = append(buf, ",\n"...)
		}
		buf = append(buf, ")\n"...)
	}

	_, err := w.Write(buf)
	return err
}

// appendToken renders one token as a Go expression.
func appendToken(dst []byte, tok syntax.Token) []byte {
	switch t := tok.(type) {
	case syntax.Literal:
		return append(dst, "syntax.Literal("+strconv.Quote(string(t))+")"...)
	case syntax.SingleWildcard:
		return append(dst, "syntax.SingleWildcard{}"...)
	case syntax.SeqWildcard:
		return append(dst, "syntax.SeqWildcard{}"...)
	case syntax.CharClass:
		dst = append(dst, "syntax.CharClass{"...)
		if t.Negated {
			dst = append(dst, "Negated: true, "...)
		}
		dst = append(dst, "Items: []syntax.ClassItem{"...)
		for i, it := range t.Items {
			if i > 0 {
				dst = append(dst, ", "...)
			}
			dst = append(dst, "{Lo: "+strconv.QuoteRune(it.Lo)+", Hi: "+strconv.QuoteRune(it.Hi)+"}"...)
		}
		return append(dst, "}}"...)
	}
	panic(fmt.Sprintf("globgen: unknown token %T", tok))
}
