package goglob

import (
	"gopkg.in/yaml.v3"
)

// UnmarshalText compiles text as a glob pattern, replacing the receiver.
// It implements encoding.TextUnmarshaler, so a Pattern field decodes
// directly from a JSON string:
//
//	var cfg struct {
//	    Ignore goglob.Pattern `json:"ignore"`
//	}
//	json.Unmarshal([]byte(`{"ignore": "*.tmp"}`), &cfg)
//
// Deserialization is exactly Compile: an invalid pattern surfaces the same
// *syntax.Error a direct Compile call would return.
func (p *Pattern) UnmarshalText(text []byte) error {
	compiled, err := Compile(string(text))
	if err != nil {
		return err
	}
	*p = *compiled
	return nil
}

// MarshalText renders the canonical pattern text. It implements
// encoding.TextMarshaler; a marshal/unmarshal round trip yields an Equal
// pattern.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalYAML compiles a YAML scalar as a glob pattern. It implements
// yaml.Unmarshaler for gopkg.in/yaml.v3, which does not consult
// encoding.TextUnmarshaler on its own.
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	var pattern string
	if err := value.Decode(&pattern); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(pattern))
}

// MarshalYAML renders the canonical pattern text as a YAML scalar.
func (p Pattern) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}
