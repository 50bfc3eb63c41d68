// Package document wraps rendered rows in header and footer templates.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dictionary maps template tokens to language-specific strings. Tokens are
// applied in the order they appear in the source file.
type Dictionary struct {
	tokens  []string
	strings map[string]string
}

// DictionaryPath returns the location of the dictionary for lang in dir.
func DictionaryPath(dir, lang string) string {
	return filepath.Join(dir, "strings-"+lang+".yaml")
}

// LoadDictionary reads a YAML mapping of token to replacement.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: read dictionary %s: %w", path, err)
	}
	dict, err := ParseDictionary(data)
	if err != nil {
		return nil, fmt.Errorf("document: parse dictionary %s: %w", path, err)
	}
	return dict, nil
}

// ParseDictionary decodes dictionary content. Anything other than a mapping
// of scalar keys to scalar values is rejected.
func ParseDictionary(data []byte) (*Dictionary, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	dict := &Dictionary{strings: map[string]string{}}
	if len(doc.Content) == 0 {
		return dict, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of tokens", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: token and replacement must be plain strings", key.Line)
		}
		if key.Value == "" {
			return nil, fmt.Errorf("line %d: empty token", key.Line)
		}
		if _, dup := dict.strings[key.Value]; dup {
			return nil, fmt.Errorf("line %d: duplicate token %q", key.Line, key.Value)
		}
		dict.tokens = append(dict.tokens, key.Value)
		dict.strings[key.Value] = value.Value
	}
	return dict, nil
}

// Tokens returns the tokens in substitution order.
func (d *Dictionary) Tokens() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.tokens...)
}

// Lookup returns the replacement for token.
func (d *Dictionary) Lookup(token string) (string, bool) {
	if d == nil {
		return "", false
	}
	s, ok := d.strings[token]
	return s, ok
}

// Apply replaces every token occurring in line.
func (d *Dictionary) Apply(line string) string {
	if d == nil {
		return line
	}
	for _, token := range d.tokens {
		line = strings.ReplaceAll(line, token, d.strings[token])
	}
	return line
}
