// Package manifest loads and writes the project manifest (`lambda.yaml`):
// the package a build starts from, where its sources live, and a
// comment-preservation setting. The CLI only writes it (`lambdac init`);
// the lexer does not read the setting and always discards comments.
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Manifest is the typed shape of lambda.yaml.
type Manifest struct {
	Package          string   `yaml:"package"`
	Sources          []string `yaml:"sources"`
	PreserveComments bool     `yaml:"preserveComments"`
}

// Default returns the manifest written by `lambdac init`.
func Default() *Manifest {
	return &Manifest{
		Package:          "app.main",
		Sources:          []string{"src"},
		PreserveComments: false,
	}
}

// Load reads and parses a manifest file, stripping a leading UTF-8/16
// byte-order mark if present. The lexer has no such handling: it rejects
// a leading U+FEFF in source text as an invalid character.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	decoded, err := stripBOM(raw)
	if err != nil {
		return nil, fmt.Errorf("manifest: decode %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(decoded, &m); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	if m.Package == "" {
		return nil, fmt.Errorf("manifest: %s: missing required field %q", path, "package")
	}
	if len(m.Sources) == 0 {
		m.Sources = []string{"src"}
	}
	return &m, nil
}

// stripBOM decodes raw bytes through a BOM-sniffing transformer so a
// manifest saved with a UTF-8 or UTF-16 byte-order mark parses the same
// as one without.
func stripBOM(raw []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := transform.NewReader(bytes.NewReader(raw), decoder)
	return io.ReadAll(reader)
}

// Marshal renders a Manifest back to YAML text, used by `lambdac init`.
func (m *Manifest) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("manifest: marshal: %w", err)
	}
	return out, nil
}

// WriteFile marshals m and writes it to path.
func (m *Manifest) WriteFile(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}
