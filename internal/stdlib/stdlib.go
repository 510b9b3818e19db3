// Package stdlib embeds a small bundle of Lambda source files treated as
// ordinary parser input (spec.md §6.4): a read-only association of
// (filename, source-text) used as the seed corpus for resolution by
// higher layers. Lookup is the only contract; nothing here parses the
// files itself.
package stdlib

import (
	"embed"
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"
)

//go:embed files/*.lambda files/index.yaml
var bundle embed.FS

// indexEntry describes one bundled file (spec §6.4's one-line
// description per entry).
type indexEntry struct {
	File        string `yaml:"file"`
	Description string `yaml:"description"`
}

var index = loadIndex()

func loadIndex() map[string]string {
	data, err := bundle.ReadFile("files/index.yaml")
	if err != nil {
		return map[string]string{}
	}
	var entries []indexEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.File] = e.Description
	}
	return out
}

// Lookup returns the source text of a bundled file by name.
func Lookup(filename string) (string, bool) {
	data, err := bundle.ReadFile("files/" + filename)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Describe returns the index's one-line description of filename, if any.
func Describe(filename string) (string, bool) {
	d, ok := index[filename]
	return d, ok
}

// Files returns the bundled filenames in sorted order.
func Files() []string {
	entries, err := bundle.ReadDir("files")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.Name() == "index.yaml" {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

// String renders the bundle's catalog, one "file — description" line per
// entry, printed by `lambdac stdlib` when given no file argument.
func String() string {
	var s string
	for _, f := range Files() {
		desc, _ := Describe(f)
		if desc == "" {
			s += fmt.Sprintf("%s\n", f)
			continue
		}
		s += fmt.Sprintf("%s — %s\n", f, desc)
	}
	return s
}
