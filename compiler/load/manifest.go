package load

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Manifest is the on-disk form of a compilation unit's declarations,
// produced by the host build pipeline. JSON and YAML are accepted.
type Manifest struct {
	Classes []*ClassDecl `json:"classes,omitempty" yaml:"classes,omitempty"`
	Enums   []*EnumDecl  `json:"enums,omitempty" yaml:"enums,omitempty"`
}

// DecodeManifest decodes a manifest from its serialized form. The
// format is inferred from the first non-space byte: YAML unless the
// document is a JSON object.
func DecodeManifest(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if isJSON(data) {
		if err := json.Unmarshal(data, m); err != nil {
			return nil, fmt.Errorf("load: parse manifest: %w", err)
		}
		return m, nil
	}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("load: parse manifest: %w", err)
	}
	return m, nil
}

// EncodeManifest serializes a manifest to JSON, the interchange form
// between the host pipeline and the generator.
func EncodeManifest(m *Manifest) ([]byte, error) {
	return json.Marshal(m)
}

// ReadManifest reads and decodes a single manifest file.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read manifest %q: %w", path, err)
	}
	m, err := DecodeManifest(data)
	if err != nil {
		return nil, fmt.Errorf("load: manifest %q: %w", path, err)
	}
	return m, nil
}

// ReadDir reads every manifest under the given path. A file path reads
// one manifest; a directory reads all .json, .yaml and .yml files in
// lexical order so declaration order stays deterministic.
func ReadDir(path string) (*Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if !info.IsDir() {
		return ReadManifest(path)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".json", ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	merged := &Manifest{}
	for _, name := range names {
		m, err := ReadManifest(filepath.Join(path, name))
		if err != nil {
			return nil, err
		}
		merged.Classes = append(merged.Classes, m.Classes...)
		merged.Enums = append(merged.Enums, m.Enums...)
	}
	return merged, nil
}

// Package links the manifest's declarations and validates them.
func (m *Manifest) Package() (*Package, error) {
	p, err := NewPackage(m.Classes, m.Enums)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// isJSON reports whether the document starts a JSON object or array.
func isJSON(data []byte) bool {
	s := strings.TrimLeft(string(data), " \t\r\n")
	return strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")
}
