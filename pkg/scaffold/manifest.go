// Package scaffold creates new solver packages from templates and registers
// them in the workspace manifest.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the workspace manifest at the repository root.
const ManifestFile = "aoc.yaml"

// ExpectedPackage is the package name the manifest must declare.
const ExpectedPackage = "aoc2021"

var (
	// ErrNoManifest is returned when the root has no manifest.
	ErrNoManifest = errors.New(ManifestFile + " not found")

	// ErrMalformedManifest is returned when the manifest lacks required fields
	// or has an unexpected shape.
	ErrMalformedManifest = errors.New(ManifestFile + " is malformed")
)

// WrongPackageError is returned when the manifest belongs to another package.
type WrongPackageError struct {
	Package string
}

func (e *WrongPackageError) Error() string {
	return fmt.Sprintf("working dir must be root of package %s but is actually %s", ExpectedPackage, e.Package)
}

// DayRegisteredError is returned when the manifest already lists a day.
type DayRegisteredError struct {
	Name string
}

func (e *DayRegisteredError) Error() string {
	return fmt.Sprintf("day already registered in workspace: %s", e.Name)
}

// Manifest is the decoded aoc.yaml. Edits go through the YAML node tree so
// comments and ordering survive a save.
type Manifest struct {
	Package string   `yaml:"package"`
	Module  string   `yaml:"module"`
	DaysDir string   `yaml:"days_dir"`
	Days    []string `yaml:"days"`

	path string
	doc  yaml.Node
}

// LoadManifest reads the manifest in root and checks that it belongs to
// ExpectedPackage.
func LoadManifest(root string) (*Manifest, error) {
	path := filepath.Join(root, ManifestFile)
	data, err := os.ReadFile(path) // #nosec G304 -- manifest path is derived from the workspace root
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoManifest
	}
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m := &Manifest{path: path}
	if err := yaml.Unmarshal(data, &m.doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedManifest, err)
	}
	if m.doc.Kind != yaml.DocumentNode || len(m.doc.Content) == 0 || m.doc.Content[0].Kind != yaml.MappingNode {
		return nil, ErrMalformedManifest
	}
	if err := m.doc.Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedManifest, err)
	}

	if m.Package == "" || m.Module == "" || m.DaysDir == "" {
		return nil, fmt.Errorf("%w: package, module and days_dir are required", ErrMalformedManifest)
	}
	if m.Package != ExpectedPackage {
		return nil, &WrongPackageError{Package: m.Package}
	}

	return m, nil
}

// HasDay reports whether name is listed in the manifest.
func (m *Manifest) HasDay(name string) bool {
	return slices.Contains(m.Days, name)
}

// AddDay appends name to the days list.
func (m *Manifest) AddDay(name string) error {
	if m.HasDay(name) {
		return &DayRegisteredError{Name: name}
	}

	root := m.doc.Content[0]
	var days *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "days" {
			days = root.Content[i+1]
			break
		}
	}

	if days == nil {
		days = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "days"},
			days)
	}
	if days.Kind != yaml.SequenceNode {
		// `days:` with no value decodes as a null scalar.
		if days.Kind != yaml.ScalarNode || days.Tag != "!!null" {
			return fmt.Errorf("%w: days must be a list", ErrMalformedManifest)
		}
		days.Kind, days.Tag, days.Value = yaml.SequenceNode, "!!seq", ""
	}

	days.Content = append(days.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name})
	m.Days = append(m.Days, name)
	return nil
}

// Save writes the manifest back to disk.
func (m *Manifest) Save() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&m.doc); err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(m.path, buf.Bytes(), 0644); err != nil { // #nosec G306 -- manifest is checked in
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
