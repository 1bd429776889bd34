package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"go.uber.org/zap"
)

// TemplateDir holds the day templates, relative to the workspace root.
const TemplateDir = "day-template"

// TemplateExt marks files under TemplateDir that are rendered into a new day.
const TemplateExt = ".tmpl"

// DayExistsError is returned when the day directory exists and Force is not set.
type DayExistsError struct {
	Day int
}

func (e *DayExistsError) Error() string {
	return fmt.Sprintf("directory for day %d already exists", e.Day)
}

// Options configures Initialize.
type Options struct {
	// Root is the workspace root containing the manifest and TemplateDir.
	Root string

	// Day is the puzzle day, 1 to 25.
	Day int

	// Force reuses an existing day directory and overwrites rendered files.
	Force bool

	Logger *zap.Logger
}

// TemplateData is passed to every template.
type TemplateData struct {
	Day        int
	Package    string
	Module     string
	DaysImport string
}

// Initialize creates the package for a new day, registers it in the manifest
// and regenerates the package that imports all days.
func Initialize(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.Day < 1 || opts.Day > 25 {
		return fmt.Errorf("day %d out of range (must be 1-25)", opts.Day)
	}

	m, err := LoadManifest(opts.Root)
	if err != nil {
		return err
	}

	name := DayName(opts.Day)
	dayDir := filepath.Join(opts.Root, filepath.FromSlash(m.DaysDir), name)

	if _, err := os.Stat(dayDir); err == nil && !opts.Force {
		return &DayExistsError{Day: opts.Day}
	}
	registered := m.HasDay(name)
	if registered && !opts.Force {
		return &DayRegisteredError{Name: name}
	}

	data := TemplateData{
		Day:        opts.Day,
		Package:    name,
		Module:     m.Module,
		DaysImport: path.Join(m.Module, m.DaysDir),
	}
	files, err := renderTemplates(ctx, filepath.Join(opts.Root, TemplateDir), data)
	if err != nil {
		return err
	}

	_, statErr := os.Stat(dayDir)
	created := errors.Is(statErr, fs.ErrNotExist)
	if err := os.MkdirAll(dayDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dayDir, err)
	}
	undo := func(err error) error {
		if created {
			_ = os.RemoveAll(dayDir)
		}
		return err
	}

	for _, f := range files {
		target := filepath.Join(dayDir, f.name)
		if err := writeFile(target, f.content, opts.Force); err != nil {
			return undo(err)
		}
		logger.Debug("rendered template", zap.String("file", target))
	}

	if !registered {
		if err := m.AddDay(name); err != nil {
			return undo(err)
		}
		if err := m.Save(); err != nil {
			return undo(err)
		}
		logger.Info("registered day", zap.String("day", name), zap.String("manifest", m.path))
	}

	return WriteRegistry(m, opts.Root)
}

// DayName returns the package name for a day, e.g. day07.
func DayName(day int) string {
	return fmt.Sprintf("day%02d", day)
}

// templateFiles lists the templates in dir, sorted for deterministic output.
func templateFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+TemplateExt))
	if err != nil {
		return nil, fmt.Errorf("invalid template directory %q: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no %s files in %s", TemplateExt, dir)
	}
	sort.Strings(matches)
	return matches, nil
}

type renderedFile struct {
	name    string
	content []byte
}

// renderTemplates executes every template in templateDir without writing anything.
func renderTemplates(ctx context.Context, templateDir string, data TemplateData) ([]renderedFile, error) {
	files, err := templateFiles(templateDir)
	if err != nil {
		return nil, err
	}

	rendered := make([]renderedFile, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := strings.TrimSuffix(filepath.Base(file), TemplateExt)
		text, err := os.ReadFile(file) // #nosec G304 -- templates live in the workspace
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", name, err)
		}

		tmpl, err := template.New(name).Option("missingkey=error").Parse(string(text))
		if err != nil {
			return nil, fmt.Errorf("template error for %s: %w", name, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("template error for %s: %w", name, err)
		}
		rendered = append(rendered, renderedFile{name: name, content: buf.Bytes()})
	}
	return rendered, nil
}

func writeFile(path string, content []byte, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0644) // #nosec G302 G304 -- generated source files
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("refusing to overwrite %s: %w", path, err)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

var registryTemplate = template.Must(template.New("all.go").Parse(`// Code generated by aoc init. DO NOT EDIT.

// Package all registers every puzzle solver listed in aoc.yaml.
package all

import (
{{- range .Imports}}
	_ "{{.}}"
{{- end}}
)
`))

// WriteRegistry regenerates <days_dir>/all/all.go from the manifest.
func WriteRegistry(m *Manifest, root string) error {
	imports := make([]string, 0, len(m.Days))
	for _, day := range m.Days {
		imports = append(imports, path.Join(m.Module, m.DaysDir, day))
	}
	sort.Strings(imports)

	var buf bytes.Buffer
	if err := registryTemplate.Execute(&buf, struct{ Imports []string }{imports}); err != nil {
		return fmt.Errorf("rendering registry: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting registry: %w", err)
	}

	dir := filepath.Join(root, filepath.FromSlash(m.DaysDir), "all")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return writeFile(filepath.Join(dir, "all.go"), src, true)
}
