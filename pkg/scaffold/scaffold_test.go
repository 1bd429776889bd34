package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `# workspace
package: aoc2021
module: example.com/aoc
days_dir: internal/days
days:
  - day01
`

func setupWorkspace(t *testing.T, manifest string) string {
	t.Helper()
	root := t.TempDir()

	if manifest != "" {
		require.NoError(t, os.WriteFile(filepath.Join(root, ManifestFile), []byte(manifest), 0644))
	}

	templates := filepath.Join(root, TemplateDir)
	require.NoError(t, os.MkdirAll(templates, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(templates, "solver.go.tmpl"),
		[]byte("package {{.Package}}\n\n// Day is {{.Day}}.\nconst Day = {{.Day}}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(templates, "README.md.tmpl"),
		[]byte("# {{.Package}} from {{.DaysImport}}\n"), 0644))

	return root
}

func TestInitialize(t *testing.T) {
	root := setupWorkspace(t, testManifest)

	err := Initialize(context.Background(), Options{Root: root, Day: 8})
	require.NoError(t, err)

	dayDir := filepath.Join(root, "internal", "days", "day08")
	solver, err := os.ReadFile(filepath.Join(dayDir, "solver.go"))
	require.NoError(t, err)
	assert.Contains(t, string(solver), "package day08")
	assert.Contains(t, string(solver), "const Day = 8")

	readme, err := os.ReadFile(filepath.Join(dayDir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# day08 from example.com/aoc/internal/days\n", string(readme))

	manifest, err := os.ReadFile(filepath.Join(root, ManifestFile))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "# workspace")
	assert.Contains(t, string(manifest), "- day08")

	m, err := LoadManifest(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"day01", "day08"}, m.Days)

	all, err := os.ReadFile(filepath.Join(root, "internal", "days", "all", "all.go"))
	require.NoError(t, err)
	assert.Contains(t, string(all), `_ "example.com/aoc/internal/days/day01"`)
	assert.Contains(t, string(all), `_ "example.com/aoc/internal/days/day08"`)
	assert.True(t, strings.HasPrefix(string(all), "// Code generated by aoc init. DO NOT EDIT."))
}

func TestInitialize_DayExists(t *testing.T) {
	root := setupWorkspace(t, testManifest)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "internal", "days", "day02"), 0755))

	err := Initialize(context.Background(), Options{Root: root, Day: 2})

	var exists *DayExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, 2, exists.Day)
	assert.Equal(t, "directory for day 2 already exists", err.Error())
}

func TestInitialize_AlreadyRegistered(t *testing.T) {
	root := setupWorkspace(t, testManifest)

	err := Initialize(context.Background(), Options{Root: root, Day: 1})

	var registered *DayRegisteredError
	require.ErrorAs(t, err, &registered)
	assert.Equal(t, "day01", registered.Name)

	_, statErr := os.Stat(filepath.Join(root, "internal", "days", "day01"))
	assert.True(t, os.IsNotExist(statErr), "day directory should not be created")
}

func TestInitialize_ForceOverwrites(t *testing.T) {
	root := setupWorkspace(t, testManifest)
	ctx := context.Background()

	require.NoError(t, Initialize(ctx, Options{Root: root, Day: 9}))
	require.NoError(t, Initialize(ctx, Options{Root: root, Day: 9, Force: true}))

	m, err := LoadManifest(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"day01", "day09"}, m.Days)
}

func TestInitialize_NoManifest(t *testing.T) {
	root := setupWorkspace(t, "")

	err := Initialize(context.Background(), Options{Root: root, Day: 3})
	assert.ErrorIs(t, err, ErrNoManifest)
}

func TestInitialize_WrongPackage(t *testing.T) {
	root := setupWorkspace(t, strings.Replace(testManifest, "aoc2021", "aoc2020", 1))

	err := Initialize(context.Background(), Options{Root: root, Day: 3})

	var wrong *WrongPackageError
	require.ErrorAs(t, err, &wrong)
	assert.Equal(t, "aoc2020", wrong.Package)
}

func TestInitialize_InvalidDay(t *testing.T) {
	root := setupWorkspace(t, testManifest)
	for _, day := range []int{0, 26} {
		assert.Error(t, Initialize(context.Background(), Options{Root: root, Day: day}))
	}
}

func TestInitialize_TemplateError(t *testing.T) {
	root := setupWorkspace(t, testManifest)
	require.NoError(t, os.WriteFile(filepath.Join(root, TemplateDir, "broken.go.tmpl"),
		[]byte("{{.Missing}}"), 0644))

	err := Initialize(context.Background(), Options{Root: root, Day: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template error for broken.go")

	assertUntouched(t, root, "day04")

	// Once the template is fixed a plain rerun succeeds.
	require.NoError(t, os.Remove(filepath.Join(root, TemplateDir, "broken.go.tmpl")))
	require.NoError(t, Initialize(context.Background(), Options{Root: root, Day: 4}))
}

func TestInitialize_NoTemplates(t *testing.T) {
	root := setupWorkspace(t, testManifest)
	require.NoError(t, os.RemoveAll(filepath.Join(root, TemplateDir)))

	err := Initialize(context.Background(), Options{Root: root, Day: 5})
	require.Error(t, err)

	assertUntouched(t, root, "day05")
}

func TestInitialize_WriteFailureRemovesDirectory(t *testing.T) {
	root := setupWorkspace(t, testManifest)
	// ".tmpl" renders to the day directory itself, so writing it fails.
	require.NoError(t, os.WriteFile(filepath.Join(root, TemplateDir, TemplateExt), []byte("x"), 0644))

	err := Initialize(context.Background(), Options{Root: root, Day: 6})
	require.Error(t, err)

	assertUntouched(t, root, "day06")
}

// assertUntouched checks that a failed Initialize left neither a directory
// nor a manifest entry behind.
func assertUntouched(t *testing.T, root, day string) {
	t.Helper()

	_, err := os.Stat(filepath.Join(root, "internal", "days", day))
	assert.True(t, errors.Is(err, os.ErrNotExist), "%s directory should not exist", day)

	m, err := LoadManifest(root)
	require.NoError(t, err)
	assert.False(t, m.HasDay(day), "%s should not be registered", day)
}

func TestLoadManifest_Malformed(t *testing.T) {
	tests := map[string]string{
		"invalid yaml":    "package: [",
		"missing module":  "package: aoc2021\ndays_dir: internal/days\n",
		"not a mapping":   "- day01\n",
		"days not a list": testManifest[:strings.Index(testManifest, "days:")] + "days: day01\n",
		"empty file":      "",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(root, ManifestFile), []byte(content), 0644))

			m, err := LoadManifest(root)
			if err == nil {
				err = m.AddDay("day02")
			}
			assert.True(t, errors.Is(err, ErrMalformedManifest), "error = %v", err)
		})
	}
}

func TestManifest_AddDayToEmptyList(t *testing.T) {
	root := t.TempDir()
	content := "package: aoc2021\nmodule: example.com/aoc\ndays_dir: days\ndays:\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ManifestFile), []byte(content), 0644))

	m, err := LoadManifest(root)
	require.NoError(t, err)
	require.NoError(t, m.AddDay("day01"))
	require.NoError(t, m.Save())

	reloaded, err := LoadManifest(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"day01"}, reloaded.Days)
}
