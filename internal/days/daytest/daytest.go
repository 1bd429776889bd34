// Package daytest holds helpers shared by the solver tests.
package daytest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteInput writes a puzzle input to a temporary file and returns its path.
// Leading and trailing blank lines in content are dropped and a final newline is added.
func WriteInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	data := strings.Trim(content, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	return path
}
