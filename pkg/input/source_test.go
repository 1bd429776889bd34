package input

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4/v4"
)

func TestSource_ReadLine(t *testing.T) {
	src := FromString("first\nsecond")
	defer src.Close()

	want := []string{"first\n", "second"}
	for _, w := range want {
		got, err := src.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() error = %v", err)
		}
		if got != w {
			t.Errorf("ReadLine() = %q, want %q", got, w)
		}
	}

	if _, err := src.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine() error = %v, want io.EOF", err)
	}
}

func TestSource_Name(t *testing.T) {
	if got := FromString("").Name(); got != StringSourceName {
		t.Errorf("Name() = %q, want %q", got, StringSourceName)
	}
}

func TestSource_ReadAfterClose(t *testing.T) {
	src := FromString("line\n")
	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := src.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine() after Close error = %v, want io.EOF", err)
	}
}

func TestOpen_LZ4(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input-01.txt.lz4")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := lz4.NewWriter(f)
	if _, err := w.Write([]byte("3\n1\n4\n")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	seq, err := OpenLines(path, Int)
	if err != nil {
		t.Fatalf("OpenLines() error = %v", err)
	}

	got, err := seq.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(got) != 3 || got[0] != 3 || got[1] != 1 || got[2] != 4 {
		t.Errorf("Collect() = %v, want [3 1 4]", got)
	}
}
