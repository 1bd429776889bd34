package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestClient_Download_Success(t *testing.T) {
	var receivedCookie, receivedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedPath = r.URL.Path
		if c, err := r.Cookie("session"); err == nil {
			receivedCookie = c.Value
		}
		_, _ = w.Write([]byte("199\n200\n"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "input", "input-01.txt")
	resp := NewClient(server.URL).Download(context.Background(), 1, dest, Options{Session: "abc"})

	if !resp.Success() {
		t.Fatalf("expected success, got error: %v", resp.Error)
	}
	if receivedPath != "/2021/day/1/input" {
		t.Errorf("path = %q, want /2021/day/1/input", receivedPath)
	}
	if receivedCookie != "abc" {
		t.Errorf("session cookie = %q, want abc", receivedCookie)
	}
	if resp.Bytes != 8 {
		t.Errorf("Bytes = %d, want 8", resp.Bytes)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "199\n200\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestClient_Download_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Puzzle inputs differ by user.  Please log in to get your puzzle input.", http.StatusBadRequest)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "input-02.txt")
	if err := os.WriteFile(dest, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	resp := NewClient(server.URL).Download(context.Background(), 2, dest, Options{Session: "expired"})

	if resp.Success() {
		t.Error("expected failure for 400 status")
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", resp.StatusCode)
	}

	data, _ := os.ReadFile(dest)
	if string(data) != "keep" {
		t.Errorf("existing input was modified: %q", data)
	}
}

func TestClient_Download_NoSession(t *testing.T) {
	resp := NewClient("http://127.0.0.1:1").Download(context.Background(), 1, filepath.Join(t.TempDir(), "x"), Options{})
	if resp.Error != ErrNoSession {
		t.Errorf("Error = %v, want ErrNoSession", resp.Error)
	}
}

func TestClient_Download_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	resp := NewClient(server.URL).Download(context.Background(), 3, filepath.Join(t.TempDir(), "x"),
		Options{Session: "abc", Timeout: 50 * time.Millisecond})

	if resp.Success() {
		t.Error("expected timeout failure")
	}
}

func TestPuzzleURL(t *testing.T) {
	if got := PuzzleURL(4); got != "https://adventofcode.com/2021/day/4" {
		t.Errorf("PuzzleURL(4) = %q", got)
	}
}

func TestWriteAtomic_TooLarge(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "input-01.txt")
	if err := os.WriteFile(dest, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := writeAtomic(dest, strings.NewReader("0123456789"), 8)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("writeAtomic() error = %v, want ErrTooLarge", err)
	}

	data, _ := os.ReadFile(dest)
	if string(data) != "keep" {
		t.Errorf("existing input was modified: %q", data)
	}

	n, err := writeAtomic(dest, strings.NewReader("01234567"), 8)
	if err != nil || n != 8 {
		t.Errorf("writeAtomic() at the limit = %d, %v, want 8, nil", n, err)
	}
}
