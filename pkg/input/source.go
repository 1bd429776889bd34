package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// StringSourceName is the name given to in-memory sources.
const StringSourceName = "dummy file"

// Source is a named, line-buffered input stream.
// A Source is owned by exactly one Sequence.
type Source struct {
	name   string
	reader *bufio.Reader
	closer io.Closer
	closed bool
}

// Open opens the file at path for reading.
// Files ending in .lz4 are decompressed on the fly.
func Open(path string) (*Source, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", path, err)
	}

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".lz4") {
		r = lz4.NewReader(f)
	}

	return &Source{
		name:   filepath.Base(path),
		reader: bufio.NewReader(r),
		closer: f,
	}, nil
}

// NewSource wraps r. If r is also an io.Closer it is closed together with
// the source.
func NewSource(name string, r io.Reader) *Source {
	s := &Source{
		name:   name,
		reader: bufio.NewReader(r),
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// FromString returns a source reading from data.
func FromString(data string) *Source {
	return NewSource(StringSourceName, strings.NewReader(data))
}

// Name returns the name used in diagnostics.
func (s *Source) Name() string {
	return s.name
}

// ReadLine returns the next physical line including its terminator.
// A final line without a terminator is returned with a nil error;
// the call after it returns "", io.EOF.
func (s *Source) ReadLine() (string, error) {
	if s.closed {
		return "", io.EOF
	}
	line, err := s.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return line, err
}

// Close releases the underlying reader. Only the first call has an effect.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
